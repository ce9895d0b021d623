package dto

// DepartmentInput datos crudos de presentación para crear o editar un
// departamento.
type DepartmentInput struct {
	Name string // mínimo 3 caracteres tras trim
	Type string // una de las cinco categorías, sin distinguir mayúsculas
}
