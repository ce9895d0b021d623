package dto

// ProjectInput datos crudos de presentación para crear o editar un proyecto.
type ProjectInput struct {
	Name        string
	Description string
	StartDate   string // 'YYYY-MM-DD HH:MM:SS' o 'YYYY-MM-DD'
}
