package dto

// EmployeeInput datos crudos de presentación para crear o editar un
// empleado. Todo llega como texto; la capa de aplicación valida, recorta y
// resuelve enum, fecha y salario.
type EmployeeInput struct {
	Name          string
	Address       string
	Phone         string // dígitos o texto libre; se guarda tal cual tras trim
	Email         string
	ContractStart string // 'YYYY-MM-DD HH:MM:SS' o 'YYYY-MM-DD'
	Salary        string // numérico no negativo
	Username      string
	Type          string // Empleado / Administrativo / Gerente (sin distinguir mayúsculas)
}
