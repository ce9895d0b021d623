package dto

// ShiftInput datos crudos de presentación para crear o editar un registro
// de turno.
type ShiftInput struct {
	EmployeeID int64
	Date       string // 'YYYY-MM-DD HH:MM:SS' o 'YYYY-MM-DD'
	Hours      int
	Tasks      string
}
