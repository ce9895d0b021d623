package entity

import (
	"fmt"
	"time"
)

// ShiftRecord representa un registro de turno de un empleado:
// fecha/hora del turno, horas trabajadas y descripción de tareas.
type ShiftRecord struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Hours      int
	Tasks      string
}

func (s ShiftRecord) String() string {
	return fmt.Sprintf("Registro #%d | Empleado %d | Fecha: %s | Horas: %d | Tareas: %s",
		s.ID, s.EmployeeID, s.Date.Format("2006-01-02 15:04:05"), s.Hours, s.Tasks)
}
