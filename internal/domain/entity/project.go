package entity

import (
	"fmt"
	"time"
)

// Project representa un proyecto de la organización. La lista de empleados
// asignados es una relación en memoria: no se persiste y no sobrevive al
// reinicio del proceso.
type Project struct {
	ID          int64
	Name        string
	Description string
	StartDate   time.Time

	Assigned []Employee
}

func (p Project) String() string {
	return fmt.Sprintf("[%d] %s - %s (inicio: %s, asignados: %d)",
		p.ID, p.Name, p.Description, p.StartDate.Format("2006-01-02"), len(p.Assigned))
}

// Assign agrega un empleado al proyecto si no estaba ya asignado.
// Devuelve false cuando la operación fue un no-op (ya asignado).
func (p *Project) Assign(emp Employee) bool {
	for _, a := range p.Assigned {
		if a.ID == emp.ID {
			return false
		}
	}
	p.Assigned = append(p.Assigned, emp)
	return true
}

// Unassign quita un empleado del proyecto si estaba asignado.
// Devuelve false cuando no estaba (no-op).
func (p *Project) Unassign(employeeID int64) bool {
	for i, a := range p.Assigned {
		if a.ID == employeeID {
			p.Assigned = append(p.Assigned[:i], p.Assigned[i+1:]...)
			return true
		}
	}
	return false
}

// IsAssigned informa si el empleado figura en la lista del proyecto.
func (p *Project) IsAssigned(employeeID int64) bool {
	for _, a := range p.Assigned {
		if a.ID == employeeID {
			return true
		}
	}
	return false
}
