package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

// DepartmentType enumera las cinco categorías fijas de departamento.
type DepartmentType string

const (
	DeptSustainableDev DepartmentType = "Desarrollo Sostenible"
	DeptResearch       DepartmentType = "Investigacion"
	DeptDevelopment    DepartmentType = "Desarrollo"
	DeptSales          DepartmentType = "Ventas"
	DeptHumanResources DepartmentType = "Recursos Humanos"
)

var departmentTypes = []DepartmentType{
	DeptSustainableDev,
	DeptResearch,
	DeptDevelopment,
	DeptSales,
	DeptHumanResources,
}

// DepartmentTypeValues devuelve los textos canónicos, en orden fijo,
// para menús y mensajes de error.
func DepartmentTypeValues() []string {
	out := make([]string, 0, len(departmentTypes))
	for _, t := range departmentTypes {
		out = append(out, string(t))
	}
	return out
}

// ParseDepartmentType resuelve el texto al tipo canónico, sin distinguir
// mayúsculas. Fuera del conjunto cerrado → ValidationError con las opciones.
func ParseDepartmentType(s string) (DepartmentType, error) {
	canon := titleES.String(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range departmentTypes {
		if canon == string(t) {
			return t, nil
		}
	}
	return "", domain.NewValidationError(
		"tipo de departamento inválido %q: usa %s", s, strings.Join(DepartmentTypeValues(), " / "))
}

// Department representa un departamento de la organización.
type Department struct {
	ID   int64
	Name string // mínimo 3 caracteres tras trim, validado antes de persistir
	Type DepartmentType
}

func (d Department) String() string {
	return fmt.Sprintf("[%d] %s - %s", d.ID, d.Name, d.Type)
}
