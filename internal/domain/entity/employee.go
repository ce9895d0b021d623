package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

// EmployeeType enumera los tipos válidos de empleado. El valor string es el
// texto canónico que se persiste y se muestra.
type EmployeeType string

const (
	EmployeeStandard       EmployeeType = "Empleado"
	EmployeeAdministrative EmployeeType = "Administrativo"
	EmployeeManager        EmployeeType = "Gerente"
)

var employeeTypes = []EmployeeType{EmployeeStandard, EmployeeAdministrative, EmployeeManager}

// titleES canoniza texto al formato título con reglas del español
// ("  GeReNte  " -> "Gerente", "desarrollo sostenible" -> "Desarrollo Sostenible").
var titleES = cases.Title(language.Spanish)

// ParseEmployeeType resuelve el texto ingresado por el usuario al tipo
// canónico, sin distinguir mayúsculas. Texto fuera del conjunto cerrado
// produce ValidationError indicando las opciones válidas.
func ParseEmployeeType(s string) (EmployeeType, error) {
	canon := titleES.String(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range employeeTypes {
		if canon == string(t) {
			return t, nil
		}
	}
	return "", domain.NewValidationError(
		"tipo de empleado inválido %q: usa Empleado / Administrativo / Gerente", s)
}

// Employee representa un empleado de la organización.
// ID queda en cero hasta que el gateway persiste la fila y devuelve la PK.
type Employee struct {
	ID            int64
	Name          string
	Address       string
	Phone         string // dígitos o texto libre ("+56 9 1234"), se guarda tal cual
	Email         string
	ContractStart time.Time
	Salary        decimal.Decimal
	Username      string
	Type          EmployeeType
}

func (e Employee) String() string {
	return fmt.Sprintf("[%d] %s (%s) - %s - %s", e.ID, e.Name, e.Type, e.Email, e.Username)
}
