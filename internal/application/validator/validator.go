// Package validator reúne validaciones puras de entradas de usuario:
// sin estado y sin efectos, solo reportan mediante ValidationError.
package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

const (
	minPasswordLen = 8
	minUsernameLen = 3
	minFullNameLen = 5
	maxFullNameLen = 60
)

// Formatos de fecha aceptados: fecha con hora, o solo fecha (se asume medianoche).
const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateOnlyLayout = "2006-01-02"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	fullNamePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ ]+$`)
)

// Username valida y normaliza un nombre de usuario: no vacío tras trim,
// mínimo 3 caracteres, solo letras, dígitos o guion bajo.
// Devuelve el valor recortado listo para usar.
func Username(username string) (string, error) {
	u := strings.TrimSpace(username)
	if u == "" {
		return "", domain.NewValidationError("el nombre de usuario no puede estar vacío")
	}
	if len(u) < minUsernameLen {
		return "", domain.NewValidationError("el nombre de usuario es demasiado corto (mínimo %d)", minUsernameLen)
	}
	if !usernamePattern.MatchString(u) {
		return "", domain.NewValidationError(
			"el nombre de usuario solo puede contener letras, números o guiones bajos (_)")
	}
	return u, nil
}

// Password valida la política de contraseñas: mínimo 8 caracteres con al
// menos una mayúscula, una minúscula, un dígito y un símbolo.
func Password(password string) error {
	if password == "" {
		return domain.NewValidationError("la contraseña no puede estar vacía")
	}
	if len(password) < minPasswordLen {
		return domain.NewValidationError("la contraseña debe tener al menos %d caracteres", minPasswordLen)
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	switch {
	case !upper:
		return domain.NewValidationError("la contraseña debe contener al menos una letra mayúscula")
	case !lower:
		return domain.NewValidationError("la contraseña debe contener al menos una letra minúscula")
	case !digit:
		return domain.NewValidationError("la contraseña debe contener al menos un número")
	case !symbol:
		return domain.NewValidationError("la contraseña debe contener al menos un carácter especial (!, *, #, etc.)")
	}
	return nil
}

// FullName valida un nombre completo: 5 a 60 caracteres tras trim, solo
// letras (incluidas tildes y eñes) y espacios, y al menos nombre y apellido.
// Devuelve el valor recortado.
func FullName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", domain.NewValidationError("el nombre no puede estar vacío")
	}
	if len([]rune(n)) < minFullNameLen {
		return "", domain.NewValidationError("el nombre es demasiado corto")
	}
	if len([]rune(n)) > maxFullNameLen {
		return "", domain.NewValidationError("el nombre es demasiado largo (máximo %d caracteres)", maxFullNameLen)
	}
	if !fullNamePattern.MatchString(n) {
		return "", domain.NewValidationError(
			"el nombre solo puede contener letras y espacios (sin números ni símbolos)")
	}
	if len(strings.Fields(n)) < 2 {
		return "", domain.NewValidationError("debes ingresar al menos nombre y apellido")
	}
	return n, nil
}

// Role valida un rol: exactamente admin o usuario, sin espacios al inicio,
// al final ni internos; no distingue mayúsculas. Devuelve la forma canónica
// en minúsculas.
func Role(role string) (string, error) {
	if role == "" {
		return "", domain.NewValidationError("rol vacío")
	}
	if role != strings.TrimSpace(role) {
		return "", domain.NewValidationError("el rol no debe contener espacios al inicio o al final")
	}
	if strings.Contains(role, " ") {
		return "", domain.NewValidationError("el rol no debe contener espacios")
	}
	r := strings.ToLower(role)
	if r != "admin" && r != "usuario" {
		return "", domain.NewValidationError("rol inválido: solo 'admin' o 'usuario'")
	}
	return r, nil
}

// ParseDate convierte texto a time.Time. Acepta 'YYYY-MM-DD HH:MM:SS' o
// 'YYYY-MM-DD' (esta última se expande a medianoche). Cualquier otra cosa
// produce ValidationError nombrando ambos formatos.
func ParseDate(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	if t, err := time.Parse(dateTimeLayout, in); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnlyLayout, in); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(
		"formato de fecha inválido: usa 'YYYY-MM-DD HH:MM:SS' o 'YYYY-MM-DD'")
}

// LoginInput valida la pareja usuario/contraseña antes de intentar el login:
// ambos no vacíos tras trim. No aplica la política completa de contraseñas.
func LoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return domain.NewValidationError("el nombre de usuario no puede estar vacío")
	}
	if strings.TrimSpace(password) == "" {
		return domain.NewValidationError("la contraseña no puede estar vacía")
	}
	return nil
}
