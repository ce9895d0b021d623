package entity

import "fmt"

// Roles válidos para User. El rol se guarda siempre en minúsculas.
const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)

// User representa una cuenta del sistema con la que se inicia sesión.
type User struct {
	ID           int64
	Username     string // único a nivel de base de datos
	PasswordHash string // hash bcrypt, nunca texto plano
	FullName     string
	Role         string // admin o usuario
	Active       bool
}

// IsAdmin indica si la cuenta tiene el rol administrativo.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) String() string {
	estado := "Activo"
	if !u.Active {
		estado = "Inactivo"
	}
	return fmt.Sprintf("[%d] %s - %s (%s) - %s", u.ID, u.Username, u.FullName, u.Role, estado)
}
