package dto

// UserInput datos crudos de presentación para crear un usuario.
type UserInput struct {
	Username string
	Password string // texto plano; la capa de aplicación lo hashea antes de persistir
	FullName string
	Role     string // admin o usuario; vacío cae a usuario
}

// UserUpdateInput datos para editar un usuario existente. Los campos de
// texto vacíos significan "sin cambio"; Active siempre se aplica.
type UserUpdateInput struct {
	Username string
	Password string
	FullName string
	Role     string
	Active   bool
}
