package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
	"github.com/jhoicas/rrhh-console/pkg/security"
)

// Errores de autenticación. Se distinguen para que la consola pueda informar
// con precisión sin filtrar si el usuario existe en el mensaje genérico.
var (
	ErrUserNotFoundOrInactive = errors.New("usuario no encontrado o inactivo")
	ErrIncorrectPassword      = errors.New("contraseña incorrecta")
)

// Service autentica credenciales contra el gateway de usuarios comparando
// el hash bcrypt almacenado.
type Service struct {
	users  repository.UserRepository
	hasher *security.Hasher
}

// NewService construye el servicio de autenticación.
func NewService(users repository.UserRepository, hasher *security.Hasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// ActiveUser busca un usuario por username y lo devuelve solo si existe y
// está activo. Devuelve (nil, nil) en caso contrario; los errores son solo
// fallos de infraestructura.
func (s *Service) ActiveUser(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Active {
		return nil, nil
	}
	return u, nil
}

// Login autentica credenciales. Usuario inexistente o inactivo →
// ErrUserNotFoundOrInactive; contraseña que no casa con el hash →
// ErrIncorrectPassword. Éxito devuelve el usuario autenticado.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.ActiveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFoundOrInactive
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}
