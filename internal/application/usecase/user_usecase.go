package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/application/dto"
	"github.com/jhoicas/rrhh-console/internal/application/validator"
	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
	"github.com/jhoicas/rrhh-console/pkg/security"
)

// UserUseCase gestiona las cuentas de acceso al sistema. Hashea contraseñas
// con bcrypt antes de tocar el gateway; el texto plano nunca se persiste.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher *security.Hasher
}

// NewUserUseCase construye el caso de uso con el puerto y el hasher.
func NewUserUseCase(repo repository.UserRepository, hasher *security.Hasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create valida usuario, contraseña, nombre completo y rol; comprueba que el
// username no exista; hashea y persiste. Rol vacío cae a "usuario".
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserInput) (*entity.User, error) {
	username, err := validator.Username(in.Username)
	if err != nil {
		return nil, err
	}
	if err := validator.Password(in.Password); err != nil {
		return nil, err
	}
	fullName, err := validator.FullName(in.FullName)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUsuario
	}
	role, err = validator.Role(role)
	if err != nil {
		return nil, err
	}

	// Comprobación previa para dar un mensaje claro; la restricción UNIQUE
	// del gateway sigue cubriendo la carrera.
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateValueError{Field: "username", Value: username}
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		Active:       true,
	}
	if _, err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id de usuario inválido")
	}
	return uc.repo.GetByID(ctx, id)
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	return uc.repo.List(ctx)
}

// Update edita una cuenta existente. Los campos de texto vacíos conservan el
// valor almacenado; Active se aplica siempre. Contraseña nueva se revalida y
// rehashea.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UserUpdateInput) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de usuario inválido")
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if s := strings.TrimSpace(in.Username); s != "" {
		username, err := validator.Username(s)
		if err != nil {
			return 0, err
		}
		if username != current.Username {
			other, err := uc.repo.GetByUsername(ctx, username)
			if err != nil {
				return 0, err
			}
			if other != nil && other.ID != id {
				return 0, &domain.DuplicateValueError{Field: "username", Value: username}
			}
		}
		current.Username = username
	}
	if in.Password != "" {
		if err := validator.Password(in.Password); err != nil {
			return 0, err
		}
		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return 0, err
		}
		current.PasswordHash = hash
	}
	if s := strings.TrimSpace(in.FullName); s != "" {
		fullName, err := validator.FullName(s)
		if err != nil {
			return 0, err
		}
		current.FullName = fullName
	}
	if s := strings.TrimSpace(in.Role); s != "" {
		role, err := validator.Role(s)
		if err != nil {
			return 0, err
		}
		current.Role = role
	}
	current.Active = in.Active

	return uc.repo.Update(ctx, current)
}

// Delete elimina la cuenta por ID. Devuelve filas afectadas (0 o 1).
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id de usuario inválido")
	}
	return uc.repo.Delete(ctx, id)
}
