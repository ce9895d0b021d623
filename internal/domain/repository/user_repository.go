package repository

import (
	"context"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// La unicidad de username la garantiza la base de datos; el gateway traduce
// la violación a DuplicateValueError("username", valor).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername devuelve (nil, nil) si no hay coincidencia: se usa como
	// pre-chequeo de duplicados y en el login, donde la ausencia no es error.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
