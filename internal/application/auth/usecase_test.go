package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/internal/application/auth"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/pkg/security"
)

type fakeUserRepo struct {
	users map[string]entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) (int64, error) { panic("no usado") }
func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*entity.User, error) {
	panic("no usado")
}
func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error)         { panic("no usado") }
func (f *fakeUserRepo) Update(_ context.Context, _ *entity.User) (int64, error) { panic("no usado") }
func (f *fakeUserRepo) Delete(_ context.Context, _ int64) (int64, error)      { panic("no usado") }

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func newService(t *testing.T) (*auth.Service, *security.Hasher) {
	t.Helper()

	hasher := security.NewHasher(4)
	hash, err := hasher.Hash("Segura1!")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]entity.User{
		"adiaz": {ID: 1, Username: "adiaz", PasswordHash: hash, FullName: "Ana Díaz",
			Role: entity.RoleAdmin, Active: true},
		"inactivo": {ID: 2, Username: "inactivo", PasswordHash: hash, FullName: "Ex Empleado",
			Role: entity.RoleUsuario, Active: false},
	}}
	return auth.NewService(repo, hasher), hasher
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	u, err := svc.Login(context.Background(), "adiaz", "Segura1!")

	require.NoError(t, err)
	assert.Equal(t, "adiaz", u.Username)
	assert.True(t, u.IsAdmin())
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	u, err := svc.Login(context.Background(), "adiaz", "otra")

	assert.Nil(t, u)
	assert.ErrorIs(t, err, auth.ErrIncorrectPassword)
}

func TestLogin_UnknownAndInactiveAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	// usuario inexistente y usuario inactivo producen el mismo error
	_, errUnknown := svc.Login(context.Background(), "fantasma", "Segura1!")
	_, errInactive := svc.Login(context.Background(), "inactivo", "Segura1!")

	assert.ErrorIs(t, errUnknown, auth.ErrUserNotFoundOrInactive)
	assert.ErrorIs(t, errInactive, auth.ErrUserNotFoundOrInactive)
	assert.Equal(t, errUnknown.Error(), errInactive.Error())
}

func TestActiveUser(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	u, err := svc.ActiveUser(context.Background(), "adiaz")
	require.NoError(t, err)
	require.NotNil(t, u)

	u, err = svc.ActiveUser(context.Background(), "inactivo")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.ActiveUser(context.Background(), "fantasma")
	require.NoError(t, err)
	assert.Nil(t, u)
}
