package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/internal/application/validator"
	"github.com/jhoicas/rrhh-console/internal/domain"
)

func TestUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"válido", "jperez", "jperez", false},
		{"válido con guion bajo y dígitos", "j_perez99", "j_perez99", false},
		{"se recorta", "  ana  ", "ana", false},
		{"vacío", "", "", true},
		{"solo espacios", "   ", "", true},
		{"demasiado corto", "ab", "", true},
		{"caracteres inválidos", "j.perez", "", true},
		{"con espacio interno", "j perez", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := validator.Username(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"válida", "Segura1!", false},
		{"válida larga", "MuySegura123#xyz", false},
		{"vacía", "", true},
		{"corta", "Ab1!", true},
		{"sin mayúscula", "segura1!", true},
		{"sin minúscula", "SEGURA1!", true},
		{"sin dígito", "Segura!!", true},
		{"sin símbolo", "Segura12", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Password(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"válido", "Juan Pérez", "Juan Pérez", false},
		{"con tildes y eñe", "Ñico Muñoz Ibáñez", "Ñico Muñoz Ibáñez", false},
		{"se recorta", "  Ana Díaz  ", "Ana Díaz", false},
		{"vacío", "", "", true},
		{"demasiado corto", "Al B", "", true},
		{"una sola palabra", "Juanito", "", true},
		{"con dígitos", "Juan P3rez", "", true},
		{"demasiado largo", "Nombre Apellidolarguisimoquenoterminanuncaysigueysigueysiguemas", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := validator.FullName(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"admin", "admin", "admin", false},
		{"usuario", "usuario", "usuario", false},
		{"mayúsculas se normalizan", "ADMIN", "admin", false},
		{"vacío", "", "", true},
		{"con espacio al final", "admin ", "", true},
		{"con espacio interno", "ad min", "", true},
		{"desconocido", "root", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := validator.Role(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	full, err := validator.ParseDate("2024-03-15 08:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), full)

	dateOnly, err := validator.ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), dateOnly)

	trimmed, err := validator.ParseDate("  2024-03-15  ")
	require.NoError(t, err)
	assert.Equal(t, dateOnly, trimmed)

	for _, bad := range []string{"", "15/03/2024", "2024-13-01", "ayer"} {
		_, err := validator.ParseDate(bad)
		assert.True(t, errors.Is(err, domain.ErrValidation), "entrada %q", bad)
	}
}

func TestLoginInput(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.LoginInput("ana", "loquesea"))
	assert.ErrorIs(t, validator.LoginInput("", "x"), domain.ErrValidation)
	assert.ErrorIs(t, validator.LoginInput("ana", "   "), domain.ErrValidation)
}
