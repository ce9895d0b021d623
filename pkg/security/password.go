// Package security encapsula el hash y la verificación de contraseñas.
// El resto del sistema solo conoce estas dos operaciones, nunca el algoritmo.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

// Hasher genera y verifica hashes bcrypt con un costo configurable.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher. Costos fuera del rango de bcrypt caen al
// costo por defecto de la librería.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash genera un hash seguro a partir de una contraseña en texto plano.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", domain.NewValidationError("la contraseña no puede estar vacía")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compara una contraseña en texto plano contra su hash almacenado.
// Devuelve false ante hash vacío o malformado, nunca error.
func (h *Hasher) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
