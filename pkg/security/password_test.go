package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/pkg/security"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := security.NewHasher(4)

	digest, err := h.Hash("Segura1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Segura1!", digest)

	assert.True(t, h.Verify("Segura1!", digest))
	assert.False(t, h.Verify("otra", digest))
	assert.False(t, h.Verify("Segura1!", ""))
	assert.False(t, h.Verify("Segura1!", "no-es-un-hash"))
}

func TestHashEmptyPassword(t *testing.T) {
	t.Parallel()

	h := security.NewHasher(4)
	_, err := h.Hash("")
	assert.Error(t, err)
}

func TestNewHasherClampsCost(t *testing.T) {
	t.Parallel()

	// costos fuera de rango no deben romper el hasheo
	for _, cost := range []int{-1, 0, 99} {
		h := security.NewHasher(cost)
		digest, err := h.Hash("Segura1!")
		require.NoError(t, err, "costo %d", cost)
		assert.True(t, h.Verify("Segura1!", digest))
	}
}
