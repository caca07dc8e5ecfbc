package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(101)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(101), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

// Secret kosong tidak boleh bisa dipakai bikin ataupun menerima token:
// token HS256 dengan key kosong bisa dipalsukan siapa saja
func TestEmptySecretRefusedOnBothSides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(777)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "")

	_, err = GenerateToken(777)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
