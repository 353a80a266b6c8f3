package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateYParse(t *testing.T) {
	token, err := Generate(testSecret, "user-1", "admin", "monitoreo-api", 5)
	require.NoError(t, err)

	userID, role, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate(testSecret, "user-1", "admin", "monitoreo-api", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := Generate(testSecret, "user-1", "admin", "monitoreo-api", -1)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "user-1", "admin", "x", 5)
	assert.Error(t, err)
	_, _, err = Parse("", "token")
	assert.Error(t, err)
}

func TestParse_SinUsuario(t *testing.T) {
	token, err := Generate(testSecret, "", "admin", "monitoreo-api", 5)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, token)
	assert.Error(t, err)
}
