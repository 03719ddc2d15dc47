package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reclamos_backend/internal/config"
)

func configForJWT(t *testing.T, ttlMinutes int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "secreto-de-test"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	configForJWT(t, 120)

	token, err := GenerateToken("maria@cliente.com", "María López", "cliente")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "maria@cliente.com", claims.Email)
	assert.Equal(t, "María López", claims.Name)
	assert.Equal(t, "cliente", claims.Role)
	assert.Equal(t, "maria@cliente.com", claims.Subject)
}

func TestTokenAdulterado(t *testing.T) {
	configForJWT(t, 120)

	token, err := GenerateToken("maria@cliente.com", "María López", "cliente")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenConOtroSecreto(t *testing.T) {
	configForJWT(t, 120)
	token, err := GenerateToken("maria@cliente.com", "María López", "cliente")
	require.NoError(t, err)

	configForJWT(t, 120)
	config.AppConfig.JWT.Secret = "otro-secreto"

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVencido(t *testing.T) {
	configForJWT(t, -1)

	token, err := GenerateToken("maria@cliente.com", "María López", "cliente")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
