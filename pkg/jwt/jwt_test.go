package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Restaurante-api/pkg/jwt"
)

const (
	secret       = "test-secret-key-for-unit-tests"
	userID       = "00000000-0000-0000-0000-000000000001"
	restaurantID = "00000000-0000-0000-0000-000000000002"
	issuer       = "restaurante-test"
)

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, restaurantID, "COCINA", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(secret, issuer, tok)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, restaurantID, claims.RestaurantID)
	assert.Equal(t, "COCINA", claims.Role)
	assert.Equal(t, userID, claims.Subject)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, restaurantID, "ADMIN", issuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, issuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, restaurantID, "ADMIN", issuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", issuer, tok)
	assert.Error(t, err)
}

func TestJWT_IssuerVacioNoSeExige(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, restaurantID, "ADMIN", "cualquiera", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, "", tok)
	assert.NoError(t, err)

	_, err = pkgjwt.Parse(secret, issuer, tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, restaurantID, "ADMIN", issuer, 60)
	assert.Error(t, err)
}
