package jwt_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/skladpro/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "skladpro-test"
)

func testClaims() pkgjwt.Claims {
	return pkgjwt.Claims{SessionID: "sid-1", Name: "A", Email: "a@b.com", Role: "buyer"}
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testClaims(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "A", claims.Name)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "buyer", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Nil(t, claims.ExpiresAt, "sin TTL el token no expira")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	claims := testClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testClaims(), 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, testClaims(), 0)
	assert.Error(t, err)
	_, err = pkgjwt.Parse("", testIssuer, "x.y.z")
	assert.Error(t, err)
}

func TestJWT_EmisorDistinto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "otro-servicio", testClaims(), 0)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer, "mismo secreto, otro emisor")

	_, err = pkgjwt.Parse(testSecret, "", tok)
	assert.NoError(t, err, "sin emisor configurado no se exige")
}
