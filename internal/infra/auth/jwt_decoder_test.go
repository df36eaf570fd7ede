package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signTestToken builds a token the way the hospital backend issues them.
func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-owned-secret"))
	require.NoError(t, err)

	return signed
}

func TestJWTDecoder_DecodesIdentityClaims(t *testing.T) {
	decoder := NewJWTDecoder()

	now := time.Now()
	tokenString := signTestToken(t, jwt.MapClaims{
		"email":           "doctora@hospital.pe",
		"nombre_completo": "Ana María Torres",
		"role":            "Admin",
		"iat":             now.Unix(),
		"exp":             now.Add(time.Hour).Unix(),
	})

	claims, err := decoder.Decode(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "doctora@hospital.pe", claims.Email)
	assert.Equal(t, "Ana María Torres", claims.FullName)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, now.Unix(), claims.IssuedAt)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt)
}

func TestJWTDecoder_ExpiredTokenStillDecodes(t *testing.T) {
	// Expiration is the backend's call; decoding must surface whatever
	// claims are present even when exp is in the past.
	decoder := NewJWTDecoder()

	tokenString := signTestToken(t, jwt.MapClaims{
		"email": "viejo@hospital.pe",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := decoder.Decode(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "viejo@hospital.pe", claims.Email)
	assert.Less(t, claims.ExpiresAt, time.Now().Unix())
}

func TestJWTDecoder_DefaultsRoleProjection(t *testing.T) {
	decoder := NewJWTDecoder()

	tokenString := signTestToken(t, jwt.MapClaims{
		"email":           "sinrol@hospital.pe",
		"nombre_completo": "Sin Rol",
	})

	claims, err := decoder.Decode(tokenString)
	require.NoError(t, err)

	identity := claims.Identity()
	assert.Equal(t, "User", identity.Role)
	assert.Equal(t, "Sin Rol", identity.FullName)
}

func TestJWTDecoder_MalformedToken(t *testing.T) {
	decoder := NewJWTDecoder()

	claims, err := decoder.Decode("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTDecoder_MissingEmailClaim(t *testing.T) {
	decoder := NewJWTDecoder()

	tokenString := signTestToken(t, jwt.MapClaims{
		"nombre_completo": "Sin Correo",
	})

	claims, err := decoder.Decode(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
