package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/config"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	service, err := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		ExpirationHours: 1,
		Issuer:          "skillgap-analyzer",
	})
	require.NoError(t, err)
	return service
}

// Claims must keep satisfying the jwt.Claims interface through the
// embedded RegisteredClaims accessors.
var _ jwt.Claims = (*Claims)(nil)

func TestClaimsExposeRegisteredAccessors(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "operator"},
	}

	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "operator", subject)
}

func TestNewJWTServiceRequiresConfig(t *testing.T) {
	_, err := NewJWTService(nil)
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(t)

	token, err := service.GenerateToken("operator")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, "skillgap-analyzer", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestGenerateTokenRequiresSubject(t *testing.T) {
	service := newTestJWTService(t)
	_, err := service.GenerateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := newTestJWTService(t)
	other, err := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-signing-secret",
		ExpirationHours: 1,
		Issuer:          "skillgap-analyzer",
	})
	require.NoError(t, err)

	token, err := other.GenerateToken("operator")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := newTestJWTService(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator",
			Issuer:    "skillgap-analyzer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-at-least-32-characters!!"))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsMalformed(t *testing.T) {
	service := newTestJWTService(t)
	_, err := service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongAlgorithm(t *testing.T) {
	service := newTestJWTService(t)

	// An unsigned token must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "operator"},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}

func TestAsTokenValidator(t *testing.T) {
	service := newTestJWTService(t)

	token, err := service.GenerateToken("operator")
	require.NoError(t, err)

	subject, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", subject)

	_, err = service.AsTokenValidator().ValidateToken("garbage")
	assert.Error(t, err)
}
