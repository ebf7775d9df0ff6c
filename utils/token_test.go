package utils_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/arukavina95/CityVoice/models"
	"github.com/arukavina95/CityVoice/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-key"

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "ana",
		Email:    "ana@example.com",
		Role:     models.Role{ID: 1, Name: string(models.RoleCitizen)},
	}
}

func signClaims(t *testing.T, claims utils.Claims, method jwt.SigningMethod, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func baseClaims() utils.Claims {
	return utils.Claims{
		Username: "ana",
		Email:    "ana@example.com",
		Role:     string(models.RoleCitizen),
		StandardClaims: jwt.StandardClaims{
			Subject:   "42",
			Issuer:    "cityvoice-api",
			Audience:  "cityvoice-client",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	user := testUser()
	signed, err := utils.GenerateToken(user)
	require.NoError(t, err)

	claims, err := utils.ParseToken(signed)
	require.NoError(t, err)

	assert.Equal(t, strconv.Itoa(int(user.ID)), claims.Subject)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(models.RoleCitizen), claims.Role)

	// 7-day lifetime, give or take the test's own runtime.
	expected := time.Now().Add(7 * 24 * time.Hour).Unix()
	assert.InDelta(t, expected, claims.ExpiresAt, 60)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	claims := baseClaims()
	claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	signed := signClaims(t, claims, jwt.SigningMethodHS512, testSecret)

	_, err := utils.ParseToken(signed)
	assert.Error(t, err)
}

func TestWrongSignatureRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	signed := signClaims(t, baseClaims(), jwt.SigningMethodHS512, "some-other-key")

	_, err := utils.ParseToken(signed)
	assert.Error(t, err)
}

func TestWrongSigningMethodRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	signed := signClaims(t, baseClaims(), jwt.SigningMethodHS256, testSecret)

	_, err := utils.ParseToken(signed)
	assert.Error(t, err)
}

func TestWrongIssuerRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	claims := baseClaims()
	claims.Issuer = "someone-else"
	signed := signClaims(t, claims, jwt.SigningMethodHS512, testSecret)

	_, err := utils.ParseToken(signed)
	assert.Error(t, err)
}

func TestWrongAudienceRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	claims := baseClaims()
	claims.Audience = "other-client"
	signed := signClaims(t, claims, jwt.SigningMethodHS512, testSecret)

	_, err := utils.ParseToken(signed)
	assert.Error(t, err)
}
