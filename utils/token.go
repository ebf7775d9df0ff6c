package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/arukavina95/CityVoice/models"

	"github.com/dgrijalva/jwt-go"
)

// Token lifetime is fixed at 7 days from issuance.
const tokenLifetime = 7 * 24 * time.Hour

// Claims is the identity/role fact set embedded in a bearer token.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// GenerateToken signs a 7-day HS512 token for the given user. The user's
// Role must be loaded.
func GenerateToken(user *models.User) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role.Name,
		StandardClaims: jwt.StandardClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    tokenIssuer(),
			Audience:  tokenAudience(),
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	tokenString, err := token.SignedString([]byte(secretStr))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates signature, expiry (no clock-skew tolerance), issuer
// and audience, and returns the embedded claims.
func ParseToken(tokenString string) (*Claims, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS512 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretStr), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if !claims.VerifyIssuer(tokenIssuer(), true) {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if !claims.VerifyAudience(tokenAudience(), true) {
		return nil, fmt.Errorf("invalid token audience")
	}

	return claims, nil
}

func tokenIssuer() string {
	if iss := os.Getenv("JWT_ISSUER"); iss != "" {
		return iss
	}
	return "cityvoice-api"
}

func tokenAudience() string {
	if aud := os.Getenv("JWT_AUDIENCE"); aud != "" {
		return aud
	}
	return "cityvoice-client"
}
