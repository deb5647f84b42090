package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// AccessTokenTTL is deliberately short; clients are expected to refresh.
const AccessTokenTTL = 20 * time.Minute

// ErrTokenExpired distinguishes an expired access token from an invalid
// one, so handlers can answer with the "jwt expired" message clients key
// their refresh on.
var ErrTokenExpired = errors.New("jwt expired")

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Development fallback, same as the sample .env.
		secret = "StellarSecretKeyAUTH2024"
	}
	jwtSecret = []byte(secret)
}

type AccessClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken mints a short-lived access token for the stub API.
func GenerateAccessToken(userID uint, email string) (string, error) {
	claims := &AccessClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "StellarBurgersStub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseAccessToken validates a token and returns its claims.
func ParseAccessToken(tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.New("invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
