package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

var (
	jwtSecret []byte
	tokenTTL  = 24 * time.Hour
)

// Configure sets the signing secret and token lifetime. Must be called once
// at startup before any token is generated or parsed.
func Configure(secret string, ttl time.Duration) {
	jwtSecret = []byte(secret)
	tokenTTL = ttl
}

// GenerateToken signs a token identifying the user. The payload carries only
// id and email, plus the expiry claim.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims parses the token carried in an Authorization header value and
// returns its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, nil, errors.New("missing bearer token")
	}

	token, err := ParseToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil || !token.Valid {
		return nil, nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("malformed token payload")
	}
	return token, claims, nil
}

// UserIDFromClaims extracts the id claim. JSON numbers decode as float64.
func UserIDFromClaims(claims jwt.MapClaims) (int, error) {
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("malformed token payload")
	}
	return int(id), nil
}
