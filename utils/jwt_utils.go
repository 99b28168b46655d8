package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"assetvault/models"
)

// Claims carries the signed identity embedded in every bearer token. Role and
// department are trusted as-is for the token lifetime; expiry is the only
// invalidation path.
type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the administrative role.
func (c *Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func GenerateToken(user *models.User, jwtSecret string, ttl time.Duration, issuer string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:     user.ID.Hex(),
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyToken fails closed: any signature mismatch, malformed structure or
// expired token yields an error and no claims.
func VerifyToken(tokenString string, jwtSecret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
