package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/garnizeh/recruitd/pkg/models"
)

// TokenIssuer signs and verifies the opaque identity tokens carried by
// request headers. Claims are {username, role}; tokens expire after the
// configured duration (7 days by default).
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration}
}

// Identity is the verified content of a token.
type Identity struct {
	Username string
	Role     models.Role
}

func (t *TokenIssuer) Issue(username string, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role.String(),
		"exp":      time.Now().Add(t.duration).Unix(),
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token signature and expiry and extracts the
// identity claims.
func (t *TokenIssuer) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	username, _ := claims["username"].(string)
	roleName, _ := claims["role"].(string)
	if username == "" {
		return nil, errors.New("token missing username claim")
	}
	return &Identity{Username: username, Role: models.ParseRole(roleName)}, nil
}
