package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
)

const tokenTTL = 24 * time.Hour

// AuthToken issues and verifies signed auth tokens for the admin console
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id"`
	Login   string `json:"login"`
}

// CreateToken returns a signed token for the admin user
func (at *AuthToken) CreateToken(admin *models.AdminUser) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AdminID: admin.ID.String(),
		Login:   admin.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(at.key)
}

// VerifyToken parses and validates a token string
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	claims := tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return at.key, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, err
	}

	return &models.TokenPayload{
		AdminID: adminID,
		Login:   claims.Login,
	}, nil
}
