package service

import "github.com/rookgm/streammart/internal/models"

type TokenService interface {
	CreateToken(admin *models.AdminUser) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}
