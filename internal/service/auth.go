package service

import (
	"context"

	"github.com/pquerna/otp/totp"
	"github.com/rookgm/streammart/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AdminRepository is interface for interacting with back-office users
type AdminRepository interface {
	// GetAdminByLogin returns admin user by login
	GetAdminByLogin(ctx context.Context, login string) (*models.AdminUser, error)
}

// AuthService verifies admin credentials and issues auth tokens.
// Login is password plus TOTP second factor.
type AuthService struct {
	repo  AdminRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(repo AdminRepository, token TokenService) *AuthService {
	return &AuthService{
		repo:  repo,
		token: token,
	}
}

// Login checks password and one-time code and returns a signed token.
func (as *AuthService) Login(ctx context.Context, login, password, otp string) (string, error) {
	admin, err := as.repo.GetAdminByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	if admin.TOTPSecret != "" && !totp.Validate(otp, admin.TOTPSecret) {
		return "", models.ErrInvalidOTP
	}

	return as.token.CreateToken(admin)
}
