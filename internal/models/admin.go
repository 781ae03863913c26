package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is back-office user entity
type AdminUser struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	TOTPSecret   string
	CreatedAt    time.Time
}

// TokenPayload is authorization token payload
type TokenPayload struct {
	AdminID uuid.UUID
	Login   string
}
