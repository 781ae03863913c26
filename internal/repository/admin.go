package repository

import (
	"context"

	"github.com/rookgm/streammart/internal/models"
	"github.com/rookgm/streammart/internal/repository/postgres"
)

const selectAdminByLoginQuery = `
						SELECT id, login, password_hash, totp_secret, created_at FROM admin_users
						WHERE login = $1
`

// AdminRepository implements back-office user persistence over postgres
type AdminRepository struct {
	db *postgres.DB
}

// NewAdminRepository creates new AdminRepository instance
func NewAdminRepository(db *postgres.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetAdminByLogin returns admin user by login
func (ar *AdminRepository) GetAdminByLogin(ctx context.Context, login string) (*models.AdminUser, error) {
	admin := models.AdminUser{}
	err := ar.db.QueryRow(ctx, selectAdminByLoginQuery, login).
		Scan(&admin.ID, &admin.Login, &admin.PasswordHash, &admin.TOTPSecret, &admin.CreatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	return &admin, nil
}
