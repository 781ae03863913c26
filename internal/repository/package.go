package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
	"github.com/rookgm/streammart/internal/repository/postgres"
)

const (
	packageColumns = `id, name, category, duration_months, price, currency, active, created_at, updated_at`

	insertPackageQuery = `
						INSERT INTO packages (name, category, duration_months, price, currency, active)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING ` + packageColumns

	selectPackageByIDQuery = `
						SELECT ` + packageColumns + ` FROM packages
						WHERE id = $1
`
	selectActivePackagesQuery = `
						SELECT ` + packageColumns + ` FROM packages
						WHERE active
						ORDER BY price
`
	selectPackagesQuery = `
						SELECT ` + packageColumns + ` FROM packages
						ORDER BY created_at DESC
`
	updatePackageQuery = `
						UPDATE packages
						SET name = $1, category = $2, duration_months = $3, price = $4, currency = $5, active = $6, updated_at = now()
						WHERE id = $7
`
	deletePackageQuery = `
						DELETE FROM packages
						WHERE id = $1
`
)

// PackageRepository implements package persistence over postgres
type PackageRepository struct {
	db *postgres.DB
}

// NewPackageRepository creates new PackageRepository instance
func NewPackageRepository(db *postgres.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (pr *PackageRepository) scanPackage(row interface{ Scan(...any) error }) (*models.Package, error) {
	pkg := models.Package{}
	err := row.Scan(&pkg.ID, &pkg.Name, &pkg.Category, &pkg.DurationMonths,
		&pkg.Price, &pkg.Currency, &pkg.Active, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// CreatePackage inserts new package
func (pr *PackageRepository) CreatePackage(ctx context.Context, pkg *models.Package) (*models.Package, error) {
	row := pr.db.QueryRow(ctx, insertPackageQuery, pkg.Name, pkg.Category,
		pkg.DurationMonths, pkg.Price, pkg.Currency, pkg.Active)
	return pr.scanPackage(row)
}

// GetPackageByID returns package by id
func (pr *PackageRepository) GetPackageByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	pkg, err := pr.scanPackage(pr.db.QueryRow(ctx, selectPackageByIDQuery, id))
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, models.ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// GetActivePackages returns packages offered at checkout
func (pr *PackageRepository) GetActivePackages(ctx context.Context) ([]models.Package, error) {
	return pr.listPackages(ctx, selectActivePackagesQuery)
}

// GetPackages returns all packages for the admin console
func (pr *PackageRepository) GetPackages(ctx context.Context) ([]models.Package, error) {
	return pr.listPackages(ctx, selectPackagesQuery)
}

func (pr *PackageRepository) listPackages(ctx context.Context, query string) ([]models.Package, error) {
	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := []models.Package{}

	for rows.Next() {
		pkg, err := pr.scanPackage(rows)
		if err != nil {
			continue
		}
		packages = append(packages, *pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}

// UpdatePackage updates package fields
func (pr *PackageRepository) UpdatePackage(ctx context.Context, pkg *models.Package) error {
	cmd, err := pr.db.Exec(ctx, updatePackageQuery, pkg.Name, pkg.Category,
		pkg.DurationMonths, pkg.Price, pkg.Currency, pkg.Active, pkg.ID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrPackageNotFound
	}

	return nil
}

// DeletePackage removes package
func (pr *PackageRepository) DeletePackage(ctx context.Context, id uuid.UUID) error {
	cmd, err := pr.db.Exec(ctx, deletePackageQuery, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrPackageNotFound
	}

	return nil
}
