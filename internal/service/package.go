package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
)

// PackageRepository is interface for interacting with package-related data
type PackageRepository interface {
	// CreatePackage inserts new package
	CreatePackage(ctx context.Context, pkg *models.Package) (*models.Package, error)
	// GetPackageByID returns package by id
	GetPackageByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
	// GetActivePackages returns packages offered at checkout
	GetActivePackages(ctx context.Context) ([]models.Package, error)
	// GetPackages returns all packages
	GetPackages(ctx context.Context) ([]models.Package, error)
	// UpdatePackage updates package fields
	UpdatePackage(ctx context.Context, pkg *models.Package) error
	// DeletePackage removes package
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

// PackageService manages the subscription catalog
type PackageService struct {
	repo PackageRepository
}

// NewPackageService creates new PackageService instance
func NewPackageService(repo PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

// ListActive returns packages shown to customers
func (ps *PackageService) ListActive(ctx context.Context) ([]models.Package, error) {
	return ps.repo.GetActivePackages(ctx)
}

// List returns all packages for the admin console
func (ps *PackageService) List(ctx context.Context) ([]models.Package, error) {
	return ps.repo.GetPackages(ctx)
}

// Create adds new package
func (ps *PackageService) Create(ctx context.Context, pkg *models.Package) (*models.Package, error) {
	if pkg.Name == "" || pkg.Price.IsNegative() {
		return nil, models.ErrMissingFields
	}
	return ps.repo.CreatePackage(ctx, pkg)
}

// Update replaces package fields
func (ps *PackageService) Update(ctx context.Context, pkg *models.Package) error {
	if pkg.Name == "" || pkg.Price.IsNegative() {
		return models.ErrMissingFields
	}
	return ps.repo.UpdatePackage(ctx, pkg)
}

// Delete removes package
func (ps *PackageService) Delete(ctx context.Context, id uuid.UUID) error {
	return ps.repo.DeletePackage(ctx, id)
}
