package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type PackageService interface {
	// ListActive returns packages shown to customers
	ListActive(ctx context.Context) ([]models.Package, error)
	// List returns all packages for the admin console
	List(ctx context.Context) ([]models.Package, error)
	// Create adds new package
	Create(ctx context.Context, pkg *models.Package) (*models.Package, error)
	// Update replaces package fields
	Update(ctx context.Context, pkg *models.Package) error
	// Delete removes package
	Delete(ctx context.Context, id uuid.UUID) error
}

// PackageHandler represents HTTP handler for catalog and package management
type PackageHandler struct {
	svc PackageService
}

// NewPackageHandler creates new PackageHandler instance
func NewPackageHandler(svc PackageService) *PackageHandler {
	return &PackageHandler{svc: svc}
}

type packageResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category,omitempty"`
	DurationMonths int    `json:"duration_months"`
	Price          string `json:"price"`
	Currency       string `json:"currency"`
	Active         bool   `json:"active"`
}

func toPackageResponse(pkg models.Package) packageResponse {
	return packageResponse{
		ID:             pkg.ID.String(),
		Name:           pkg.Name,
		Category:       pkg.Category,
		DurationMonths: pkg.DurationMonths,
		Price:          pkg.Price.StringFixed(2),
		Currency:       pkg.Currency,
		Active:         pkg.Active,
	}
}

type packageRequest struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	DurationMonths int    `json:"duration_months"`
	Price          string `json:"price"`
	Currency       string `json:"currency"`
	Active         bool   `json:"active"`
}

func (req *packageRequest) toModel() (*models.Package, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, err
	}

	return &models.Package{
		Name:           req.Name,
		Category:       req.Category,
		DurationMonths: req.DurationMonths,
		Price:          price,
		Currency:       req.Currency,
		Active:         req.Active,
	}, nil
}

// ListActivePackages returns the public catalog
// 200 — успешная обработка запроса.
// 500 — внутренняя ошибка сервера.
func (ph *PackageHandler) ListActivePackages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := ph.svc.ListActive(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ph.writePackages(w, packages)
	}
}

// ListPackages returns all packages for the admin console
func (ph *PackageHandler) ListPackages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := ph.svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ph.writePackages(w, packages)
	}
}

// CreatePackage adds new package
// 200 — пакет создан;
// 400 — неверный формат запроса;
// 500 — внутренняя ошибка сервера.
func (ph *PackageHandler) CreatePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req packageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		pkg, err := req.toModel()
		if err != nil {
			http.Error(w, "invalid price", http.StatusBadRequest)
			return
		}

		created, err := ph.svc.Create(r.Context(), pkg)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingFields):
				http.Error(w, "missing required fields", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toPackageResponse(*created)); err != nil {
			return
		}
	}
}

// UpdatePackage replaces package fields
// 200 — пакет обновлён;
// 400 — неверный формат запроса;
// 404 — пакет не найден;
// 500 — внутренняя ошибка сервера.
func (ph *PackageHandler) UpdatePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid package id", http.StatusBadRequest)
			return
		}

		var req packageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		pkg, err := req.toModel()
		if err != nil {
			http.Error(w, "invalid price", http.StatusBadRequest)
			return
		}
		pkg.ID = packageID

		if err := ph.svc.Update(r.Context(), pkg); err != nil {
			switch {
			case errors.Is(err, models.ErrMissingFields):
				http.Error(w, "missing required fields", http.StatusBadRequest)
			case errors.Is(err, models.ErrPackageNotFound):
				http.Error(w, "package not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeletePackage removes package
// 200 — пакет удалён;
// 404 — пакет не найден;
// 500 — внутренняя ошибка сервера.
func (ph *PackageHandler) DeletePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid package id", http.StatusBadRequest)
			return
		}

		if err := ph.svc.Delete(r.Context(), packageID); err != nil {
			switch {
			case errors.Is(err, models.ErrPackageNotFound):
				http.Error(w, "package not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (ph *PackageHandler) writePackages(w http.ResponseWriter, packages []models.Package) {
	resp := lo.Map(packages, func(pkg models.Package, _ int) packageResponse {
		return toPackageResponse(pkg)
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return
	}
}
