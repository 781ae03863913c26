package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package is subscription package entity sold at checkout
type Package struct {
	ID             uuid.UUID
	Name           string
	Category       string
	DurationMonths int
	Price          decimal.Decimal
	Currency       string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
