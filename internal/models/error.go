package models

import "errors"

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrMissingFields      = errors.New("missing required fields")
	ErrUnknownProvider    = errors.New("unknown payment provider")
	ErrInvalidOTP         = errors.New("invalid one-time code")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrEmptyCheckoutURL   = errors.New("provider returned empty checkout url")
	ErrGateway            = errors.New("payment gateway error")
	ErrPollUnsupported    = errors.New("provider does not support payment polling")
	ErrInternalError      = errors.New("internal error")
)
