package domain

import "errors"

// Sentinel errors for the core operations. The error text doubles as the
// stable machine-readable code returned to callers; free-form detail stays
// in logs.
var (
	ErrItemUnavailable        = errors.New("ITEM_UNAVAILABLE")
	ErrItemNotFound           = errors.New("ITEM_NOT_FOUND")
	ErrItemTypeNotFound       = errors.New("ITEM_TYPE_NOT_FOUND")
	ErrItemRented             = errors.New("ITEM_RENTED")
	ErrInvalidDuration        = errors.New("INVALID_DURATION")
	ErrInvalidMinutes         = errors.New("INVALID_MINUTES")
	ErrInvalidPricing         = errors.New("INVALID_PRICING")
	ErrRentalNotFound         = errors.New("RENTAL_NOT_FOUND")
	ErrRentalAlreadyFinalized = errors.New("ALREADY_FINALIZED")
	ErrNotificationNotFound   = errors.New("NOTIFICATION_NOT_FOUND")
	ErrEmailTaken             = errors.New("EMAIL_TAKEN")
	ErrInvalidCredentials     = errors.New("INVALID_CREDENTIALS")
	ErrUnauthorized           = errors.New("UNAUTHORIZED")
	ErrValidation             = errors.New("VALIDATION_ERROR")
)
