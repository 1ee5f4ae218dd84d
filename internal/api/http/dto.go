package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"alugo-backend/internal/domain"
)

var validate = validator.New()

// decodeJSON parses and validates a request body. Any shape or tag failure
// maps to the VALIDATION_ERROR code.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrValidation
	}
	if err := validate.Struct(v); err != nil {
		return domain.ErrValidation
	}
	return nil
}

type signupRequest struct {
	ShopName string `json:"shop_name" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type authResponse struct {
	User         *domain.User `json:"user,omitempty"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type itemTypeRequest struct {
	Name                 string `json:"name" validate:"required"`
	PricingModel         string `json:"pricing_model" validate:"required"`
	PricePerMinuteCents  int64  `json:"price_per_minute_cents" validate:"min=0"`
	PricePerDayCents     int64  `json:"price_per_day_cents" validate:"min=0"`
	PriceFixedCents      int64  `json:"price_fixed_cents" validate:"min=0"`
	PriceBlockCents      int64  `json:"price_block_cents" validate:"min=0"`
	BlockDurationMinutes int64  `json:"block_duration_minutes" validate:"min=0"`
}

type itemRequest struct {
	TypeID int64  `json:"type_id" validate:"required"`
	Label  string `json:"label" validate:"required"`
	Notes  string `json:"notes"`
}

type itemStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createRentalRequest struct {
	ItemID          int64  `json:"item_id" validate:"required"`
	ClientName      string `json:"client_name" validate:"required"`
	ClientPhone     string `json:"client_phone"`
	DurationMinutes int64  `json:"duration_minutes"`
	Days            int32  `json:"days"`
}

type extendRentalRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
	Minutes    int32  `json:"minutes" validate:"required"`
}

type extendRentalResponse struct {
	EndTime        time.Time `json:"end_time"`
	ExtensionCount int32     `json:"extension_count"`
}

type finalizeRentalRequest struct {
	RentalID int64 `json:"rental_id" validate:"required"`
}

type finalizeRentalResponse struct {
	TotalCostCents      int64     `json:"total_cost_cents"`
	TotalOverageMinutes int64     `json:"total_overage_minutes"`
	ActualEndTime       time.Time `json:"actual_end_time"`
}

// trackResponse is the public countdown view. It intentionally omits
// internal ids, client contact details and rate fields.
type trackResponse struct {
	Status           domain.RentalStatus `json:"status"`
	StartTime        time.Time           `json:"start_time"`
	EndTime          time.Time           `json:"end_time"`
	ActualEndTime    *time.Time          `json:"actual_end_time,omitempty"`
	RemainingSeconds int64               `json:"remaining_seconds"`
	ExtensionCount   int32               `json:"extension_count"`
}

type listResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}
