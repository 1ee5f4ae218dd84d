package service

import (
	"context"
	"time"

	"alugo-backend/internal/domain"
)

// Clock supplies "now" to the services. It is injected so that every
// operation reads the clock exactly once and tests can pin it.
type Clock func() time.Time

// CreateRentalParams is the validated input for starting a rental.
// DurationMinutes is used by minute-based pricing models; Days by per_day.
type CreateRentalParams struct {
	ItemID          int64
	ClientName      string
	ClientPhone     string
	DurationMinutes int64
	Days            int32
}

// FinalizeResult is the billing report produced by the winning finalize.
type FinalizeResult struct {
	Rental         *domain.Rental
	TotalCents     int64
	OverageMinutes int64
	ActualEndTime  time.Time
}

type AuthService interface {
	// Signup creates a shop and its owner account and returns the owner plus
	// an access/refresh token pair.
	Signup(ctx context.Context, shopName, name, email, phone, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type CatalogService interface {
	CreateItemType(ctx context.Context, t *domain.ItemType) error
	GetItemType(ctx context.Context, shopID, id int64) (*domain.ItemType, error)
	UpdateItemType(ctx context.Context, t *domain.ItemType) error
	ListItemTypes(ctx context.Context, shopID int64) ([]domain.ItemType, error)

	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, shopID, id int64) (*domain.Item, error)
	ListItems(ctx context.Context, shopID int64, page, pageSize int32) ([]domain.Item, int64, error)
	// SetItemStatus moves an item between AVAILABLE, MAINTENANCE and
	// DISABLED. RENTED is owned by the rental lifecycle and cannot be set
	// or cleared here.
	SetItemStatus(ctx context.Context, shopID, id int64, status domain.ItemStatus) (*domain.Item, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, shopID int64, params CreateRentalParams) (*domain.Rental, error)
	// ExtendRental pushes the scheduled end of the active rental identified
	// by accessCode forward by 1..240 minutes.
	ExtendRental(ctx context.Context, accessCode string, minutes int32) (*domain.Rental, error)
	// FinalizeRental closes the rental exactly once and returns the billed
	// totals. When the rental is already finalized it returns the stored
	// totals together with domain.ErrRentalAlreadyFinalized.
	FinalizeRental(ctx context.Context, shopID, rentalID int64) (*FinalizeResult, error)
	GetRental(ctx context.Context, shopID, rentalID int64) (*domain.Rental, error)
	ListRentals(ctx context.Context, shopID int64, status string, page, pageSize int32) ([]domain.Rental, int64, error)
	// TrackRental is the unauthenticated countdown view for end clients.
	TrackRental(ctx context.Context, accessCode string) (*domain.Rental, error)
}

type NotificationService interface {
	List(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
}

type EmailService interface {
	SendFinalizationReceipt(ctx context.Context, to, toName, itemLabel, clientName string, totalCents, overageMinutes int64) error
	SendOverdueNotice(ctx context.Context, to, toName, itemLabel, clientName string, overdueMinutes int64) error
}
