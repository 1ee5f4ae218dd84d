package repository

import (
	"context"
	"time"

	"alugo-backend/internal/domain"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetShopOwner(ctx context.Context, shopID int64) (*domain.User, error)
}

type ItemTypeRepository interface {
	Create(ctx context.Context, t *domain.ItemType) error
	GetByID(ctx context.Context, id, shopID int64) (*domain.ItemType, error)
	Update(ctx context.Context, t *domain.ItemType) error
	ListByShop(ctx context.Context, shopID int64) ([]domain.ItemType, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id, shopID int64) (*domain.Item, error)
	ListByShop(ctx context.Context, shopID int64, page, pageSize int32) ([]domain.Item, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ItemStatus) error
	// MarkRentedIfAvailable flips AVAILABLE -> RENTED as a single conditional
	// update and reports whether the row matched. False means the item was
	// not available at the moment of the write.
	MarkRentedIfAvailable(ctx context.Context, id, shopID int64) (bool, error)
	// ListStrandedRented returns items stuck in RENTED with no active rental,
	// the recoverable inconsistency left behind when the post-finalize item
	// update failed.
	ListStrandedRented(ctx context.Context) ([]domain.Item, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	GetByAccessCode(ctx context.Context, accessCode string) (*domain.Rental, error)
	// ExtendActiveByAccessCode pushes end_time forward by the given minutes
	// in a single conditional update; the ACTIVE status check is part of the
	// WHERE clause so an extension can never land on a finalized rental.
	// Returns sql.ErrNoRows when no active rental carries the code.
	ExtendActiveByAccessCode(ctx context.Context, accessCode string, minutes int32, now time.Time) (*domain.Rental, error)
	// FinalizeIfActive is the single-writer transition ACTIVE -> FINALIZED.
	// It reports whether this caller won the race; a false return with nil
	// error means another writer finalized first.
	FinalizeIfActive(ctx context.Context, id int64, actualEnd time.Time, totalCents, overageMinutes int64) (bool, error)
	ListByShop(ctx context.Context, shopID int64, status string, page, pageSize int32) ([]domain.Rental, int64, error)
	// ListOverdueActive returns active rentals whose scheduled end passed
	// before the cutoff.
	ListOverdueActive(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
}
