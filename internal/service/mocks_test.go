package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"alugo-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetByAccessCode(ctx context.Context, accessCode string) (*domain.Rental, error) {
	args := m.Called(ctx, accessCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ExtendActiveByAccessCode(ctx context.Context, accessCode string, minutes int32, now time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, accessCode, minutes, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FinalizeIfActive(ctx context.Context, id int64, actualEnd time.Time, totalCents, overageMinutes int64) (bool, error) {
	args := m.Called(ctx, id, actualEnd, totalCents, overageMinutes)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ListByShop(ctx context.Context, shopID int64, status string, page, pageSize int32) ([]domain.Rental, int64, error) {
	args := m.Called(ctx, shopID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalRepo) ListOverdueActive(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id, shopID int64) (*domain.Item, error) {
	args := m.Called(ctx, id, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListByShop(ctx context.Context, shopID int64, page, pageSize int32) ([]domain.Item, int64, error) {
	args := m.Called(ctx, shopID, page, pageSize)
	return args.Get(0).([]domain.Item), args.Get(1).(int64), args.Error(2)
}
func (m *MockItemRepo) UpdateStatus(ctx context.Context, id int64, status domain.ItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockItemRepo) MarkRentedIfAvailable(ctx context.Context, id, shopID int64) (bool, error) {
	args := m.Called(ctx, id, shopID)
	return args.Bool(0), args.Error(1)
}
func (m *MockItemRepo) ListStrandedRented(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockItemTypeRepo
type MockItemTypeRepo struct {
	mock.Mock
}

func (m *MockItemTypeRepo) Create(ctx context.Context, t *domain.ItemType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockItemTypeRepo) GetByID(ctx context.Context, id, shopID int64) (*domain.ItemType, error) {
	args := m.Called(ctx, id, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemType), args.Error(1)
}
func (m *MockItemTypeRepo) Update(ctx context.Context, t *domain.ItemType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockItemTypeRepo) ListByShop(ctx context.Context, shopID int64) ([]domain.ItemType, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.ItemType), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetShopOwner(ctx context.Context, shopID int64) (*domain.User, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockShopRepo
type MockShopRepo struct {
	mock.Mock
}

func (m *MockShopRepo) Create(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}
func (m *MockShopRepo) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendFinalizationReceipt(ctx context.Context, to, toName, itemLabel, clientName string, totalCents, overageMinutes int64) error {
	args := m.Called(ctx, to, toName, itemLabel, clientName, totalCents, overageMinutes)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, to, toName, itemLabel, clientName string, overdueMinutes int64) error {
	args := m.Called(ctx, to, toName, itemLabel, clientName, overdueMinutes)
	return args.Error(0)
}
