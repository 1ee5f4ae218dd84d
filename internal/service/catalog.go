package service

import (
	"context"
	"database/sql"
	"errors"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type catalogService struct {
	typeRepo repository.ItemTypeRepository
	itemRepo repository.ItemRepository
}

func NewCatalogService(typeRepo repository.ItemTypeRepository, itemRepo repository.ItemRepository) CatalogService {
	return &catalogService{typeRepo: typeRepo, itemRepo: itemRepo}
}

// validateItemType enforces that the rate required by the pricing model is
// configured. fixed_rate additionally requires a per-minute overage rate:
// that snapshot is the single source of truth for overage billing.
func validateItemType(t *domain.ItemType) error {
	if !domain.ValidPricingModel(t.PricingModel) {
		return domain.ErrInvalidPricing
	}
	if t.PricePerMinuteCents < 0 || t.PricePerDayCents < 0 || t.PriceFixedCents < 0 || t.PriceBlockCents < 0 {
		return domain.ErrInvalidPricing
	}
	switch t.PricingModel {
	case domain.PricingPerMinute:
		if t.PricePerMinuteCents == 0 {
			return domain.ErrInvalidPricing
		}
	case domain.PricingPerDay:
		if t.PricePerDayCents == 0 {
			return domain.ErrInvalidPricing
		}
	case domain.PricingFixedRate:
		if t.PriceFixedCents == 0 || t.PricePerMinuteCents == 0 {
			return domain.ErrInvalidPricing
		}
	case domain.PricingBlock:
		if t.PriceBlockCents == 0 || t.BlockDurationMinutes < 1 {
			return domain.ErrInvalidPricing
		}
	}
	return nil
}

func (s *catalogService) CreateItemType(ctx context.Context, t *domain.ItemType) error {
	if err := validateItemType(t); err != nil {
		return err
	}
	return s.typeRepo.Create(ctx, t)
}

func (s *catalogService) GetItemType(ctx context.Context, shopID, id int64) (*domain.ItemType, error) {
	t, err := s.typeRepo.GetByID(ctx, id, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *catalogService) UpdateItemType(ctx context.Context, t *domain.ItemType) error {
	if err := validateItemType(t); err != nil {
		return err
	}
	if _, err := s.GetItemType(ctx, t.ShopID, t.ID); err != nil {
		return err
	}
	return s.typeRepo.Update(ctx, t)
}

func (s *catalogService) ListItemTypes(ctx context.Context, shopID int64) ([]domain.ItemType, error) {
	return s.typeRepo.ListByShop(ctx, shopID)
}

func (s *catalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	if _, err := s.GetItemType(ctx, item.ShopID, item.TypeID); err != nil {
		return err
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}
	if item.Status == domain.ItemStatusRented {
		return domain.ErrValidation
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *catalogService) GetItem(ctx context.Context, shopID, id int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) ListItems(ctx context.Context, shopID int64, page, pageSize int32) ([]domain.Item, int64, error) {
	return s.itemRepo.ListByShop(ctx, shopID, page, pageSize)
}

func (s *catalogService) SetItemStatus(ctx context.Context, shopID, id int64, status domain.ItemStatus) (*domain.Item, error) {
	switch status {
	case domain.ItemStatusAvailable, domain.ItemStatusMaintenance, domain.ItemStatusDisabled:
	default:
		// RENTED belongs to the rental lifecycle.
		return nil, domain.ErrValidation
	}

	item, err := s.GetItem(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.ItemStatusRented {
		// Finalize the active rental instead of forcing the status.
		return nil, domain.ErrItemRented
	}

	if err := s.itemRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	item.Status = status
	return item, nil
}
