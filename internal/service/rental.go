package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/logger"
	"alugo-backend/internal/pricing"
	"alugo-backend/internal/repository"
	"alugo-backend/internal/security"
)

const (
	// Server-enforced extension bound. The 15/30/60/120 denominations the
	// client UI offers are affordances on top of this.
	minExtensionMinutes = 1
	maxExtensionMinutes = 240

	minutesPerDay      = 1440
	maxDurationMinutes = 7 * minutesPerDay
	maxDurationDays    = 365
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	itemRepo   repository.ItemRepository
	typeRepo   repository.ItemTypeRepository
	userRepo   repository.UserRepository
	noteRepo   repository.NotificationRepository
	emailSvc   EmailService
	now        Clock
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	typeRepo repository.ItemTypeRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	clock Clock,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
		typeRepo:   typeRepo,
		userRepo:   userRepo,
		noteRepo:   noteRepo,
		emailSvc:   emailSvc,
		now:        clock,
	}
}

func ratesFromType(t *domain.ItemType) pricing.Rates {
	return pricing.Rates{
		PerMinuteCents:       t.PricePerMinuteCents,
		PerDayCents:          t.PricePerDayCents,
		FixedCents:           t.PriceFixedCents,
		BlockCents:           t.PriceBlockCents,
		BlockDurationMinutes: t.BlockDurationMinutes,
	}
}

func ratesFromRental(rt *domain.Rental) pricing.Rates {
	return pricing.Rates{
		PerMinuteCents:       rt.PricePerMinuteCents,
		PerDayCents:          rt.PricePerDayCents,
		FixedCents:           rt.PriceFixedCents,
		BlockCents:           rt.PriceBlockCents,
		BlockDurationMinutes: rt.BlockDurationMinutes,
		InitialCostCents:     rt.InitialCostCents,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, shopID int64, params CreateRentalParams) (*domain.Rental, error) {
	item, err := s.itemRepo.GetByID(ctx, params.ItemID, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	itype, err := s.typeRepo.GetByID(ctx, item.TypeID, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemTypeNotFound
		}
		return nil, err
	}

	durationMinutes, err := resolveDuration(itype, params)
	if err != nil {
		return nil, err
	}

	accessCode, err := security.NewAccessCode()
	if err != nil {
		return nil, fmt.Errorf("generate access code: %w", err)
	}

	// Claim the item first. The conditional update is what guarantees at
	// most one active rental per item.
	claimed, err := s.itemRepo.MarkRentedIfAvailable(ctx, item.ID, shopID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.ErrItemUnavailable
	}

	now := s.now()
	rates := ratesFromType(itype)
	rental := &domain.Rental{
		ShopID:               shopID,
		ItemID:               item.ID,
		AccessCode:           accessCode,
		ClientName:           params.ClientName,
		ClientPhone:          params.ClientPhone,
		Status:               domain.RentalStatusActive,
		StartTime:            now,
		EndTime:              now.Add(time.Duration(durationMinutes) * time.Minute),
		PricingModel:         itype.PricingModel,
		PricePerMinuteCents:  itype.PricePerMinuteCents,
		PricePerDayCents:     itype.PricePerDayCents,
		PriceFixedCents:      itype.PriceFixedCents,
		PriceBlockCents:      itype.PriceBlockCents,
		BlockDurationMinutes: itype.BlockDurationMinutes,
		InitialCostCents:     pricing.InitialCost(itype.PricingModel, durationMinutes, rates),
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Give the item back; losing this revert strands the item as
		// RENTED, which the repair sweep picks up.
		if revertErr := s.itemRepo.UpdateStatus(ctx, item.ID, domain.ItemStatusAvailable); revertErr != nil {
			logger.Error("failed to revert item status after rental insert failure",
				"item_id", item.ID, "shop_id", shopID, "error", revertErr)
		}
		return nil, err
	}

	s.notifyShop(ctx, shopID, "Rental started",
		fmt.Sprintf("%s rented %s", params.ClientName, item.Label),
		map[string]string{"type": "RENTAL_STARTED", "rental_id": fmt.Sprintf("%d", rental.ID)})

	return rental, nil
}

func resolveDuration(itype *domain.ItemType, params CreateRentalParams) (int64, error) {
	if itype.PricingModel == domain.PricingPerDay {
		if params.Days < 1 || params.Days > maxDurationDays {
			return 0, domain.ErrInvalidDuration
		}
		return int64(params.Days) * minutesPerDay, nil
	}
	if params.DurationMinutes < 1 || params.DurationMinutes > maxDurationMinutes {
		return 0, domain.ErrInvalidDuration
	}
	if itype.PricingModel == domain.PricingBlock && itype.BlockDurationMinutes < 1 {
		return 0, domain.ErrInvalidPricing
	}
	return params.DurationMinutes, nil
}

func (s *rentalService) ExtendRental(ctx context.Context, accessCode string, minutes int32) (*domain.Rental, error) {
	if minutes < minExtensionMinutes || minutes > maxExtensionMinutes {
		return nil, domain.ErrInvalidMinutes
	}

	now := s.now()
	rental, err := s.rentalRepo.ExtendActiveByAccessCode(ctx, accessCode, minutes, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Covers both "never existed" and "already finalized": a
			// finalized rental no longer matches the conditional update.
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}

	s.notifyShop(ctx, rental.ShopID, "Rental extended",
		fmt.Sprintf("Rental %d extended by %d minutes", rental.ID, minutes),
		map[string]string{"type": "RENTAL_EXTENDED", "rental_id": fmt.Sprintf("%d", rental.ID)})

	return rental, nil
}

func (s *rentalService) FinalizeRental(ctx context.Context, shopID, rentalID int64) (*FinalizeResult, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	if rt.ShopID != shopID {
		// Tenant isolation: do not reveal rentals of other shops.
		return nil, domain.ErrRentalNotFound
	}
	if rt.Status == domain.RentalStatusFinalized {
		return storedResult(rt), domain.ErrRentalAlreadyFinalized
	}

	// One clock read drives both the stored actual_end_time and the amount
	// computed from it.
	now := s.now()
	quote := pricing.ComputeCost(rt.PricingModel, rt.StartTime, rt.EndTime, now, ratesFromRental(rt))

	won, err := s.rentalRepo.FinalizeIfActive(ctx, rt.ID, now, quote.TotalCents, quote.OverageMinutes)
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost the race. Re-read and hand back the winner's totals.
		fresh, err := s.rentalRepo.GetByID(ctx, rt.ID)
		if err != nil {
			return nil, err
		}
		return storedResult(fresh), domain.ErrRentalAlreadyFinalized
	}

	// The rental is finalized and billed; the item update is a second step.
	// A failure here is an operator problem, never the caller's: rolling
	// back a billed finalize would risk double-charging on retry.
	if err := s.itemRepo.UpdateStatus(ctx, rt.ItemID, domain.ItemStatusAvailable); err != nil {
		logger.Error("item status desync: rental finalized but item still marked rented",
			"rental_id", rt.ID, "item_id", rt.ItemID, "shop_id", shopID, "error", err)
	}

	rt.Status = domain.RentalStatusFinalized
	rt.ActualEndTime = &now
	rt.TotalCostCents = &quote.TotalCents
	rt.TotalOverageMinutes = quote.OverageMinutes

	s.notifyShop(ctx, shopID, "Rental finalized",
		fmt.Sprintf("Rental %d closed, total %d cents", rt.ID, quote.TotalCents),
		map[string]string{"type": "RENTAL_FINALIZED", "rental_id": fmt.Sprintf("%d", rt.ID)})
	s.sendReceipt(ctx, rt, quote)

	return &FinalizeResult{
		Rental:         rt,
		TotalCents:     quote.TotalCents,
		OverageMinutes: quote.OverageMinutes,
		ActualEndTime:  now,
	}, nil
}

// storedResult rebuilds the billing report from an already finalized row.
func storedResult(rt *domain.Rental) *FinalizeResult {
	res := &FinalizeResult{Rental: rt, OverageMinutes: rt.TotalOverageMinutes}
	if rt.TotalCostCents != nil {
		res.TotalCents = *rt.TotalCostCents
	}
	if rt.ActualEndTime != nil {
		res.ActualEndTime = *rt.ActualEndTime
	}
	return res
}

func (s *rentalService) GetRental(ctx context.Context, shopID, rentalID int64) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	if rt.ShopID != shopID {
		return nil, domain.ErrRentalNotFound
	}
	return rt, nil
}

func (s *rentalService) ListRentals(ctx context.Context, shopID int64, status string, page, pageSize int32) ([]domain.Rental, int64, error) {
	return s.rentalRepo.ListByShop(ctx, shopID, status, page, pageSize)
}

func (s *rentalService) TrackRental(ctx context.Context, accessCode string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByAccessCode(ctx, accessCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

// notifyShop writes the "rental changed" record for the shop owner.
// Best-effort: a notification failure never fails the transition it reports.
func (s *rentalService) notifyShop(ctx context.Context, shopID int64, title, message string, attrs map[string]string) {
	owner, err := s.userRepo.GetShopOwner(ctx, shopID)
	if err != nil {
		logger.Warn("no owner found for shop notification", "shop_id", shopID, "error", err)
		return
	}
	note := &domain.Notification{
		UserID:     owner.ID,
		ShopID:     shopID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("failed to create notification", "shop_id", shopID, "error", err)
	}
}

func (s *rentalService) sendReceipt(ctx context.Context, rt *domain.Rental, quote pricing.Quote) {
	owner, err := s.userRepo.GetShopOwner(ctx, rt.ShopID)
	if err != nil {
		logger.Warn("no owner found for receipt email", "shop_id", rt.ShopID, "error", err)
		return
	}
	item, err := s.itemRepo.GetByID(ctx, rt.ItemID, rt.ShopID)
	label := ""
	if err == nil {
		label = item.Label
	}
	if err := s.emailSvc.SendFinalizationReceipt(ctx, owner.Email, owner.Name, label, rt.ClientName, quote.TotalCents, quote.OverageMinutes); err != nil {
		logger.Warn("failed to send finalization receipt", "rental_id", rt.ID, "error", err)
	}
}
