package jobs

import (
	"context"
	"errors"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/logger"
)

// AutoFinalizeOverdueRentals closes rentals that sat past their scheduled end
// for longer than the configured grace period. It goes through the same
// finalize path as the manual action, so a concurrent owner click is safe:
// the conditional update lets exactly one writer through.
func (jr *JobRunner) AutoFinalizeOverdueRentals() {
	jr.runWithRecovery("AutoFinalizeOverdueRentals", func() {
		ctx := context.Background()
		grace := time.Duration(jr.config.Billing.OverdueGraceMinutes) * time.Minute
		cutoff := time.Now().Add(-grace)

		rentals, err := jr.store.RentalRepository.ListOverdueActive(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		finalized := 0
		for _, rt := range rentals {
			if _, err := jr.services.Rental.FinalizeRental(ctx, rt.ShopID, rt.ID); err != nil {
				if errors.Is(err, domain.ErrRentalAlreadyFinalized) {
					continue
				}
				logger.Error("Failed to auto-finalize rental", "rental_id", rt.ID, "error", err)
				continue
			}
			finalized++
			logger.Debug("Auto-finalized rental", "rental_id", rt.ID, "shop_id", rt.ShopID, "end_time", rt.EndTime)
		}
		logger.Info("Auto-finalized overdue rentals", "count", finalized)
	})
}

// SendOverdueNotices emails shop owners about rentals past their scheduled
// end that are still inside the auto-finalize grace window.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()
		now := time.Now()

		rentals, err := jr.store.RentalRepository.ListOverdueActive(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rt := range rentals {
			owner, err := jr.store.UserRepository.GetShopOwner(ctx, rt.ShopID)
			if err != nil {
				logger.Warn("No owner for overdue notice", "shop_id", rt.ShopID, "error", err)
				continue
			}

			label := ""
			if item, err := jr.store.ItemRepository.GetByID(ctx, rt.ItemID, rt.ShopID); err == nil {
				label = item.Label
			}

			overdueMinutes := int64(now.Sub(rt.EndTime) / time.Minute)
			if err := jr.services.Email.SendOverdueNotice(ctx, owner.Email, owner.Name, label, rt.ClientName, overdueMinutes); err != nil {
				logger.Warn("Failed to send overdue notice", "rental_id", rt.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent overdue notices", "count", sent)
	})
}

// RepairStrandedItems releases items stuck in RENTED with no active rental.
// This is the repair path for the finalize item-sync failure: the rental was
// billed correctly, only the item row was left behind.
func (jr *JobRunner) RepairStrandedItems() {
	jr.runWithRecovery("RepairStrandedItems", func() {
		ctx := context.Background()

		items, err := jr.store.ItemRepository.ListStrandedRented(ctx)
		if err != nil {
			logger.Error("Failed to list stranded items", "error", err)
			return
		}

		repaired := 0
		for _, it := range items {
			if err := jr.store.ItemRepository.UpdateStatus(ctx, it.ID, domain.ItemStatusAvailable); err != nil {
				logger.Error("Failed to repair stranded item", "item_id", it.ID, "error", err)
				continue
			}
			repaired++
			logger.Warn("Repaired stranded item", "item_id", it.ID, "shop_id", it.ShopID)
		}
		if repaired > 0 {
			logger.Info("Repaired stranded items", "count", repaired)
		}
	})
}
