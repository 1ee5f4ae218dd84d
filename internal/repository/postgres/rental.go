package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, shop_id, item_id, access_code, client_name, client_phone, status,
	start_time, end_time, actual_end_time, pricing_model,
	price_per_minute_cents, price_per_day_cents, price_fixed_cents, price_block_cents, block_duration_minutes,
	extension_count, last_extension_at, total_overage_minutes, initial_cost_cents, total_cost_cents,
	created_on, updated_on`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(
		&rt.ID, &rt.ShopID, &rt.ItemID, &rt.AccessCode, &rt.ClientName, &rt.ClientPhone, &rt.Status,
		&rt.StartTime, &rt.EndTime, &rt.ActualEndTime, &rt.PricingModel,
		&rt.PricePerMinuteCents, &rt.PricePerDayCents, &rt.PriceFixedCents, &rt.PriceBlockCents, &rt.BlockDurationMinutes,
		&rt.ExtensionCount, &rt.LastExtensionAt, &rt.TotalOverageMinutes, &rt.InitialCostCents, &rt.TotalCostCents,
		&rt.CreatedOn, &rt.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (shop_id, item_id, access_code, client_name, client_phone, status,
	              start_time, end_time, pricing_model,
	              price_per_minute_cents, price_per_day_cents, price_fixed_cents, price_block_cents, block_duration_minutes,
	              initial_cost_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.ShopID, rt.ItemID, rt.AccessCode, rt.ClientName, rt.ClientPhone, rt.Status,
		rt.StartTime, rt.EndTime, rt.PricingModel,
		rt.PricePerMinuteCents, rt.PricePerDayCents, rt.PriceFixedCents, rt.PriceBlockCents, rt.BlockDurationMinutes,
		rt.InitialCostCents, time.Now(),
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) GetByAccessCode(ctx context.Context, accessCode string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE access_code = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, accessCode))
}

// ExtendActiveByAccessCode performs the extension as one compare-and-swap:
// the status check lives in the WHERE clause, so a rental finalized between
// the client's read and this write simply matches no row.
func (r *rentalRepository) ExtendActiveByAccessCode(ctx context.Context, accessCode string, minutes int32, now time.Time) (*domain.Rental, error) {
	query := `UPDATE rentals
	          SET end_time = end_time + make_interval(mins => $1),
	              extension_count = extension_count + 1,
	              last_extension_at = $2,
	              updated_on = $2
	          WHERE access_code = $3 AND status = 'ACTIVE'
	          RETURNING ` + rentalColumns
	return scanRental(r.db.QueryRowContext(ctx, query, minutes, now, accessCode))
}

// FinalizeIfActive writes the terminal state with the expected prior status
// as precondition. Exactly one concurrent caller sees rows_affected = 1;
// everyone else gets (false, nil) and must treat the stored totals as
// authoritative.
func (r *rentalRepository) FinalizeIfActive(ctx context.Context, id int64, actualEnd time.Time, totalCents, overageMinutes int64) (bool, error) {
	query := `UPDATE rentals
	          SET status = 'FINALIZED',
	              actual_end_time = $1,
	              total_cost_cents = $2,
	              total_overage_minutes = $3,
	              updated_on = $4
	          WHERE id = $5 AND status = 'ACTIVE'`
	res, err := r.db.ExecContext(ctx, query, actualEnd, totalCents, overageMinutes, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *rentalRepository) ListByShop(ctx context.Context, shopID int64, status string, page, pageSize int32) ([]domain.Rental, int64, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE shop_id = $1`

	args := []interface{}{shopID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int64
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}

func (r *rentalRepository) ListOverdueActive(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'ACTIVE' AND end_time < $1 ORDER BY end_time`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
