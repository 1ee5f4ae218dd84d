package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type itemTypeRepository struct {
	db *sql.DB
}

func NewItemTypeRepository(db *sql.DB) repository.ItemTypeRepository {
	return &itemTypeRepository{db: db}
}

const itemTypeColumns = `id, shop_id, name, pricing_model,
	price_per_minute_cents, price_per_day_cents, price_fixed_cents, price_block_cents, block_duration_minutes, created_on`

func scanItemType(row rowScanner) (*domain.ItemType, error) {
	t := &domain.ItemType{}
	err := row.Scan(&t.ID, &t.ShopID, &t.Name, &t.PricingModel,
		&t.PricePerMinuteCents, &t.PricePerDayCents, &t.PriceFixedCents, &t.PriceBlockCents, &t.BlockDurationMinutes, &t.CreatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *itemTypeRepository) Create(ctx context.Context, t *domain.ItemType) error {
	query := `INSERT INTO item_types (shop_id, name, pricing_model,
	              price_per_minute_cents, price_per_day_cents, price_fixed_cents, price_block_cents, block_duration_minutes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.ShopID, t.Name, t.PricingModel,
		t.PricePerMinuteCents, t.PricePerDayCents, t.PriceFixedCents, t.PriceBlockCents, t.BlockDurationMinutes, time.Now()).Scan(&t.ID)
}

func (r *itemTypeRepository) GetByID(ctx context.Context, id, shopID int64) (*domain.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types WHERE id = $1 AND shop_id = $2`
	return scanItemType(r.db.QueryRowContext(ctx, query, id, shopID))
}

func (r *itemTypeRepository) Update(ctx context.Context, t *domain.ItemType) error {
	query := `UPDATE item_types SET name=$1, pricing_model=$2,
	              price_per_minute_cents=$3, price_per_day_cents=$4, price_fixed_cents=$5, price_block_cents=$6, block_duration_minutes=$7
	          WHERE id=$8 AND shop_id=$9`
	_, err := r.db.ExecContext(ctx, query, t.Name, t.PricingModel,
		t.PricePerMinuteCents, t.PricePerDayCents, t.PriceFixedCents, t.PriceBlockCents, t.BlockDurationMinutes, t.ID, t.ShopID)
	return err
}

func (r *itemTypeRepository) ListByShop(ctx context.Context, shopID int64) ([]domain.ItemType, error) {
	query := `SELECT ` + itemTypeColumns + ` FROM item_types WHERE shop_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ItemType
	for rows.Next() {
		t, err := scanItemType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *t)
	}
	return types, rows.Err()
}
