package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, shop_id, type_id, label, COALESCE(notes, ''), status, created_on, deleted_on`

func scanItem(row rowScanner) (*domain.Item, error) {
	it := &domain.Item{}
	err := row.Scan(&it.ID, &it.ShopID, &it.TypeID, &it.Label, &it.Notes, &it.Status, &it.CreatedOn, &it.DeletedOn)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (shop_id, type_id, label, notes, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.ShopID, it.TypeID, it.Label, it.Notes, it.Status, time.Now()).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id, shopID int64) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND shop_id = $2 AND deleted_on IS NULL`
	return scanItem(r.db.QueryRowContext(ctx, query, id, shopID))
}

func (r *itemRepository) ListByShop(ctx context.Context, shopID int64, page, pageSize int32) ([]domain.Item, int64, error) {
	var count int64
	countQuery := `SELECT count(*) FROM items WHERE shop_id = $1 AND deleted_on IS NULL`
	if err := r.db.QueryRowContext(ctx, countQuery, shopID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + itemColumns + ` FROM items WHERE shop_id = $1 AND deleted_on IS NULL ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, shopID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *it)
	}
	return items, count, rows.Err()
}

func (r *itemRepository) UpdateStatus(ctx context.Context, id int64, status domain.ItemStatus) error {
	query := `UPDATE items SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// MarkRentedIfAvailable is the conditional update that pairs with rental
// creation: only an AVAILABLE item can move to RENTED, and the caller learns
// from the row count whether it won.
func (r *itemRepository) MarkRentedIfAvailable(ctx context.Context, id, shopID int64) (bool, error) {
	query := `UPDATE items SET status = 'RENTED' WHERE id = $1 AND shop_id = $2 AND status = 'AVAILABLE' AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, id, shopID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *itemRepository) ListStrandedRented(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i
	          WHERE i.status = 'RENTED'
	            AND NOT EXISTS (SELECT 1 FROM rentals r WHERE r.item_id = i.id AND r.status = 'ACTIVE')`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}
