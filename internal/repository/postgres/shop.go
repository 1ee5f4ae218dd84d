package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type shopRepository struct {
	db *sql.DB
}

func NewShopRepository(db *sql.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, s *domain.Shop) error {
	query := `INSERT INTO shops (name, phone, created_on) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.Name, s.Phone, time.Now()).Scan(&s.ID)
}

func (r *shopRepository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	s := &domain.Shop{}
	query := `SELECT id, name, COALESCE(phone, ''), created_on FROM shops WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Phone, &s.CreatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}
