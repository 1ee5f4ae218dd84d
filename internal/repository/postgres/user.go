package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, shop_id, name, email, COALESCE(phone, ''), password_hash, created_on`

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.ShopID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (shop_id, name, email, phone, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.ShopID, u.Name, u.Email, u.Phone, u.PasswordHash, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetShopOwner(ctx context.Context, shopID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE shop_id = $1 ORDER BY id LIMIT 1`
	return scanUser(r.db.QueryRowContext(ctx, query, shopID))
}
