package postgres

import (
	"database/sql"

	"alugo-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ShopRepository
	repository.UserRepository
	repository.ItemTypeRepository
	repository.ItemRepository
	repository.RentalRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ShopRepository:         NewShopRepository(db),
		UserRepository:         NewUserRepository(db),
		ItemTypeRepository:     NewItemTypeRepository(db),
		ItemRepository:         NewItemRepository(db),
		RentalRepository:       NewRentalRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
