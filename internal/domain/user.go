package domain

import "time"

// User is a shop owner account. End clients never have accounts; they hold
// a rental access code instead.
type User struct {
	ID           int64     `json:"id"`
	ShopID       int64     `json:"shop_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
