package domain

import "time"

// Shop is the tenant boundary. Items and rentals belong to exactly one shop
// and every owner-facing operation is scoped by shop id.
type Shop struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
}
