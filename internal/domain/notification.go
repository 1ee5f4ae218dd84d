package domain

import "time"

// Notification is the read-only "rental changed" feed for a shop owner.
// One record is written after every successful rental transition.
type Notification struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	ShopID     int64             `json:"shop_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedOn  time.Time         `json:"created_on"`
}
