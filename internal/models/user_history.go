package models

import "time"

// UserHistory is one entry of a user's activity trail: logins, purchases
// and similar actions. ProductID and OrderID are set when the action
// concerns one.
type UserHistory struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"user_id" gorm:"index;type:varchar(36)"`
	ActionType  string    `json:"action_type" gorm:"type:varchar(50)"`
	Description string    `json:"action_description" gorm:"type:varchar(255)"`
	ProductID   *string   `json:"product_id" gorm:"type:varchar(36)"`
	OrderID     *string   `json:"order_id" gorm:"type:varchar(36)"`
	IPAddress   string    `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent   string    `json:"user_agent" gorm:"type:varchar(500)"`
	CreatedAt   time.Time `json:"created_at"`
}
