package models

import "time"

// AdminLog is an append-only audit trail of administrative mutations:
// who did what, when, and from where.
type AdminLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AdminID   string    `json:"admin_id" gorm:"index;type:varchar(36)"`
	Action    string    `json:"action" gorm:"type:varchar(100)"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(45)"`
	CreatedAt time.Time `json:"created_at"`
}
