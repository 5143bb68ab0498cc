package models

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Capability is a named permission derived from a user's role.
type Capability string

const (
	CapViewOwnOrders     Capability = "view_own_orders"
	CapViewAllOrders     Capability = "view_all_orders"
	CapUpdateOrderStatus Capability = "update_order_status"
	CapManageProducts    Capability = "manage_products"
	CapManageUsers       Capability = "manage_users"
	CapViewDashboard     Capability = "view_dashboard"
	CapViewAdminLogs     Capability = "view_admin_logs"
)

// roleCapabilities is the capability table checked at the authorization
// boundary. Capabilities are role-derived, not per-object ACLs.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleUser: {
		CapViewOwnOrders: true,
	},
	RoleAdmin: {
		CapViewOwnOrders:     true,
		CapViewAllOrders:     true,
		CapUpdateOrderStatus: true,
		CapManageProducts:    true,
		CapManageUsers:       true,
		CapViewDashboard:     true,
		CapViewAdminLogs:     true,
	},
}

// Can reports whether the role holds the given capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// User represents a registered customer or administrator.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	FirstName    string    `json:"first_name" gorm:"type:varchar(50)" validate:"required,max=50"`
	LastName     string    `json:"last_name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Role         Role      `json:"role" gorm:"type:varchar(20);default:user"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanViewOrder applies the owner-or-admin rule for single-order reads.
func (u *User) CanViewOrder(o *Order) bool {
	return o.UserID == u.ID || u.Role.Can(CapViewAllOrders)
}
