package domain

import "time"

const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSuspended = "Suspended"
)

func IsValidUserStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

type User struct {
	ID          string     `gorm:"primaryKey;column:id" json:"userId"`
	Username    string     `gorm:"not null;uniqueIndex" json:"username"`
	Email       string     `gorm:"not null;uniqueIndex" json:"email"`
	FirstName   string     `gorm:"not null" json:"firstName"`
	MiddleName  string     `json:"middleName,omitempty"`
	LastName    string     `json:"lastName,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Status      string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy   string     `gorm:"not null" json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`

	// Role IDs resolved from user_roles, never stored on this row.
	Roles []string `gorm:"-" json:"roles,omitempty"`
}

func (User) TableName() string { return "users" }

type UserRole struct {
	ID        string    `gorm:"primaryKey;column:id" json:"userRoleId"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	RoleID    string    `gorm:"not null;index" json:"roleId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	CreatedBy string    `gorm:"not null" json:"createdBy"`
}

func (UserRole) TableName() string { return "user_roles" }

type Role struct {
	ID          string     `gorm:"primaryKey;column:id" json:"roleId"`
	RoleName    string     `gorm:"not null;uniqueIndex" json:"roleName"`
	Description string     `json:"description,omitempty"`
	Status      string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy   string     `gorm:"not null" json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`

	Permissions []string `gorm:"-" json:"permissions,omitempty"`
}

func (Role) TableName() string { return "roles" }

type RolePermission struct {
	ID           string    `gorm:"primaryKey;column:id" json:"rolePermissionId"`
	RoleID       string    `gorm:"not null;index" json:"roleId"`
	PermissionID string    `gorm:"not null;index" json:"permissionId"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	CreatedBy    string    `gorm:"not null" json:"createdBy"`
}

func (RolePermission) TableName() string { return "role_permissions" }

type Permission struct {
	ID             string     `gorm:"primaryKey;column:id" json:"permissionId"`
	PermissionKey  string     `gorm:"not null;uniqueIndex" json:"permissionKey"`
	PermissionName string     `gorm:"not null" json:"permissionName"`
	ModuleID       string     `gorm:"not null;index" json:"moduleId"`
	IsDeleted      bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt      time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy      string     `gorm:"not null" json:"createdBy"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy      string     `json:"updatedBy,omitempty"`
}

func (Permission) TableName() string { return "permissions" }
