package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListUsers(ctx context.Context, db *gorm.DB) ([]User, error)
	FindUserByID(ctx context.Context, db *gorm.DB, id string) (*User, error)
	FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
	FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	SaveUser(ctx context.Context, db *gorm.DB, user *User) error
	SoftDeleteUser(ctx context.Context, db *gorm.DB, id string) error
	ReplaceUserRoles(ctx context.Context, db *gorm.DB, userID string, roles []UserRole) error
	ListUserRoles(ctx context.Context, db *gorm.DB, userID string) ([]UserRole, error)

	ListRoles(ctx context.Context, db *gorm.DB) ([]Role, error)
	FindRoleByID(ctx context.Context, db *gorm.DB, id string) (*Role, error)
	FindRoleByName(ctx context.Context, db *gorm.DB, name string) (*Role, error)
	SaveRole(ctx context.Context, db *gorm.DB, role *Role) error
	SoftDeleteRole(ctx context.Context, db *gorm.DB, id string) error
	ReplaceRolePermissions(ctx context.Context, db *gorm.DB, roleID string, perms []RolePermission) error
	ListRolePermissions(ctx context.Context, db *gorm.DB, roleID string) ([]RolePermission, error)

	ListPermissions(ctx context.Context, db *gorm.DB) ([]Permission, error)
	FindPermissionByID(ctx context.Context, db *gorm.DB, id string) (*Permission, error)
	FindPermissionByKey(ctx context.Context, db *gorm.DB, key string) (*Permission, error)
	SavePermission(ctx context.Context, db *gorm.DB, perm *Permission) error
	SoftDeletePermission(ctx context.Context, db *gorm.DB, id string) error
}
