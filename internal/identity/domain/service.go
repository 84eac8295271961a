package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidID            = errors.New("invalid_id")
	ErrInvalidUsername      = errors.New("invalid_username")
	ErrInvalidEmail         = errors.New("invalid_email")
	ErrInvalidName          = errors.New("invalid_name")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrInvalidRoleName      = errors.New("invalid_role_name")
	ErrInvalidPermissionKey = errors.New("invalid_permission_key")
	ErrInvalidModule        = errors.New("invalid_module")
	ErrUsernameExists       = errors.New("username_exists")
	ErrEmailExists          = errors.New("email_exists")
	ErrRoleNameExists       = errors.New("role_name_exists")
	ErrPermissionKeyExists  = errors.New("permission_key_exists")
	ErrNotFound             = errors.New("not_found")
)

type SaveUserRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	MiddleName  string   `json:"middleName"`
	LastName    string   `json:"lastName"`
	PhoneNumber string   `json:"phoneNumber"`
	Status      string   `json:"status"`
	Roles       []string `json:"roles"`
}

type SaveRoleRequest struct {
	RoleName    string   `json:"roleName"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}

type SavePermissionRequest struct {
	PermissionKey  string `json:"permissionKey"`
	PermissionName string `json:"permissionName"`
	ModuleID       string `json:"moduleId"`
}

type Service interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, req SaveUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id string, req SaveUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id string) error

	ListRoles(ctx context.Context) ([]Role, error)
	GetRole(ctx context.Context, id string) (*Role, error)
	CreateRole(ctx context.Context, req SaveRoleRequest) (*Role, error)
	UpdateRole(ctx context.Context, id string, req SaveRoleRequest) (*Role, error)
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	CreatePermission(ctx context.Context, req SavePermissionRequest) (*Permission, error)
	UpdatePermission(ctx context.Context, id string, req SavePermissionRequest) (*Permission, error)
	DeletePermission(ctx context.Context, id string) error
}
