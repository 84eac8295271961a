package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/bizconf/internal/identity/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var users []domain.User
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("username asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repo) FindUserByID(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&user).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &user, nil
}

func (r *repo) FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).
		Where("username = ? AND is_deleted = ?", username, false).
		First(&user).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &user, nil
}

func (r *repo) FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&user).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &user, nil
}

func (r *repo) SaveUser(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Save(user).Error
}

func (r *repo) SoftDeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *repo) ReplaceUserRoles(ctx context.Context, db *gorm.DB, userID string, roles []domain.UserRole) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.UserRole{}).Error; err != nil {
			return err
		}
		if len(roles) == 0 {
			return nil
		}
		return tx.Create(&roles).Error
	})
}

func (r *repo) ListUserRoles(ctx context.Context, db *gorm.DB, userID string) ([]domain.UserRole, error) {
	var roles []domain.UserRole
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *repo) ListRoles(ctx context.Context, db *gorm.DB) ([]domain.Role, error) {
	var roles []domain.Role
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("role_name asc").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *repo) FindRoleByID(ctx context.Context, db *gorm.DB, id string) (*domain.Role, error) {
	var role domain.Role
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&role).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &role, nil
}

func (r *repo) FindRoleByName(ctx context.Context, db *gorm.DB, name string) (*domain.Role, error) {
	var role domain.Role
	err := db.WithContext(ctx).
		Where("role_name = ? AND is_deleted = ?", name, false).
		First(&role).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &role, nil
}

func (r *repo) SaveRole(ctx context.Context, db *gorm.DB, role *domain.Role) error {
	return db.WithContext(ctx).Save(role).Error
}

func (r *repo) SoftDeleteRole(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.Role{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *repo) ReplaceRolePermissions(ctx context.Context, db *gorm.DB, roleID string, perms []domain.RolePermission) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&domain.RolePermission{}).Error; err != nil {
			return err
		}
		if len(perms) == 0 {
			return nil
		}
		return tx.Create(&perms).Error
	})
}

func (r *repo) ListRolePermissions(ctx context.Context, db *gorm.DB, roleID string) ([]domain.RolePermission, error) {
	var perms []domain.RolePermission
	err := db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *repo) ListPermissions(ctx context.Context, db *gorm.DB) ([]domain.Permission, error) {
	var perms []domain.Permission
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("permission_key asc").
		Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *repo) FindPermissionByID(ctx context.Context, db *gorm.DB, id string) (*domain.Permission, error) {
	var perm domain.Permission
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&perm).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &perm, nil
}

func (r *repo) FindPermissionByKey(ctx context.Context, db *gorm.DB, key string) (*domain.Permission, error) {
	var perm domain.Permission
	err := db.WithContext(ctx).
		Where("permission_key = ? AND is_deleted = ?", key, false).
		First(&perm).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &perm, nil
}

func (r *repo) SavePermission(ctx context.Context, db *gorm.DB, perm *domain.Permission) error {
	return db.WithContext(ctx).Save(perm).Error
}

func (r *repo) SoftDeletePermission(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.Permission{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
