package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListModules(ctx context.Context, db *gorm.DB) ([]domain.Module, error) {
	var modules []domain.Module
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("module_key asc").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *repo) FindModuleByID(ctx context.Context, db *gorm.DB, id string) (*domain.Module, error) {
	var module domain.Module
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&module).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &module, nil
}

func (r *repo) FindModuleByKey(ctx context.Context, db *gorm.DB, key string) (*domain.Module, error) {
	var module domain.Module
	err := db.WithContext(ctx).
		Where("module_key = ? AND is_deleted = ?", key, false).
		First(&module).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &module, nil
}

func (r *repo) SaveModule(ctx context.Context, db *gorm.DB, module *domain.Module) error {
	return db.WithContext(ctx).Save(module).Error
}

// SoftDeleteModuleTree tombstones the module and its submodules in one
// transaction so the tree never ends up half deleted.
func (r *repo) SoftDeleteModuleTree(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Module{}).
			Where("id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&domain.SubModule{}).
			Where("module_id = ?", id).
			Update("is_deleted", true).Error
	})
}

func (r *repo) ListSubModules(ctx context.Context, db *gorm.DB, moduleID string) ([]domain.SubModule, error) {
	q := db.WithContext(ctx).Where("is_deleted = ?", false)
	if moduleID != "" {
		q = q.Where("module_id = ?", moduleID)
	}

	var subs []domain.SubModule
	if err := q.Order("sub_module_key asc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *repo) FindSubModuleByID(ctx context.Context, db *gorm.DB, id string) (*domain.SubModule, error) {
	var sub domain.SubModule
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&sub).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &sub, nil
}

func (r *repo) FindSubModuleByKey(ctx context.Context, db *gorm.DB, key string) (*domain.SubModule, error) {
	var sub domain.SubModule
	err := db.WithContext(ctx).
		Where("sub_module_key = ? AND is_deleted = ?", key, false).
		First(&sub).Error
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return &sub, nil
}

func (r *repo) SaveSubModule(ctx context.Context, db *gorm.DB, sub *domain.SubModule) error {
	return db.WithContext(ctx).Save(sub).Error
}

func (r *repo) SoftDeleteSubModule(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.SubModule{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
