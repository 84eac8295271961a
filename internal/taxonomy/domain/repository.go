package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListModules(ctx context.Context, db *gorm.DB) ([]Module, error)
	FindModuleByID(ctx context.Context, db *gorm.DB, id string) (*Module, error)
	FindModuleByKey(ctx context.Context, db *gorm.DB, key string) (*Module, error)
	SaveModule(ctx context.Context, db *gorm.DB, module *Module) error
	SoftDeleteModuleTree(ctx context.Context, db *gorm.DB, id string) error

	ListSubModules(ctx context.Context, db *gorm.DB, moduleID string) ([]SubModule, error)
	FindSubModuleByID(ctx context.Context, db *gorm.DB, id string) (*SubModule, error)
	FindSubModuleByKey(ctx context.Context, db *gorm.DB, key string) (*SubModule, error)
	SaveSubModule(ctx context.Context, db *gorm.DB, sub *SubModule) error
	SoftDeleteSubModule(ctx context.Context, db *gorm.DB, id string) error
}
