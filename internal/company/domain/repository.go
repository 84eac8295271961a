package domain

import (
	"context"

	"github.com/smallbiznis/bizconf/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListCompanyFilter struct {
	Status string
	Name   string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	Update(ctx context.Context, db *gorm.DB, company *Company) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Company, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Company, error)
	List(ctx context.Context, db *gorm.DB, filter ListCompanyFilter, page pagination.Pagination) ([]*Company, error)
	SoftDelete(ctx context.Context, db *gorm.DB, id string) error
}
