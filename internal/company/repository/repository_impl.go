package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/bizconf/internal/company/domain"
	"github.com/smallbiznis/bizconf/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Create(company).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Save(company).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).
		Where("company_code = ? AND is_deleted = ?", code, false).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListCompanyFilter, page pagination.Pagination) ([]*domain.Company, error) {
	q := db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("is_deleted = ?", false)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Name != "" {
		q = q.Where("company_name LIKE ?", "%"+filter.Name+"%")
	}

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		q = q.Where("id > ?", cursor.ID)
	}

	limit := page.PageSize
	if limit <= 0 {
		limit = 50
	}

	var companies []*domain.Company
	// Fetch one extra row to detect a next page.
	err := q.Order("id asc").Limit(limit + 1).Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *repo) SoftDelete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
