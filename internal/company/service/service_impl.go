package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/company/domain"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	"github.com/smallbiznis/bizconf/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	RefRepo referencedomain.Repository
	Clock   clock.Clock
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	refRepo referencedomain.Repository
	clock   clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("company.service"),
		repo:    p.Repo,
		refRepo: p.RefRepo,
		clock:   p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.SaveCompanyRequest) (*domain.Company, error) {
	company, err := s.buildCompany(ctx, req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByCode(ctx, s.db, company.CompanyCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCodeExists
	}

	company.ID = uuid.NewString()
	company.CreatedAt = s.clock.Now()
	company.CreatedBy = "system"

	if err := s.repo.Insert(ctx, s.db, company); err != nil {
		return nil, err
	}

	s.log.Info("company created",
		zap.String("company_id", company.ID),
		zap.String("company_code", company.CompanyCode),
	)
	return company, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.SaveCompanyRequest) (*domain.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	company, err := s.buildCompany(ctx, req)
	if err != nil {
		return nil, err
	}

	if company.CompanyCode != existing.CompanyCode {
		conflict, err := s.repo.FindByCode(ctx, s.db, company.CompanyCode)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, domain.ErrCodeExists
		}
	}

	company.ID = existing.ID
	company.CreatedAt = existing.CreatedAt
	company.CreatedBy = existing.CreatedBy
	updated := s.clock.Now()
	company.UpdatedAt = &updated
	company.UpdatedBy = "system"

	if err := s.repo.Update(ctx, s.db, company); err != nil {
		return nil, err
	}

	s.log.Info("company updated", zap.String("company_id", company.ID))
	return company, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	company, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCompanyRequest) (domain.ListCompanyResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 50
	}

	rows, err := s.repo.List(ctx, s.db, domain.ListCompanyFilter{
		Status: req.Status,
		Name:   req.Name,
	}, page)
	if err != nil {
		return domain.ListCompanyResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(rows, page.PageSize, func(c *domain.Company) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: c.ID})
		return token
	})

	if len(rows) > page.PageSize {
		rows = rows[:page.PageSize]
	}

	companies := make([]domain.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, *row)
	}

	resp := domain.ListCompanyResponse{Companies: companies}
	if pageInfo.HasMore {
		resp.NextPageToken = pageInfo.NextPageToken
		resp.HasMore = true
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.SoftDelete(ctx, s.db, id); err != nil {
		return err
	}

	s.log.Info("company deleted", zap.String("company_id", id))
	return nil
}

// buildCompany validates the request fields and the reference lookups
// it points at, returning a company without identity or audit stamps.
func (s *Service) buildCompany(ctx context.Context, req domain.SaveCompanyRequest) (*domain.Company, error) {
	code := strings.TrimSpace(req.CompanyCode)
	if code == "" || len(code) > 20 {
		return nil, domain.ErrInvalidCode
	}

	name := strings.TrimSpace(req.CompanyName)
	if name == "" || len(name) > 150 {
		return nil, domain.ErrInvalidName
	}

	if req.FiscalYearStartMonth < 1 || req.FiscalYearStartMonth > 12 {
		return nil, domain.ErrInvalidFiscalMonth
	}

	country, err := s.refRepo.FindCountryByID(ctx, s.db, strings.TrimSpace(req.CountryID))
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrInvalidCountry
	}

	currency, err := s.refRepo.FindCurrencyByID(ctx, s.db, strings.TrimSpace(req.CurrencyID))
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, domain.ErrInvalidCurrency
	}

	timezone, err := s.refRepo.FindTimeZoneByID(ctx, s.db, strings.TrimSpace(req.TimeZoneID))
	if err != nil {
		return nil, err
	}
	if timezone == nil {
		return nil, domain.ErrInvalidTimeZone
	}

	var dateFormatID *string
	if req.DateFormatID != nil && strings.TrimSpace(*req.DateFormatID) != "" {
		id := strings.TrimSpace(*req.DateFormatID)
		format, err := s.refRepo.FindDateFormatByID(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		if format == nil {
			return nil, domain.ErrInvalidDateFormat
		}
		dateFormatID = &id
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = "Active"
	}

	return &domain.Company{
		CompanyCode:          code,
		CompanyName:          name,
		CountryID:            country.ID,
		CurrencyID:           currency.ID,
		TimeZoneID:           timezone.ID,
		DateFormatID:         dateFormatID,
		Website:              strings.TrimSpace(req.Website),
		Address:              strings.TrimSpace(req.Address),
		LogoURL:              strings.TrimSpace(req.LogoURL),
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		Status:               status,
	}, nil
}
