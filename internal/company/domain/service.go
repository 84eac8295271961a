package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidCode        = errors.New("invalid_code")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidCountry     = errors.New("invalid_country")
	ErrInvalidCurrency    = errors.New("invalid_currency")
	ErrInvalidTimeZone    = errors.New("invalid_time_zone")
	ErrInvalidDateFormat  = errors.New("invalid_date_format")
	ErrInvalidFiscalMonth = errors.New("invalid_fiscal_month")
	ErrCodeExists         = errors.New("code_exists")
	ErrNotFound           = errors.New("not_found")
)

type SaveCompanyRequest struct {
	CompanyCode          string  `json:"companyCode"`
	CompanyName          string  `json:"companyName"`
	CountryID            string  `json:"countryId"`
	CurrencyID           string  `json:"currencyId"`
	TimeZoneID           string  `json:"timeZoneId"`
	DateFormatID         *string `json:"dateFormatId"`
	Website              string  `json:"website"`
	Address              string  `json:"address"`
	LogoURL              string  `json:"logoUrl"`
	FiscalYearStartMonth int     `json:"fiscalYearStartMonth"`
	Status               string  `json:"status"`
}

type ListCompanyRequest struct {
	PageToken string
	PageSize  int
	Status    string
	Name      string
}

type ListCompanyResponse struct {
	Companies     []Company `json:"companies"`
	NextPageToken string    `json:"next_page_token"`
	HasMore       bool      `json:"has_more"`
}

type Service interface {
	Create(ctx context.Context, req SaveCompanyRequest) (*Company, error)
	Update(ctx context.Context, id string, req SaveCompanyRequest) (*Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, req ListCompanyRequest) (ListCompanyResponse, error)
	Delete(ctx context.Context, id string) error
}
