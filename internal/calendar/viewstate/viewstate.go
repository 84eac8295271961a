package viewstate

import (
	"context"
	"sync"

	calendardomain "github.com/smallbiznis/bizconf/internal/calendar/domain"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Placeholder is shown for any lookup that has not resolved yet.
const Placeholder = "Loading..."

// Overview is the read-only company view: the aggregate, its reference
// display strings, and the three calendar collections.
type Overview struct {
	Company *companydomain.Company `json:"company"`

	CountryName  string `json:"countryName"`
	CurrencyCode string `json:"currencyCode"`
	TimeZoneName string `json:"timeZoneName"`
	DateFormat   string `json:"dateFormat"`

	BusinessDays     []calendardomain.BusinessDay     `json:"businessDays"`
	BusinessHours    []calendardomain.BusinessHours   `json:"businessHours"`
	BusinessHolidays []calendardomain.BusinessHoliday `json:"businessHolidays"`
}

// Store holds one overview under a lock so partial population is safe
// to read while lookups are still resolving.
type Store struct {
	mu   sync.Mutex
	data Overview
}

func newStore(company *companydomain.Company) *Store {
	return &Store{data: Overview{
		Company:      company,
		CountryName:  Placeholder,
		CurrencyCode: Placeholder,
		TimeZoneName: Placeholder,
		DateFormat:   Placeholder,
	}}
}

func (s *Store) Snapshot() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *Store) set(apply func(*Overview)) {
	s.mu.Lock()
	apply(&s.data)
	s.mu.Unlock()
}

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Calendar calendardomain.Service
	Company  companydomain.Service
	RefRepo  referencedomain.Repository
}

// Loader assembles overviews. Every lookup resolves independently; a
// failed lookup logs and leaves its placeholder in place rather than
// failing the whole view.
type Loader struct {
	db       *gorm.DB
	log      *zap.Logger
	calendar calendardomain.Service
	company  companydomain.Service
	refRepo  referencedomain.Repository
}

func NewLoader(p Params) *Loader {
	return &Loader{
		db:       p.DB,
		log:      p.Log.Named("calendar.viewstate"),
		calendar: p.Calendar,
		company:  p.Company,
		refRepo:  p.RefRepo,
	}
}

// Load fetches the company first, then fans out the remaining lookups
// and merges each result as it lands.
func (l *Loader) Load(ctx context.Context, companyID string) (*Store, error) {
	company, err := l.company.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	store := newStore(company)

	var wg sync.WaitGroup
	resolve := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				l.log.Warn("overview lookup failed",
					zap.String("company_id", companyID),
					zap.String("lookup", name),
					zap.Error(err),
				)
			}
		}()
	}

	resolve("country", func() error {
		country, err := l.refRepo.FindCountryByID(ctx, l.db, company.CountryID)
		if err != nil || country == nil {
			return err
		}
		store.set(func(o *Overview) { o.CountryName = country.CountryName })
		return nil
	})
	resolve("currency", func() error {
		currency, err := l.refRepo.FindCurrencyByID(ctx, l.db, company.CurrencyID)
		if err != nil || currency == nil {
			return err
		}
		store.set(func(o *Overview) { o.CurrencyCode = currency.CurrencyCode })
		return nil
	})
	resolve("timezone", func() error {
		timezone, err := l.refRepo.FindTimeZoneByID(ctx, l.db, company.TimeZoneID)
		if err != nil || timezone == nil {
			return err
		}
		store.set(func(o *Overview) { o.TimeZoneName = timezone.TimeZoneName })
		return nil
	})
	resolve("date_format", func() error {
		if company.DateFormatID == nil {
			return nil
		}
		format, err := l.refRepo.FindDateFormatByID(ctx, l.db, *company.DateFormatID)
		if err != nil || format == nil {
			return err
		}
		store.set(func(o *Overview) { o.DateFormat = format.FormatString })
		return nil
	})
	resolve("business_days", func() error {
		days, err := l.calendar.LoadBusinessDays(ctx, companyID)
		if err != nil {
			return err
		}
		store.set(func(o *Overview) { o.BusinessDays = days })
		return nil
	})
	resolve("business_hours", func() error {
		hours, err := l.calendar.LoadBusinessHours(ctx, companyID)
		if err != nil {
			return err
		}
		store.set(func(o *Overview) { o.BusinessHours = hours })
		return nil
	})
	resolve("business_holidays", func() error {
		holidays, err := l.calendar.ListHolidays(ctx, companyID)
		if err != nil {
			return err
		}
		store.set(func(o *Overview) { o.BusinessHolidays = holidays })
		return nil
	})

	wg.Wait()
	return store, nil
}

var Module = fx.Module("calendar.viewstate",
	fx.Provide(NewLoader),
)
