package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/bizconf/internal/audit"
	auditdomain "github.com/smallbiznis/bizconf/internal/audit/domain"
	"github.com/smallbiznis/bizconf/internal/calendar"
	calendardomain "github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/editor"
	"github.com/smallbiznis/bizconf/internal/calendar/viewstate"
	"github.com/smallbiznis/bizconf/internal/company"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	"github.com/smallbiznis/bizconf/internal/config"
	"github.com/smallbiznis/bizconf/internal/identity"
	identitydomain "github.com/smallbiznis/bizconf/internal/identity/domain"
	"github.com/smallbiznis/bizconf/internal/observability"
	obsmiddleware "github.com/smallbiznis/bizconf/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/bizconf/internal/observability/metrics"
	"github.com/smallbiznis/bizconf/internal/reference"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	"github.com/smallbiznis/bizconf/internal/taxonomy"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	calendar.Module,
	company.Module,
	identity.Module,
	reference.Module,
	taxonomy.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(MockLatencyMiddleware(cfg.MockLatency))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	calendarSvc calendardomain.Service
	companySvc  companydomain.Service
	identitySvc identitydomain.Service
	taxonomySvc taxonomydomain.Service
	auditSvc    auditdomain.Service
	refRepo     referencedomain.Repository
	editors     *editor.Factory
	overview    *viewstate.Loader
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	CalendarSvc calendardomain.Service
	CompanySvc  companydomain.Service
	IdentitySvc identitydomain.Service
	TaxonomySvc taxonomydomain.Service
	AuditSvc    auditdomain.Service
	RefRepo     referencedomain.Repository
	Editors     *editor.Factory
	Overview    *viewstate.Loader
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		calendarSvc: p.CalendarSvc,
		companySvc:  p.CompanySvc,
		identitySvc: p.IdentitySvc,
		taxonomySvc: p.TaxonomySvc,
		auditSvc:    p.AuditSvc,
		refRepo:     p.RefRepo,
		editors:     p.Editors,
		overview:    p.Overview,
	}

	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/business-days", s.GetBusinessDays)
		api.PUT("/business-days", s.PutBusinessDays)
		api.GET("/business-hours", s.GetBusinessHours)
		api.PUT("/business-hours", s.PutBusinessHours)
		api.GET("/business-holidays", s.GetBusinessHolidays)
		api.GET("/business-holidays/upcoming", s.GetUpcomingHolidays)
		api.POST("/business-holidays", s.PostBusinessHoliday)
		api.PUT("/business-holidays/:id", s.PutBusinessHoliday)
		api.DELETE("/business-holidays/:id", s.DeleteBusinessHoliday)
	}
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")
	{
		admin.GET("/companies", s.ListCompanies)
		admin.POST("/companies", s.CreateCompany)
		admin.GET("/companies/:id", s.GetCompany)
		admin.PUT("/companies/:id", s.UpdateCompany)
		admin.DELETE("/companies/:id", s.DeleteCompany)
		admin.GET("/companies/:id/overview", s.GetCompanyOverview)

		s.registerDraftRoutes(admin)
		s.registerReferenceRoutes(admin)
		s.registerIdentityRoutes(admin)
		s.registerTaxonomyRoutes(admin)

		admin.GET("/audit-logs", s.ListAuditLogs)
	}
}
