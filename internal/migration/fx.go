package migration

import (
	"github.com/smallbiznis/bizconf/internal/config"
	"github.com/smallbiznis/bizconf/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := RunMigrations(conn); err != nil {
			return err
		}

		if err := seed.EnsureReferenceData(conn); err != nil {
			return err
		}
		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
