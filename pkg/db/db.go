package db

import (
	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// InMemoryDSN keeps all state inside the running process. The console
// has no real backend yet; the store only has to survive as long as the
// process does.
const InMemoryDSN = "file::memory:?cache=shared"

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func provide() (*gorm.DB, error) {
	return Open(InMemoryDSN)
}

var Module = fx.Module("db",
	fx.Provide(provide),
)
