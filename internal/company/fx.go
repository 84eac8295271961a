package company

import (
	"github.com/smallbiznis/bizconf/internal/company/repository"
	"github.com/smallbiznis/bizconf/internal/company/service"
	"go.uber.org/fx"
)

var Module = fx.Module("company",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
