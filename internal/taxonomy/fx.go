package taxonomy

import (
	"github.com/smallbiznis/bizconf/internal/taxonomy/repository"
	"github.com/smallbiznis/bizconf/internal/taxonomy/service"
	"go.uber.org/fx"
)

var Module = fx.Module("taxonomy",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
