package reference

import (
	"github.com/smallbiznis/bizconf/internal/reference/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("reference.repository",
	fx.Provide(repository.Provide),
)
