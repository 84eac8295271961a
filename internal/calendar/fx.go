package calendar

import (
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
	"github.com/smallbiznis/bizconf/internal/calendar/editor"
	"github.com/smallbiznis/bizconf/internal/calendar/repository"
	"github.com/smallbiznis/bizconf/internal/calendar/service"
	"github.com/smallbiznis/bizconf/internal/calendar/viewstate"
	"go.uber.org/fx"
)

var Module = fx.Module("calendar",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	draft.Module,
	editor.Module,
	viewstate.Module,
)
