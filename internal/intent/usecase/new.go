package usecase

import (
	"math/rand/v2"
	"time"

	"kuma-assistant/internal/intent"
	"kuma-assistant/internal/memory/repository"
	"kuma-assistant/pkg/datemath"
	"kuma-assistant/pkg/launcher"
	pkgLog "kuma-assistant/pkg/log"
	"kuma-assistant/pkg/weather"
)

type implUseCase struct {
	l         pkgLog.Logger
	memRepo   repository.MemoryRepository
	taskRepo  repository.TaskRepository
	weather   weather.IWeather
	launcher  launcher.Launcher
	dateMath  *datemath.Parser
	now       func() time.Time
	pick      func(n int) int
	shortcuts []intent.Shortcut
	rules     []intent.Rule
}

// New creates the intent router. The rule order is fixed here.
func New(
	l pkgLog.Logger,
	memRepo repository.MemoryRepository,
	taskRepo repository.TaskRepository,
	wx weather.IWeather,
	launch launcher.Launcher,
	dateMath *datemath.Parser,
	opt Options,
) intent.Router {
	uc := &implUseCase{
		l:         l,
		memRepo:   memRepo,
		taskRepo:  taskRepo,
		weather:   wx,
		launcher:  launch,
		dateMath:  dateMath,
		now:       opt.Now,
		pick:      opt.Pick,
		shortcuts: append(append([]intent.Shortcut{}, opt.Shortcuts...), intent.DefaultShortcuts...),
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.pick == nil {
		uc.pick = rand.IntN
	}
	if uc.launcher == nil {
		uc.launcher = launcher.NewNoop(l)
	}

	uc.rules = []intent.Rule{
		{Name: intent.NameMemoryWrite, Match: matchMemoryWrite, Handle: uc.handleMemoryWrite},
		{Name: intent.NameMemoryRead, Match: matchAny(intent.MemoryReadPhrases), Handle: uc.handleMemoryRead},
		{Name: intent.NameTaskWrite, Match: matchAny(intent.TaskWritePhrases), Handle: uc.handleTaskWrite},
		{Name: intent.NameTaskClear, Match: matchAny(intent.TaskClearPhrases), Handle: uc.handleTaskClear},
		{Name: intent.NameTaskRead, Match: matchAny(intent.TaskReadPhrases), Handle: uc.handleTaskRead},
		{Name: intent.NameTime, Match: matchTime, Handle: uc.handleTime},
		{Name: intent.NameDate, Match: matchDate, Handle: uc.handleDate},
		{Name: intent.NameJoke, Match: matchJoke, Handle: uc.handleJoke},
		{Name: intent.NameWeather, Match: matchAny(intent.WeatherPhrases), Handle: uc.handleWeather},
		{Name: intent.NameShortcut, Match: uc.matchShortcut, Handle: uc.handleShortcut},
	}
	return uc
}
