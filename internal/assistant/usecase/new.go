package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"kuma-assistant/internal/assistant"
	"kuma-assistant/internal/intent"
	"kuma-assistant/internal/memory/repository"
	"kuma-assistant/internal/session"
	pkgLog "kuma-assistant/pkg/log"
	"kuma-assistant/pkg/notify"
)

const tracerName = "kuma-assistant/internal/assistant"

type implUseCase struct {
	l         pkgLog.Logger
	router    intent.Router
	completer assistant.Completer
	memRepo   repository.MemoryRepository
	taskRepo  repository.TaskRepository
	sessions  *session.Registry
	sink      notify.Sink
	tracer    trace.Tracer
	opt       Options
}

// New creates the escalation orchestrator. completer and sink may be nil.
func New(
	l pkgLog.Logger,
	router intent.Router,
	completer assistant.Completer,
	memRepo repository.MemoryRepository,
	taskRepo repository.TaskRepository,
	sessions *session.Registry,
	sink notify.Sink,
	opt Options,
) assistant.UseCase {
	if opt.Persona == "" {
		opt.Persona = assistant.DefaultPersona
	}
	if opt.RecentMemories <= 0 {
		opt.RecentMemories = assistant.RecentMemoriesForPrompt
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if sink == nil {
		sink = notify.Multi{}
	}

	return &implUseCase{
		l:         l,
		router:    router,
		completer: completer,
		memRepo:   memRepo,
		taskRepo:  taskRepo,
		sessions:  sessions,
		sink:      sink,
		tracer:    otel.Tracer(tracerName),
		opt:       opt,
	}
}
