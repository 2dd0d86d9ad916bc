package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kuma-assistant/config"
	_ "kuma-assistant/docs" // Swagger docs
	"kuma-assistant/internal/assistant"
	assistantHTTP "kuma-assistant/internal/assistant/delivery/http"
	assistantUC "kuma-assistant/internal/assistant/usecase"
	"kuma-assistant/internal/httpserver"
	"kuma-assistant/internal/intent"
	intentUC "kuma-assistant/internal/intent/usecase"
	"kuma-assistant/internal/memory/repository"
	"kuma-assistant/internal/memory/repository/file"
	"kuma-assistant/internal/middleware"
	"kuma-assistant/internal/session"
	"kuma-assistant/pkg/datemath"
	"kuma-assistant/pkg/launcher"
	"kuma-assistant/pkg/llmprovider"
	"kuma-assistant/pkg/log"
	"kuma-assistant/pkg/notify"
	"kuma-assistant/pkg/telegram"
	"kuma-assistant/pkg/weather"
)

// @title       Kuma Assistant API
// @description Voice/text assistant backend: local intent rules with remote LLM escalation.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Kuma assistant backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Stores
	memRepo, err := file.NewMemory(repository.MemoryOptions{
		Path:     cfg.Storage.MemoryPath,
		MaxItems: cfg.Storage.MaxMemoryItems,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open memory store: ", err)
		return
	}
	taskRepo, err := file.NewTask(repository.TaskOptions{Path: cfg.Storage.TaskPath}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open task store: ", err)
		return
	}

	sessionTTL, err := parseDuration(cfg.Session.TTL)
	if err != nil {
		logger.Error(ctx, "Invalid session.ttl: ", err)
		return
	}
	sessions := session.NewRegistry(session.Options{
		MaxHistory:  cfg.Session.MaxHistory,
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         sessionTTL,
	})

	// 4. Local collaborators
	dateMathParser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	var wx weather.IWeather
	if cfg.Weather.Enabled {
		wx, err = newWeather(cfg.Weather)
		if err != nil {
			logger.Warnf(ctx, "Weather disabled: %v", err)
		}
	}

	var launch launcher.Launcher = launcher.NewNoop(logger)
	if cfg.Launcher.Mode == "exec" {
		launch = launcher.NewExec(logger)
	}

	router := intentUC.New(logger, memRepo, taskRepo, wx, launch, dateMathParser, intentUC.Options{
		Shortcuts: shortcuts(cfg.Launcher.Shortcuts),
	})
	logger.Infof(ctx, "Intent router ready with %d rules", len(router.Rules()))

	// 5. Remote completion (optional)
	var completer assistant.Completer
	if manager, mErr := newLLMManager(ctx, logger, &cfg.LLM); mErr != nil {
		logger.Warnf(ctx, "Remote completion disabled: %v", mErr)
	} else {
		completer = manager
		logger.Infof(ctx, "LLM providers: %v", manager.Providers())
	}

	// 6. Presentation sinks
	sinks := notify.Multi{notify.NewLogSink(logger)}
	var tgSink *notify.TelegramSink
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		tgSink = notify.NewTelegramSink(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID, logger)
		sinks = append(sinks, tgSink)
		logger.Info(ctx, "Telegram notifications enabled")
	}

	// 7. Orchestrator + delivery
	uc := assistantUC.New(logger, router, completer, memRepo, taskRepo, sessions, sinks, assistantUC.Options{
		Persona:        cfg.Assistant.Persona,
		RecentMemories: cfg.Assistant.RecentMemories,
		Temperature:    cfg.Assistant.Temperature,
		MaxTokens:      cfg.Assistant.MaxTokens,
	})

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHTTP.New(logger, uc),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	if tgSink != nil {
		tgSink.Wait()
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func newWeather(cfg config.WeatherConfig) (weather.IWeather, error) {
	timeout, err := parseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid weather.timeout: %w", err)
	}
	if timeout == 0 {
		timeout = weather.DefaultTimeout
	}
	return weather.New(weather.Config{
		GeoURL:     cfg.GeoURL,
		WeatherURL: cfg.WeatherURL,
		HTTPClient: &http.Client{Timeout: timeout},
	})
}

func newLLMManager(ctx context.Context, logger log.Logger, cfg *config.LLMConfig) (*llmprovider.Manager, error) {
	providers, warnings, err := llmprovider.InitializeProviders(cfg)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		return nil, err
	}

	managerCfg, err := llmprovider.NewManagerConfig(cfg)
	if err != nil {
		return nil, err
	}
	return llmprovider.NewManager(providers, managerCfg, logger), nil
}

func shortcuts(in []config.ShortcutConfig) []intent.Shortcut {
	out := make([]intent.Shortcut, 0, len(in))
	for _, s := range in {
		if s.Phrase == "" || s.Target == "" {
			continue
		}
		reply := s.Reply
		if reply == "" {
			reply = fmt.Sprintf("Opening %s.", s.Target)
		}
		out = append(out, intent.Shortcut{
			Phrase: s.Phrase,
			Kind:   launcher.Kind(s.Kind),
			Target: s.Target,
			Reply:  reply,
		})
	}
	return out
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
