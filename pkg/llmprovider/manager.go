package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kuma-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the whole chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the provider names in priority order.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// Complete iterates through providers in priority order with fallback logic.
// Every failure is a *ProviderError.
func (m *Manager) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, &ProviderError{Provider: "none", Err: ErrNoProvidersConfigured}
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: "none", Err: ErrInvalidRequest}
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var (
		lastErr  error
		lastName string
		tried    []string
	)

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, &ProviderError{
				Provider: strings.Join(tried, ","),
				Err:      fmt.Errorf("%w: global timeout exceeded after %d provider(s): %v", ErrAllProvidersFailed, len(tried), ctx.Err()),
			}
		default:
		}

		tried = append(tried, provider.Name())
		resp, err := m.completeWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err
		lastName = provider.Name()

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, &ProviderError{
		Provider: lastName,
		Err:      fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr),
	}
}

// completeWithRetry retries one provider with linear backoff
func (m *Manager) completeWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 && m.config.RetryDelay > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.Complete(ctx, req)
		if err == nil {
			if resp.ProviderName == "" {
				resp.ProviderName = provider.Name()
			}
			if resp.ModelName == "" {
				resp.ModelName = provider.Model()
			}
			if resp.Usage == nil {
				resp.Usage = &Usage{}
			}
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "llmprovider.Manager.Complete: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.Manager.Complete: provider=%s model=%s failed: %v",
		provider.Name(), provider.Model(), err)
}
