package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"kuma-assistant/internal/assistant"
	"kuma-assistant/internal/intent"
	"kuma-assistant/internal/model"
	"kuma-assistant/internal/session"
	"kuma-assistant/pkg/llmprovider"
)

// Query runs the five-step escalation protocol:
// normalize, local attempt, prompt assembly, remote call, one-shot local fallback.
// The returned error is always nil; failures are folded into the reply.
func (uc *implUseCase) Query(ctx context.Context, input assistant.QueryInput) (assistant.QueryOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "assistant.usecase.Query")
	defer span.End()

	out := uc.query(ctx, input)
	span.SetAttributes(
		attribute.String("kuma.resolution", string(out.Resolution)),
		attribute.String("kuma.intent", string(out.Intent)),
	)
	return out, nil
}

func (uc *implUseCase) query(ctx context.Context, input assistant.QueryInput) assistant.QueryOutput {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.QueryOutput{Reply: assistant.ReplyEmptyInput, Resolution: assistant.ResolutionEmptyInput}
	}

	buf := uc.sessions.Get(input.SessionID)
	routeIn := intent.Input{Text: text, ClientIP: input.ClientIP}

	if !input.ForceRemote {
		res, err := uc.router.Route(ctx, routeIn)
		switch {
		case err == nil:
			return uc.resolve(ctx, buf, text, assistant.QueryOutput{
				Reply: res.Reply, Resolution: assistant.ResolutionLocal, Intent: res.Intent,
			})
		case !errors.Is(err, intent.ErrNoMatch):
			return uc.surface(ctx, err, res.Intent)
		}
	}

	resp, remoteErr := uc.complete(ctx, buf, text)
	if remoteErr == nil {
		return uc.resolve(ctx, buf, text, assistant.QueryOutput{
			Reply: resp.Text, Resolution: assistant.ResolutionRemote, Provider: resp.ProviderName,
		})
	}

	var perr *llmprovider.ProviderError
	if errors.As(remoteErr, &perr) {
		uc.l.Warnf(ctx, "assistant.usecase.Query: provider %s failed, falling back to local rules: %v", perr.Provider, perr.Err)
	} else {
		uc.l.Warnf(ctx, "assistant.usecase.Query: remote completion failed, falling back to local rules: %v", remoteErr)
	}

	res, err := uc.router.Route(ctx, routeIn)
	if err == nil {
		return uc.resolve(ctx, buf, text, assistant.QueryOutput{
			Reply: res.Reply, Resolution: assistant.ResolutionFallback, Intent: res.Intent,
		})
	}
	if !errors.Is(err, intent.ErrNoMatch) {
		uc.l.Errorf(ctx, "assistant.usecase.Query: fallback route: %v", err)
	}
	return uc.surface(ctx, remoteErr, "")
}

// complete assembles the prompt and calls the remote capability inside a span.
func (uc *implUseCase) complete(ctx context.Context, buf *session.Buffer, text string) (*llmprovider.Response, error) {
	if uc.completer == nil {
		return nil, assistant.ErrNoCompleter
	}

	req := uc.buildRequest(ctx, buf.Snapshot(), text)

	ctx, span := uc.tracer.Start(ctx, "assistant.usecase.complete")
	defer span.End()
	span.SetAttributes(attribute.Int("kuma.messages", len(req.Messages)))

	resp, err := uc.completer.Complete(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if strings.TrimSpace(resp.Text) == "" {
		err = fmt.Errorf("%s: %w", resp.ProviderName, llmprovider.ErrEmptyCompletion)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("llm.provider", resp.ProviderName),
		attribute.String("llm.model", resp.ModelName),
	)
	return resp, nil
}

// resolve runs the post-processing shared by every resolved turn:
// present, persist the memory pair, grow the session buffer.
func (uc *implUseCase) resolve(ctx context.Context, buf *session.Buffer, text string, out assistant.QueryOutput) assistant.QueryOutput {
	uc.sink.Present(ctx, out.Reply)

	now := uc.opt.Now()
	if err := uc.memRepo.Append(ctx,
		model.NewMemoryEntry(text, now),
		model.NewMemoryEntry(out.Reply, now),
	); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.resolve: persist memory: %v", err)
	}

	buf.Append(model.RoleUser, text)
	buf.Append(model.RoleAssistant, out.Reply)

	uc.l.Infof(ctx, "assistant.usecase.Query: %s intent=%q provider=%q", out.Resolution, out.Intent, out.Provider)
	return out
}

// surface turns an unrecoverable error into the reply. Nothing is persisted.
func (uc *implUseCase) surface(ctx context.Context, err error, name intent.Name) assistant.QueryOutput {
	uc.l.Errorf(ctx, "assistant.usecase.Query: %s: %v", assistant.ResolutionError, err)
	return assistant.QueryOutput{
		Reply:      fmt.Sprintf(assistant.ReplyErrorFormat, err),
		Resolution: assistant.ResolutionError,
		Intent:     name,
	}
}
