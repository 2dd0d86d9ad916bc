package usecase

import (
	"context"
	"fmt"

	"kuma-assistant/internal/model"
)

func (uc *implUseCase) Memory(ctx context.Context) ([]model.MemoryEntry, error) {
	entries, err := uc.memRepo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Memory: %v", err)
		return nil, fmt.Errorf("load memory: %w", err)
	}
	return entries, nil
}

func (uc *implUseCase) ClearMemory(ctx context.Context) error {
	if err := uc.memRepo.Clear(ctx); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ClearMemory: %v", err)
		return fmt.Errorf("clear memory: %w", err)
	}
	uc.l.Infof(ctx, "assistant.usecase.ClearMemory: memory cleared")
	return nil
}

func (uc *implUseCase) Tasks(ctx context.Context) ([]model.TaskEntry, error) {
	tasks, err := uc.taskRepo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Tasks: %v", err)
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}
