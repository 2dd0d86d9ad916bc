package usecase

import (
	"context"
	"fmt"
	"strings"

	"kuma-assistant/internal/intent"
	"kuma-assistant/internal/model"
)

func (uc *implUseCase) handleTaskWrite(ctx context.Context, in intent.Input) (string, error) {
	task := extractTask(in.Text)
	if task == "" {
		return intent.ReplyTaskClarify, nil
	}

	if err := uc.taskRepo.Append(ctx, model.NewTaskEntry(task, uc.now())); err != nil {
		return "", fmt.Errorf("save task: %w", err)
	}
	return fmt.Sprintf(intent.ReplyTaskAdded, task), nil
}

func (uc *implUseCase) handleTaskRead(ctx context.Context, _ intent.Input) (string, error) {
	tasks, err := uc.taskRepo.Recent(ctx, intent.TaskReadLimit)
	if err != nil {
		return "", fmt.Errorf("load tasks: %w", err)
	}
	if len(tasks) == 0 {
		return intent.ReplyNoTasks, nil
	}

	items := make([]string, len(tasks))
	for i, t := range tasks {
		items[i] = t.Task
	}
	return numbered(intent.ReplyTaskHeader, items), nil
}

func (uc *implUseCase) handleTaskClear(ctx context.Context, _ intent.Input) (string, error) {
	if err := uc.taskRepo.Clear(ctx); err != nil {
		return "", fmt.Errorf("clear tasks: %w", err)
	}
	return intent.ReplyTasksCleared, nil
}

// extractTask takes the words after the last whole word "to".
// Without one, it takes the text after the trigger phrase.
// "remind me to go to the store" yields "the store".
func extractTask(text string) string {
	words := strings.Fields(text)
	for i := len(words) - 1; i >= 0; i-- {
		if trimPunct(words[i]) == "to" {
			return trimPunct(strings.Join(words[i+1:], " "))
		}
	}

	for _, trigger := range intent.TaskWritePhrases {
		if idx := strings.Index(text, trigger); idx >= 0 {
			return trimPunct(text[idx+len(trigger):])
		}
	}
	return ""
}
