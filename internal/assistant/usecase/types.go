package usecase

import "time"

// Options tunes the orchestrator. Zero values get defaults.
type Options struct {
	Persona        string
	RecentMemories int
	Temperature    float64
	MaxTokens      int
	Now            func() time.Time
}
