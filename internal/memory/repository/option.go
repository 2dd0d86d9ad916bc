package repository

// DefaultMaxMemoryItems caps the memory document after every save.
const DefaultMaxMemoryItems = 50

// MemoryOptions configures a memory repository.
type MemoryOptions struct {
	Path     string
	MaxItems int
}

// TaskOptions configures a task repository.
type TaskOptions struct {
	Path string
}
