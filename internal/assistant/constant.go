package assistant

const (
	// RecentMemoriesForPrompt is how many memories are appended to the persona.
	RecentMemoriesForPrompt = 5

	DefaultPersona = "You are Kuma, a friendly and concise voice assistant. " +
		"Answer in a few short sentences that sound natural when spoken aloud."

	MemoryBlockHeader = "Things the user has told you recently:"

	ReplyEmptyInput     = "I didn't hear anything. Please say or type something."
	ReplyErrorFormat    = "Sorry, something went wrong: %v"
	MessageMemoryClear  = "Memory cleared."
	MessageSessionClear = "Conversation cleared."
)
