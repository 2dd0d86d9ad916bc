package gemini

import "context"

// IGemini is a generateContent client. One call carries an optional system
// instruction plus the whole multi-turn history; nothing is kept between calls,
// so a client is safe for concurrent use.
type IGemini interface {
	// GenerateContent returns the first candidate's text and token usage.
	// A response with no candidates yields ErrEmptyResponse.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, filling the model, URL and HTTP client defaults.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
