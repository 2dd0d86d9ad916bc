package intent

import "context"

// Router resolves an utterance locally, without any remote call.
type Router interface {
	// Route runs the rules in order and returns the first match.
	// It returns ErrNoMatch when no rule applies. Any other error is a store failure.
	Route(ctx context.Context, in Input) (Result, error)

	// Rules returns the ordered rule list. The order is part of the contract.
	Rules() []Rule
}
