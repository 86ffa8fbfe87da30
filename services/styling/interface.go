package styling

import "context"

// Advisor answers styling questions with conversation memory per session.
type Advisor interface {
	Advise(ctx context.Context, sessionID, prompt string) (string, error)
}

// ContextStore keeps per-session conversation history.
type ContextStore interface {
	Append(ctx context.Context, sessionID, role, text string) error
	History(ctx context.Context, sessionID string) ([]string, error)
}
