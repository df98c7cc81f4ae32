package port

import "context"

// Notifier delivers the plain-text run report to a human-facing channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
