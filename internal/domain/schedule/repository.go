package schedule

import "context"

type Repository interface {
	ListByHorse(ctx context.Context, horseID string) ([]Event, error)
	Append(ctx context.Context, e Event) error
}
