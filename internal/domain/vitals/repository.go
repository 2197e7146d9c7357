package vitals

import "context"

type Repository interface {
	// ListByHorse devuelve un snapshot (slice nuevo) de las lecturas del caballo.
	ListByHorse(ctx context.Context, horseID string) ([]Reading, error)
	Append(ctx context.Context, r Reading) error
}
