package cases

import "context"

type Repository interface {
	ListByHorse(ctx context.Context, horseID string) ([]Case, error)
	Append(ctx context.Context, c Case) error
}
