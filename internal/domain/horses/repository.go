package horses

import "context"

type Repository interface {
	List(ctx context.Context) ([]Horse, error)
	GetByID(ctx context.Context, id string) (Horse, error)
}
