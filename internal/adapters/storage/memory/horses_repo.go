package memory

import (
	"context"

	"equine-vet-dashboard/internal/domain/horses"
)

// horseRepo es de solo lectura: el listado de caballos no cambia durante la sesión.
type horseRepo struct {
	items []horses.Horse
}

func NewHorseRepo(items []horses.Horse) horses.Repository {
	cp := make([]horses.Horse, len(items))
	copy(cp, items)
	return &horseRepo{items: cp}
}

func (r *horseRepo) List(ctx context.Context) ([]horses.Horse, error) {
	out := make([]horses.Horse, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *horseRepo) GetByID(ctx context.Context, id string) (horses.Horse, error) {
	for _, h := range r.items {
		if h.ID == id {
			return h, nil
		}
	}
	return horses.Horse{}, ErrNotFound
}
