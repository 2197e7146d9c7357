package alerts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo map[string][]Alert

func (f fakeRepo) ListByHorse(_ context.Context, horseID string) ([]Alert, error) {
	return f[horseID], nil
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(fakeRepo{
		"1": {{ID: "a1-1", HorseID: "1"}, {ID: "a1-2", HorseID: "1"}},
		"2": {{ID: "a2-1", HorseID: "2"}},
	})
	ctx := context.Background()

	a, err := svc.GetByID(ctx, "1", " a1-2 ")
	require.NoError(t, err)
	assert.Equal(t, "a1-2", a.ID)

	// las alertas son por caballo
	_, err = svc.GetByID(ctx, "1", "a2-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
