package memory

import (
	"context"
	"testing"
	"time"

	"equine-vet-dashboard/internal/adapters/storage/seed"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/vitals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func TestAppendLog_ReplaysBaseThenAdded(t *testing.T) {
	l := newAppendLog(map[string][]int{"1": {1, 2}}, nil)
	require.NoError(t, l.append("1", 3))
	require.NoError(t, l.append("2", 9))

	assert.Equal(t, []int{1, 2, 3}, l.list("1"))
	assert.Equal(t, []int{9}, l.list("2"))
	assert.Empty(t, l.list("nope"))
}

func TestAppendLog_ListIsSnapshot(t *testing.T) {
	base := map[string][]int{"1": {1, 2}}
	l := newAppendLog(base, nil)

	got := l.list("1")
	got[0] = 100

	assert.Equal(t, []int{1, 2}, l.list("1"))
	assert.Equal(t, []int{1, 2}, base["1"])
}

func TestAppendLog_RequiresHorseID(t *testing.T) {
	l := newAppendLog[int](nil, nil)
	assert.ErrorIs(t, l.append("  ", 1), ErrHorseIDMissing)
}

func TestHorseRepo_GetByID(t *testing.T) {
	r := NewHorseRepo([]horses.Horse{{ID: "1", Name: "Thunder"}})
	ctx := context.Background()

	h, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Thunder", h.Name)

	_, err = r.GetByID(ctx, "9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	ds := seed.Build(refNow, 30)

	a := NewStore(ds)
	b := NewStore(ds)

	before, err := b.History.ListByHorse(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, a.History.Append(ctx, history.Event{ID: "m-new", HorseID: "1", Title: "Added"}))
	require.NoError(t, a.Vitals.Append(ctx, vitals.Reading{HorseID: "1", Date: refNow}))

	gotA, err := a.History.ListByHorse(ctx, "1")
	require.NoError(t, err)
	gotB, err := b.History.ListByHorse(ctx, "1")
	require.NoError(t, err)

	assert.Len(t, gotA, len(before)+1)
	assert.Equal(t, "m-new", gotA[len(gotA)-1].ID)
	assert.Equal(t, before, gotB)
	assert.Len(t, ds.History["1"], len(before))

	va, _ := a.Vitals.ListByHorse(ctx, "1")
	vb, _ := b.Vitals.ListByHorse(ctx, "1")
	assert.Len(t, va, len(vb)+1)
}

func TestStore_ListDoesNotShareNestedData(t *testing.T) {
	ctx := context.Background()
	ds := seed.Build(refNow, 30)

	a := NewStore(ds)
	b := NewStore(ds)

	ca, err := a.Cases.ListByHorse(ctx, "1")
	require.NoError(t, err)
	require.NotEmpty(t, ca[0].Meds)
	ca[0].Meds[0].Name = "changed"

	ha, err := a.History.ListByHorse(ctx, "1")
	require.NoError(t, err)
	idx := -1
	for i, e := range ha {
		if len(e.Attachments) > 0 {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx, "seed should have an event with attachments")
	ha[idx].Attachments[0].Label = "changed"

	aa, err := a.Alerts.ListByHorse(ctx, "1")
	require.NoError(t, err)
	require.NotEmpty(t, aa[0].History)
	aa[0].History[0].Value = -999
	aa[0].RecommendedNextSteps[0] = "changed"

	cb, _ := b.Cases.ListByHorse(ctx, "1")
	hb, _ := b.History.ListByHorse(ctx, "1")
	ab, _ := b.Alerts.ListByHorse(ctx, "1")
	assert.NotEqual(t, "changed", cb[0].Meds[0].Name)
	assert.NotEqual(t, "changed", hb[idx].Attachments[0].Label)
	assert.NotEqual(t, -999.0, ab[0].History[0].Value)
	assert.NotEqual(t, "changed", ab[0].RecommendedNextSteps[0])

	// tampoco dentro de la misma sesión ni en el dataset base
	again, _ := a.Cases.ListByHorse(ctx, "1")
	assert.NotEqual(t, "changed", again[0].Meds[0].Name)
	assert.NotEqual(t, "changed", ds.Cases["1"][0].Meds[0].Name)
}

func TestHistoryRepo_AppendCopiesNestedData(t *testing.T) {
	ctx := context.Background()
	r := NewHistoryRepo(nil)

	end := refNow
	atts := []history.Attachment{{Label: "x-ray", URL: "#"}}
	require.NoError(t, r.Append(ctx, history.Event{ID: "m-1", HorseID: "1", EndDate: &end, Attachments: atts}))

	atts[0].Label = "changed"
	end = end.AddDate(1, 0, 0)

	got, err := r.ListByHorse(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x-ray", got[0].Attachments[0].Label)
	assert.Equal(t, refNow, *got[0].EndDate)
}
