package dashboard

import (
	"context"
	"testing"
	"time"

	"equine-vet-dashboard/internal/adapters/storage/seed"
	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/condition"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/vitals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Manager, *Session) {
	t.Helper()
	m := NewManager(seed.Build(testNow, seed.DefaultVitalsDays), Options{
		Now:                func() time.Time { return testNow },
		InjuryLookbackDays: 90,
		ActiveEventDays:    14,
	})
	s, err := m.Create(context.Background())
	require.NoError(t, err)
	return m, s
}

func TestManager_Create(t *testing.T) {
	m, s := newTestSession(t)

	st := s.State()
	assert.NotEmpty(t, st.SessionID)
	assert.Equal(t, "1", st.HorseID)
	assert.Equal(t, vitals.Range30Days, st.Range)
	assert.Equal(t, vitals.WindowTail, st.Window)
	assert.Nil(t, st.View)
	assert.Empty(t, st.Acknowledged)

	assert.True(t, m.Exists(s.ID))
	assert.False(t, m.Exists("nope"))
}

func TestSession_SelectHorse(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)

	require.NoError(t, s.SetRangeWindow(vitals.Range7Days, ""))
	require.NoError(t, s.SelectHorse(ctx, "3"))
	st := s.State()
	assert.Equal(t, "3", st.HorseID)
	assert.Equal(t, vitals.Range7Days, st.Range)

	err := s.SelectHorse(ctx, "99")
	assert.ErrorIs(t, err, horses.ErrNotFound)
	assert.Equal(t, "3", s.State().HorseID)
}

func TestSession_SetRangeWindow_Invalid(t *testing.T) {
	_, s := newTestSession(t)

	assert.ErrorIs(t, s.SetRangeWindow("1y", vitals.WindowCalendar), vitals.ErrInvalidRange)
	assert.ErrorIs(t, s.SetRangeWindow(vitals.Range7Days, "weekly"), vitals.ErrInvalidWindow)

	// un error en cualquiera de los dos no aplica ninguno
	st := s.State()
	assert.Equal(t, vitals.Range30Days, st.Range)
	assert.Equal(t, vitals.WindowTail, st.Window)
}

func TestSession_SetRangeWindow(t *testing.T) {
	_, s := newTestSession(t)

	require.NoError(t, s.SetRangeWindow(vitals.Range6Months, vitals.WindowCalendar))
	st := s.State()
	assert.Equal(t, vitals.Range6Months, st.Range)
	assert.Equal(t, vitals.WindowCalendar, st.Window)

	// window vacío mantiene el modo
	require.NoError(t, s.SetRangeWindow(vitals.Range7Days, ""))
	st = s.State()
	assert.Equal(t, vitals.Range7Days, st.Range)
	assert.Equal(t, vitals.WindowCalendar, st.Window)
}

func TestSession_OpenView_ReplacesCurrent(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)

	require.NoError(t, s.OpenView(ctx, ViewCase, "c1-1"))
	require.NoError(t, s.OpenView(ctx, ViewAlert, "a1-2"))
	assert.Equal(t, &OpenView{Kind: ViewAlert, ID: "a1-2"}, s.State().View)

	// addData no lleva ID
	require.NoError(t, s.OpenView(ctx, ViewAddData, "ignored"))
	assert.Equal(t, &OpenView{Kind: ViewAddData}, s.State().View)

	s.CloseView()
	assert.Nil(t, s.State().View)
}

func TestSession_OpenView_Errors(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)

	require.NoError(t, s.OpenView(ctx, ViewMetric, string(MetricRestingHR)))

	// c2-1 es de Aurora, no de Thunder
	assert.ErrorIs(t, s.OpenView(ctx, ViewCase, "c2-1"), ErrNotFound)
	assert.ErrorIs(t, s.OpenView(ctx, ViewTimelineEvent, "m2-1"), ErrNotFound)
	assert.ErrorIs(t, s.OpenView(ctx, ViewAlert, "a2-1"), alerts.ErrNotFound)
	assert.ErrorIs(t, s.OpenView(ctx, ViewMetric, "weight"), ErrInvalidInput)
	assert.ErrorIs(t, s.OpenView(ctx, ViewKind("chart"), ""), ErrInvalidInput)

	// los errores no pisan la vista abierta
	assert.Equal(t, &OpenView{Kind: ViewMetric, ID: string(MetricRestingHR)}, s.State().View)
}

func TestSession_ToggleAcknowledge(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)

	on, err := s.ToggleAcknowledge("u1-2")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{"u1-2"}, s.State().Acknowledged)

	v, err := s.Compose(ctx)
	require.NoError(t, err)
	for _, u := range v.Upcoming {
		assert.Equalf(t, u.ID == "u1-2", u.Acknowledged, "event %s", u.ID)
	}

	on, err = s.ToggleAcknowledge("u1-2")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, s.State().Acknowledged)

	_, err = s.ToggleAcknowledge("  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSession_Compose(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)
	require.NoError(t, s.SelectHorse(ctx, "2"))

	v, err := s.Compose(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Aurora", v.Horse.Name)
	assert.Len(t, v.Horses, 3)
	assert.Len(t, v.Vitals, vitals.Range30Days.Days())
	assert.Equal(t, testNow, v.Vitals[len(v.Vitals)-1].Date)

	assert.Equal(t, clinical.StatusRed, v.Summary.Condition.Status)
	assert.Equal(t, condition.TextAttention, v.Summary.Condition.Text)
	assert.Equal(t, 2, v.Summary.Cases.Total)
	assert.Equal(t, 1, v.Summary.Cases.Active)
	assert.Equal(t, 1, v.Summary.Cases.Monitoring)
	require.NotNil(t, v.Summary.Recovery)
	assert.Equal(t, "Fair", v.Summary.Recovery.Label)
	require.NotNil(t, v.Summary.LastVisit)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), *v.Summary.LastVisit)

	require.NotEmpty(t, v.Timeline)
	assert.Equal(t, "m2-1", v.Timeline[0].ID)
	assert.Equal(t, history.PhaseActive, v.Timeline[0].Phase)
	assert.Nil(t, v.Detail)
}

func TestSession_Compose_StaleDetail(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)

	require.NoError(t, s.OpenView(ctx, ViewCase, "c1-1"))
	v, err := s.Compose(ctx)
	require.NoError(t, err)
	require.NotNil(t, v.Detail)
	require.NotNil(t, v.Detail.Case)
	assert.Equal(t, "Tendon Strain - Right Foreleg", v.Detail.Case.Diagnosis)

	// al cambiar de caballo la vista queda abierta pero sin contenido
	require.NoError(t, s.SelectHorse(ctx, "2"))
	v, err = s.Compose(ctx)
	require.NoError(t, err)
	require.NotNil(t, v.Detail)
	assert.Equal(t, ViewCase, v.Detail.Kind)
	assert.Nil(t, v.Detail.Case)
}

func TestSession_Compose_AddDataOptions(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)

	require.NoError(t, s.OpenView(ctx, ViewAddData, ""))
	v, err := s.Compose(ctx)
	require.NoError(t, err)
	require.NotNil(t, v.Detail)
	require.NotNil(t, v.Detail.AddData)

	opts := v.Detail.AddData
	assert.Equal(t, []RecordKind{RecordMedicalEvent, RecordActiveCase, RecordVitals, RecordUpcomingEvent}, opts.RecordKinds)
	assert.Len(t, opts.Categories, 5)
	assert.Len(t, opts.Severities, 3)
}

func TestSession_Records_StayInSession(t *testing.T) {
	ctx := context.Background()
	m, s1 := newTestSession(t)
	s2, err := m.Create(ctx)
	require.NoError(t, err)

	e, err := s1.AddMedicalEvent(ctx, history.RecordInput{
		Date:     testNow.AddDate(0, 0, -1),
		Category: history.CategoryCheckup,
		Title:    "Post-ride check",
		Severity: clinical.SeverityLow,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", e.HorseID)
	assert.Equal(t, history.BodySystemGeneral, e.BodySystem)

	v1, err := s1.Compose(ctx)
	require.NoError(t, err)
	assert.Equal(t, e.ID, v1.Timeline[0].ID)

	v2, err := s2.Compose(ctx)
	require.NoError(t, err)
	for _, item := range v2.Timeline {
		assert.NotEqual(t, e.ID, item.ID)
	}
	assert.Len(t, v2.Timeline, len(v1.Timeline)-1)
}

func TestSession_AddMedicalEvent_Invalid(t *testing.T) {
	_, s := newTestSession(t)

	_, err := s.AddMedicalEvent(context.Background(), history.RecordInput{
		Date:     testNow,
		Category: history.CategoryCheckup,
		Severity: clinical.SeverityLow,
	})
	assert.ErrorIs(t, err, history.ErrInvalidInput)
}

func TestSession_MetricDetail(t *testing.T) {
	ctx := context.Background()
	_, s := newTestSession(t)
	require.NoError(t, s.SelectHorse(ctx, "2"))

	t.Run("vitals series", func(t *testing.T) {
		d, err := s.MetricDetail(ctx, string(MetricRestingHR))
		require.NoError(t, err)
		assert.Equal(t, "bpm", d.Unit)
		assert.Len(t, d.Series, seed.DefaultVitalsDays+1)
		require.NotNil(t, d.Stats)
		assert.Equal(t, 35.0, d.Stats.Current)
		assert.LessOrEqual(t, d.Stats.Min, d.Stats.Max)
	})

	t.Run("recovery status", func(t *testing.T) {
		d, err := s.MetricDetail(ctx, string(MetricRecoveryScore))
		require.NoError(t, err)
		assert.Equal(t, clinical.StatusYellow, d.Status)
	})

	t.Run("condition bands", func(t *testing.T) {
		d, err := s.MetricDetail(ctx, string(MetricCurrentCondition))
		require.NoError(t, err)
		require.NotNil(t, d.Recovery)
		require.NotNil(t, d.Inflammation)
		assert.Equal(t, "Good recovery status", d.Recovery.Text)
		assert.Equal(t, "Elevated - monitor closely", d.Inflammation.Text)
		require.NotNil(t, d.Condition)
		assert.Equal(t, clinical.StatusRed, d.Condition.Status)
		assert.Nil(t, d.Series)
	})

	t.Run("visits", func(t *testing.T) {
		d, err := s.MetricDetail(ctx, string(MetricVisits))
		require.NoError(t, err)
		require.NotNil(t, d.DaysSinceLastVisit)
		assert.Equal(t, 10, *d.DaysSinceLastVisit)
		assert.NotNil(t, d.NextVisit)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := s.MetricDetail(ctx, "weight")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestManager_Close(t *testing.T) {
	m, s := newTestSession(t)

	assert.True(t, m.Close(s.ID))
	assert.False(t, m.Exists(s.ID))
	assert.False(t, m.Close(s.ID))
	assert.Empty(t, m.sessions)
}

func TestManager_IdleExpiry(t *testing.T) {
	ctx := context.Background()
	clock := testNow
	m := NewManager(seed.Build(testNow, 30), Options{
		Now:       func() time.Time { return testNow },
		IdleTTL:   30 * time.Minute,
		IdleClock: func() time.Time { return clock },
	})

	idle, err := m.Create(ctx)
	require.NoError(t, err)
	active, err := m.Create(ctx)
	require.NoError(t, err)

	clock = clock.Add(20 * time.Minute)
	_, ok := m.Get(active.ID)
	require.True(t, ok)

	// idle lleva 40 minutos sin uso, active 20
	clock = clock.Add(20 * time.Minute)
	_, ok = m.Get(active.ID)
	assert.True(t, ok)
	_, ok = m.Get(idle.ID)
	assert.False(t, ok)
	assert.Len(t, m.sessions, 1)

	// Create barre las vencidas aunque nadie las busque
	clock = clock.Add(time.Hour)
	fresh, err := m.Create(ctx)
	require.NoError(t, err)
	assert.Len(t, m.sessions, 1)
	assert.Contains(t, m.sessions, fresh.ID)
}

func TestManager_NoExpiryWithoutTTL(t *testing.T) {
	clock := testNow
	m := NewManager(seed.Build(testNow, 30), Options{IdleClock: func() time.Time { return clock }})
	s, err := m.Create(context.Background())
	require.NoError(t, err)

	clock = clock.AddDate(1, 0, 0)
	assert.True(t, m.Exists(s.ID))
}
