package seed

import (
	"testing"
	"time"

	"equine-vet-dashboard/internal/domain/vitals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC)

func TestGenerateVitals_DeterministicAndAscending(t *testing.T) {
	a := GenerateVitals("1", 180, refNow)
	b := GenerateVitals("1", 180, refNow)
	require.Len(t, a, 181)
	assert.Equal(t, a, b)

	for i := 1; i < len(a); i++ {
		assert.True(t, a[i-1].Date.Before(a[i].Date))
	}
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), a[len(a)-1].Date)
}

func TestGenerateVitals_SeedFormula(t *testing.T) {
	// i = 0 (hoy) para el caballo 2: seed = 2000
	got := GenerateVitals("2", 0, refNow)
	require.Len(t, got, 1)
	r := got[0]

	assert.InDelta(t, 35.0, r.RestingHR, 1e-9)
	assert.InDelta(t, 37.2+0.3, r.TempC, 1e-9)
	assert.InDelta(t, 14.0, r.RespRate, 1e-9)
	assert.InDelta(t, 70.0, r.RecoveryScore, 1e-9)
	assert.InDelta(t, 3.5, r.InflammationIndex, 1e-9)
	assert.InDelta(t, 85.0, r.SymmetryPct, 1e-9)
}

func TestGenerateVitals_Clamped(t *testing.T) {
	for _, id := range []string{"1", "2", "3"} {
		for _, r := range GenerateVitals(id, 180, refNow) {
			assert.GreaterOrEqual(t, r.RecoveryScore, 0.0)
			assert.LessOrEqual(t, r.RecoveryScore, 100.0)
			assert.GreaterOrEqual(t, r.InflammationIndex, 0.0)
			assert.LessOrEqual(t, r.InflammationIndex, 10.0)
		}
	}
}

func TestBuild_EveryEntityScopedToItsHorse(t *testing.T) {
	ds := Build(refNow, 0)
	require.Len(t, ds.Horses, 3)

	for horseID, items := range ds.History {
		for _, e := range items {
			assert.Equal(t, horseID, e.HorseID, e.ID)
		}
	}
	for horseID, items := range ds.Cases {
		for _, c := range items {
			assert.Equal(t, horseID, c.HorseID, c.ID)
		}
	}
	for horseID, items := range ds.Upcoming {
		for _, e := range items {
			assert.Equal(t, horseID, e.HorseID, e.ID)
		}
	}
	for horseID, items := range ds.Alerts {
		for _, a := range items {
			assert.Equal(t, horseID, a.HorseID, a.ID)
			assert.Len(t, a.History, alertHistoryPoints)
		}
	}
}

func TestBuild_AlertHistoryMatchesVitalsTail(t *testing.T) {
	ds := Build(refNow, 30)
	a := ds.Alerts["1"][0]
	require.Equal(t, vitals.MetricRecoveryScore, a.MetricKey)

	rs := ds.Vitals["1"]
	last := rs[len(rs)-1]
	assert.Equal(t, last.Date, a.History[len(a.History)-1].Date)
	assert.Equal(t, last.RecoveryScore, a.History[len(a.History)-1].Value)
}
