package seed

import (
	"time"

	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
)

// DefaultVitalsDays: 6 meses de historia diaria.
const DefaultVitalsDays = 180

// Dataset es la base inmutable compartida por todas las sesiones.
type Dataset struct {
	Horses   []horses.Horse
	Vitals   map[string][]vitals.Reading
	History  map[string][]history.Event
	Cases    map[string][]cases.Case
	Alerts   map[string][]alerts.Alert
	Upcoming map[string][]schedule.Event
}

// Build genera el dataset mock. now fija el "hoy" de las vitals generadas.
func Build(now time.Time, vitalsDays int) Dataset {
	if vitalsDays <= 0 {
		vitalsDays = DefaultVitalsDays
	}

	ds := Dataset{
		Horses:   fixtureHorses(),
		Vitals:   map[string][]vitals.Reading{},
		History:  fixtureHistory(),
		Cases:    fixtureCases(),
		Upcoming: fixtureUpcoming(),
	}
	for _, h := range ds.Horses {
		ds.Vitals[h.ID] = GenerateVitals(h.ID, vitalsDays, now)
	}
	ds.Alerts = fixtureAlerts(ds.Vitals)
	return ds
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("seed: bad date " + s)
	}
	return t
}

func dateTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic("seed: bad date/time " + s)
	}
	return t
}
