package injuries

import (
	"sort"
	"time"

	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/history"
)

// DefaultLookbackDays: solo lesiones recientes se pintan en el modelo.
const DefaultLookbackDays = 90

type Mapper struct {
	locator  Locator
	lookback int
	now      func() time.Time
}

// NewMapper crea un mapper. locator nil usa KeywordLocator; now nil usa time.Now.
func NewMapper(locator Locator, lookbackDays int, now func() time.Time) *Mapper {
	if locator == nil {
		locator = KeywordLocator{}
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	if now == nil {
		now = time.Now
	}
	return &Mapper{locator: locator, lookback: lookbackDays, now: now}
}

// Recent devuelve los eventos Injury dentro de la ventana, del más reciente al más antiguo.
func (m *Mapper) Recent(events []history.Event) []history.Event {
	cutoff := m.now().AddDate(0, 0, -m.lookback)

	out := make([]history.Event, 0)
	for _, e := range events {
		if e.Category != history.CategoryInjury {
			continue
		}
		if e.Date.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Map devuelve la severidad por zona. Si varias lesiones caen en la misma zona gana la mayor.
// Zonas sin hallazgos no aparecen en el mapa.
func (m *Mapper) Map(events []history.Event) map[Region]clinical.Severity {
	out := map[Region]clinical.Severity{}
	for _, e := range m.Recent(events) {
		for _, f := range m.locator.Locate(e.Title, e.Notes, e.Severity) {
			out[f.Region] = clinical.HighestSeverity(out[f.Region], f.Severity)
		}
	}
	return out
}
