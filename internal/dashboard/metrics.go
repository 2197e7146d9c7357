package dashboard

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/condition"
	"equine-vet-dashboard/internal/domain/vitals"
)

// Metric es una tarjeta clickeable del dashboard (summary o trends).
// @Enum currentCondition, activeCases, recoveryScore, visits, restingHR, temperature, inflammationIndex, respiratoryRate, symmetry
type Metric string

const (
	MetricCurrentCondition  Metric = "currentCondition"
	MetricActiveCases       Metric = "activeCases"
	MetricRecoveryScore     Metric = "recoveryScore"
	MetricVisits            Metric = "visits"
	MetricRestingHR         Metric = "restingHR"
	MetricTemperature       Metric = "temperature"
	MetricInflammationIndex Metric = "inflammationIndex"
	MetricRespiratoryRate   Metric = "respiratoryRate"
	MetricSymmetry          Metric = "symmetry"
)

type metricInfo struct {
	title string
	unit  string
	note  string
	// key vacío = la métrica no es una serie de vitals
	key vitals.MetricKey
}

var metrics = map[Metric]metricInfo{
	MetricCurrentCondition: {title: "Current Condition"},
	MetricActiveCases:      {title: "Active Cases"},
	MetricVisits: {
		title: "Visit History",
		note:  "Regular veterinary visits are essential for maintaining your horse's health. Ensure all scheduled appointments are kept and follow-up visits are attended as recommended by your veterinarian.",
	},
	MetricRecoveryScore: {
		title: "Recovery Score",
		key:   vitals.MetricRecoveryScore,
		note:  "Recovery Score measures the horse's overall recovery status. A score of 70+ indicates good recovery, 50-69 suggests moderate recovery requiring monitoring, and below 50 indicates poor recovery requiring immediate attention.",
	},
	MetricRestingHR: {
		title: "Resting Heart Rate",
		unit:  "bpm",
		key:   vitals.MetricRestingHR,
		note:  "Normal resting heart rate for horses typically ranges from 28-44 beats per minute. Values outside this range may indicate stress, illness, or other health concerns and should be discussed with your veterinarian.",
	},
	MetricTemperature: {
		title: "Temperature",
		unit:  "°C",
		key:   vitals.MetricTempC,
		note:  "Normal body temperature for horses ranges from 37.5-38.5°C (99.5-101.3°F). Elevated temperatures may indicate infection or inflammation, while low temperatures can indicate shock or other serious conditions.",
	},
	MetricInflammationIndex: {
		title: "Inflammation Index",
		key:   vitals.MetricInflammationIndex,
		note:  "Inflammation Index measures systemic inflammation. Values 0-3 indicate normal levels, 4-6 suggest elevated inflammation requiring monitoring, and 7-10 indicate high inflammation requiring immediate veterinary attention.",
	},
	MetricRespiratoryRate: {
		title: "Respiratory Rate",
		unit:  "breaths/min",
		key:   vitals.MetricRespRate,
		note:  "Normal respiratory rate for horses at rest ranges from 8-16 breaths per minute. Elevated rates may indicate respiratory distress, pain, or other health concerns.",
	},
	MetricSymmetry: {
		title: "Symmetry Percentage",
		unit:  "%",
		key:   vitals.MetricSymmetryPct,
		note:  "Symmetry percentage measures the balance and symmetry of movement. Values above 85% indicate good symmetry, while lower values may indicate lameness, injury, or musculoskeletal issues requiring veterinary evaluation.",
	},
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.TrimSpace(s))
	if _, ok := metrics[m]; !ok {
		return "", fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, s)
	}
	return m, nil
}

type SeriesStats struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type BandItem struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// MetricDetail es el contenido del modal de una métrica. Los campos cargados dependen de la métrica.
type MetricDetail struct {
	Metric Metric `json:"metric"`
	Title  string `json:"title"`
	Unit   string `json:"unit,omitempty"`
	Note   string `json:"note,omitempty"`

	// Series de vitals: historia completa (no la recortada por rango).
	Stats  *SeriesStats    `json:"stats,omitempty"`
	Series []PointItem     `json:"series,omitempty"`
	Status clinical.Status `json:"status,omitempty"`

	Condition    *ConditionCard `json:"condition,omitempty"`
	Recovery     *BandItem      `json:"recovery,omitempty"`
	Inflammation *BandItem      `json:"inflammation,omitempty"`

	Cases    *CasesCard `json:"cases,omitempty"`
	CaseList []CaseItem `json:"case_list,omitempty"`

	LastVisit          *time.Time `json:"last_visit,omitempty"`
	NextVisit          *time.Time `json:"next_visit,omitempty"`
	DaysSinceLastVisit *int       `json:"days_since_last_visit,omitempty"`
	DaysUntilNextVisit *int       `json:"days_until_next_visit,omitempty"`
}

// MetricDetail arma el detalle sin abrir la vista (útil para el modal y el CLI).
func (s *Session) MetricDetail(ctx context.Context, metric string) (MetricDetail, error) {
	m, err := ParseMetric(metric)
	if err != nil {
		return MetricDetail{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loadLocked(ctx)
	if err != nil {
		return MetricDetail{}, err
	}
	return metricDetail(m, snap, s.now()), nil
}

func metricDetail(m Metric, snap snapshot, now time.Time) MetricDetail {
	info := metrics[m]
	d := MetricDetail{Metric: m, Title: info.title, Unit: info.unit, Note: info.note}

	if info.key != "" {
		points := vitals.Series(snap.vitals, info.key)
		d.Series = toPointItems(points)
		d.Stats = stats(points)
		if m == MetricRecoveryScore && snap.latest != nil {
			d.Status = clinical.ScoreToStatus(snap.latest.RecoveryScore)
		}
		return d
	}

	cards := summaryCards(snap)
	switch m {
	case MetricCurrentCondition:
		d.Condition = &cards.Condition
		d.Cases = &cards.Cases
		if snap.latest != nil {
			d.Recovery = &BandItem{Value: snap.latest.RecoveryScore, Text: condition.RecoveryBand(snap.latest.RecoveryScore)}
			d.Inflammation = &BandItem{Value: snap.latest.InflammationIndex, Text: condition.InflammationBand(snap.latest.InflammationIndex)}
		}
	case MetricActiveCases:
		d.Cases = &cards.Cases
		d.CaseList = caseItems(snap.cases)
	case MetricVisits:
		d.LastVisit, d.NextVisit = cards.LastVisit, cards.NextVisit
		if d.LastVisit != nil {
			n := wholeDays(now.Sub(*d.LastVisit))
			d.DaysSinceLastVisit = &n
		}
		if d.NextVisit != nil {
			n := wholeDays(d.NextVisit.Sub(now))
			d.DaysUntilNextVisit = &n
		}
	}
	return d
}

func caseItems(items []cases.Case) []CaseItem {
	out := make([]CaseItem, 0, len(items))
	for _, c := range items {
		out = append(out, toCaseItem(c))
	}
	return out
}

// stats devuelve nil con serie vacía ("No data").
func stats(points []vitals.Point) *SeriesStats {
	if len(points) == 0 {
		return nil
	}
	st := SeriesStats{
		Current: points[len(points)-1].Value,
		Min:     points[0].Value,
		Max:     points[0].Value,
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
		st.Min = min(st.Min, p.Value)
		st.Max = max(st.Max, p.Value)
	}
	st.Average = sum / float64(len(points))
	return &st
}

func wholeDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}
