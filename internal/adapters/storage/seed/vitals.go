package seed

import (
	"math"
	"strconv"
	"time"

	"equine-vet-dashboard/internal/domain/vitals"
)

// GenerateVitals arma days+1 lecturas diarias (de now-days hasta now), deterministas
// por caballo y día: seed = horseID*1000 + i.
func GenerateVitals(horseID string, days int, now time.Time) []vitals.Reading {
	id, _ := strconv.Atoi(horseID)
	today := dayOf(now)

	out := make([]vitals.Reading, 0, days+1)
	for i := days; i >= 0; i-- {
		seed := id*1000 + i
		fi := float64(i)

		out = append(out, vitals.Reading{
			HorseID:           horseID,
			Date:              today.AddDate(0, 0, -i),
			RestingHR:         float64(35+seed%10) + math.Sin(fi/7)*3,
			TempC:             37.2 + float64(seed%10)*0.1 + math.Cos(fi/5)*0.3,
			RespRate:          float64(12 + seed%6),
			RecoveryScore:     clamp(float64(70+seed%20)+math.Sin(fi/10)*15, 0, 100),
			InflammationIndex: clamp(2+float64(seed%5)*0.5+math.Cos(fi/8)*1.5, 0, 10),
			SymmetryPct:       float64(85 + seed%10),
		})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
