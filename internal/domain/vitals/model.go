package vitals

import "time"

// Reading es un set de mediciones de un día para un caballo.
type Reading struct {
	HorseID string
	Date    time.Time // solo fecha (UTC, 00:00)

	RestingHR         float64 // lpm
	TempC             float64
	RespRate          float64 // rpm
	RecoveryScore     float64 // 0-100
	InflammationIndex float64 // 0-10
	SymmetryPct       float64 // 0-100
}

// MetricKey identifica una métrica de Reading (coincide con las keys de alertas).
type MetricKey string

const (
	MetricRestingHR         MetricKey = "restingHR"
	MetricTempC             MetricKey = "tempC"
	MetricRespRate          MetricKey = "respRate"
	MetricRecoveryScore     MetricKey = "recoveryScore"
	MetricInflammationIndex MetricKey = "inflammationIndex"
	MetricSymmetryPct       MetricKey = "symmetryPct"
)

// Value devuelve el valor de la métrica; false si la key no existe.
func (r Reading) Value(k MetricKey) (float64, bool) {
	switch k {
	case MetricRestingHR:
		return r.RestingHR, true
	case MetricTempC:
		return r.TempC, true
	case MetricRespRate:
		return r.RespRate, true
	case MetricRecoveryScore:
		return r.RecoveryScore, true
	case MetricInflammationIndex:
		return r.InflammationIndex, true
	case MetricSymmetryPct:
		return r.SymmetryPct, true
	default:
		return 0, false
	}
}

// Point es un valor fechado de una serie.
type Point struct {
	Date  time.Time
	Value float64
}

// Series proyecta una métrica sobre las lecturas, manteniendo el orden.
func Series(readings []Reading, k MetricKey) []Point {
	out := make([]Point, 0, len(readings))
	for _, r := range readings {
		v, ok := r.Value(k)
		if !ok {
			continue
		}
		out = append(out, Point{Date: r.Date, Value: v})
	}
	return out
}
