package history

import "time"

// DefaultActiveDays: un evento sigue "Active" hasta 14 días después de su fecha (o de su fin).
const DefaultActiveDays = 14

// PhaseOf clasifica el evento en Active/Historical respecto de now.
// Sin EndDate se considera en curso y se mide desde Date.
func PhaseOf(e Event, now time.Time, activeDays int) Phase {
	if activeDays <= 0 {
		activeDays = DefaultActiveDays
	}

	ref := e.Date
	if e.EndDate != nil {
		ref = *e.EndDate
	}

	days := int(now.Sub(ref).Hours() / 24)
	if days <= activeDays {
		return PhaseActive
	}
	return PhaseHistorical
}
