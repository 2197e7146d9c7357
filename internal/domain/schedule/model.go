package schedule

import "time"

type Kind string

const (
	KindVaccination  Kind = "Vaccination"
	KindFollowUp     Kind = "Follow-up"
	KindTreatmentEnd Kind = "Treatment End"
	KindLabReview    Kind = "Lab Review"
)

func (k Kind) Valid() bool {
	switch k {
	case KindVaccination, KindFollowUp, KindTreatmentEnd, KindLabReview:
		return true
	}
	return false
}

// Priority usa los mismos valores que clinical.Severity pero es otro concepto.
// @Enum low, med, high
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMed, PriorityHigh:
		return true
	}
	return false
}

// Event es una acción futura agendada. El acuse (acknowledged) NO vive acá,
// se guarda aparte en Acknowledgments.
type Event struct {
	ID      string
	HorseID string

	DateTime time.Time
	Kind     Kind
	Title    string
	Priority Priority
}
