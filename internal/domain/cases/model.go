package cases

import "time"

// Status del caso. Se cambia a mano desde el formulario, nunca se calcula.
// @Enum active, monitoring, resolved
type Status string

const (
	StatusActive     Status = "active"
	StatusMonitoring Status = "monitoring"
	StatusResolved   Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMonitoring, StatusResolved:
		return true
	}
	return false
}

type Medication struct {
	Name      string
	Dose      string // texto libre: "2g", "As directed"
	Frequency string // "BID", "Daily"
}

// Case es un diagnóstico abierto bajo tratamiento o monitoreo.
type Case struct {
	ID      string
	HorseID string

	Diagnosis     string
	OnsetDate     time.Time
	Status        Status
	TreatmentPlan string
	Meds          []Medication

	NextReviewDate time.Time
}

func (c Case) Clone() Case {
	if c.Meds != nil {
		c.Meds = append([]Medication(nil), c.Meds...)
	}
	return c
}
