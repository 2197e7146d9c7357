package history

type Category string

const (
	CategoryInjury      Category = "Injury"
	CategoryTreatment   Category = "Treatment"
	CategoryMedication  Category = "Medication"
	CategoryVaccination Category = "Vaccination"
	CategoryCheckup     Category = "Checkup"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryInjury, CategoryTreatment, CategoryMedication, CategoryVaccination, CategoryCheckup:
		return true
	}
	return false
}

type BodySystem string

const (
	BodySystemMusculoskeletal BodySystem = "Musculoskeletal"
	BodySystemRespiratory     BodySystem = "Respiratory"
	BodySystemDigestive       BodySystem = "Digestive"
	BodySystemGeneral         BodySystem = "General"
)

func (b BodySystem) Valid() bool {
	switch b {
	case BodySystemMusculoskeletal, BodySystemRespiratory, BodySystemDigestive, BodySystemGeneral:
		return true
	}
	return false
}

// Phase indica si el evento sigue vigente en el timeline.
type Phase string

const (
	PhaseActive     Phase = "Active"
	PhaseHistorical Phase = "Historical"
)
