package seed

import (
	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
)

const (
	drMitchell = "Dr. Sarah Mitchell"
	drWilson   = "Dr. James Wilson"
)

func fixtureHorses() []horses.Horse {
	return []horses.Horse{
		{ID: "1", Name: "Thunder", Age: 8, Discipline: "Show Jumping", StableLocation: "Barn A, Stall 12"},
		{ID: "2", Name: "Aurora", Age: 12, Discipline: "Dressage", StableLocation: "Barn B, Stall 5"},
		{ID: "3", Name: "Phoenix", Age: 6, Discipline: "Eventing", StableLocation: "Barn A, Stall 8"},
	}
}

func fixtureHistory() map[string][]history.Event {
	return map[string][]history.Event{
		"1": {
			{
				ID: "m1-1", HorseID: "1", Date: date("2024-01-15"),
				Category: history.CategoryInjury, BodySystem: history.BodySystemMusculoskeletal, Severity: clinical.SeverityHigh,
				Title:     "Tendon Strain - Right Foreleg",
				Notes:     "Moderate strain detected during post-exercise examination. Swelling noted around fetlock. Recommended rest and cold therapy.",
				Clinician: drMitchell,
				Attachments: []history.Attachment{
					{Label: "Ultrasound Report", URL: "/attachments/us-2024-01-15.pdf"},
					{Label: "X-Ray Image", URL: "/attachments/xray-2024-01-15.jpg"},
				},
			},
			{
				ID: "m1-2", HorseID: "1", Date: date("2024-01-10"),
				Category: history.CategoryTreatment, BodySystem: history.BodySystemMusculoskeletal, Severity: clinical.SeverityLow,
				Title:     "Physical Therapy Session",
				Notes:     "Therapeutic exercises performed. Good response to treatment. Range of motion improving.",
				Clinician: drMitchell,
			},
			{
				ID: "m1-3", HorseID: "1", Date: date("2024-01-05"),
				Category: history.CategoryMedication, BodySystem: history.BodySystemGeneral, Severity: clinical.SeverityMed,
				Title:     "Anti-inflammatory Course",
				Notes:     "Prescribed phenylbutazone 2g BID for 7 days. Monitor for GI upset.",
				Clinician: drMitchell,
			},
			{
				ID: "m1-4", HorseID: "1", Date: date("2023-12-20"),
				Category: history.CategoryVaccination, BodySystem: history.BodySystemRespiratory, Severity: clinical.SeverityLow,
				Title:     "Annual Flu/Rhino Vaccination",
				Notes:     "Routine annual vaccination administered. No adverse reactions observed.",
				Clinician: drWilson,
			},
			{
				ID: "m1-5", HorseID: "1", Date: date("2023-12-10"),
				Category: history.CategoryCheckup, BodySystem: history.BodySystemGeneral, Severity: clinical.SeverityLow,
				Title:     "Routine Health Examination",
				Notes:     "Comprehensive health check. All systems normal. Weight stable, good body condition score.",
				Clinician: drMitchell,
			},
		},
		"2": {
			{
				ID: "m2-1", HorseID: "2", Date: date("2026-01-10"),
				Category: history.CategoryInjury, BodySystem: history.BodySystemMusculoskeletal, Severity: clinical.SeverityHigh,
				Title:     "Shoulder Strain - Left Shoulder",
				Notes:     "Moderate to severe strain detected in left shoulder during training session. Horse showed signs of discomfort and reduced range of motion. Swelling noted around shoulder joint. Immediate rest and cold therapy recommended.",
				Clinician: drMitchell,
				Attachments: []history.Attachment{
					{Label: "Ultrasound Report", URL: "/attachments/us-aurora-2026-01-10.pdf"},
					{Label: "X-Ray Image", URL: "/attachments/xray-aurora-2026-01-10.jpg"},
				},
			},
			{
				ID: "m2-2", HorseID: "2", Date: date("2024-01-12"),
				Category: history.CategoryTreatment, BodySystem: history.BodySystemRespiratory, Severity: clinical.SeverityMed,
				Title:     "Respiratory Therapy",
				Notes:     "Nebulization treatment for mild respiratory congestion. Response good.",
				Clinician: drWilson,
			},
			{
				ID: "m2-3", HorseID: "2", Date: date("2024-01-01"),
				Category: history.CategoryMedication, BodySystem: history.BodySystemRespiratory, Severity: clinical.SeverityMed,
				Title:     "Antibiotic Course",
				Notes:     "Trimethoprim-sulfa 30mg/kg BID for 10 days. Monitor appetite.",
				Clinician: drWilson,
			},
			{
				ID: "m2-4", HorseID: "2", Date: date("2023-12-15"),
				Category: history.CategoryCheckup, BodySystem: history.BodySystemGeneral, Severity: clinical.SeverityLow,
				Title:     "Dental Examination",
				Notes:     "Routine dental float. Minor sharp points removed. No issues.",
				Clinician: drMitchell,
			},
		},
		"3": {
			{
				ID: "m3-1", HorseID: "3", Date: date("2024-01-18"),
				Category: history.CategoryInjury, BodySystem: history.BodySystemMusculoskeletal, Severity: clinical.SeverityLow,
				Title:     "Superficial Wound - Left Hind",
				Notes:     "Small laceration cleaned and dressed. Healing well.",
				Clinician: drMitchell,
			},
			{
				ID: "m3-2", HorseID: "3", Date: date("2024-01-08"),
				Category: history.CategoryCheckup, BodySystem: history.BodySystemGeneral, Severity: clinical.SeverityLow,
				Title:     "Pre-Competition Examination",
				Notes:     "Full pre-competition check. Cleared for eventing competition.",
				Clinician: drWilson,
			},
		},
	}
}

func fixtureCases() map[string][]cases.Case {
	return map[string][]cases.Case{
		"1": {
			{
				ID: "c1-1", HorseID: "1",
				Diagnosis:     "Tendon Strain - Right Foreleg",
				OnsetDate:     date("2024-01-15"),
				Status:        cases.StatusActive,
				TreatmentPlan: "Rest for 4 weeks, cold therapy 3x daily, gradual return to exercise under supervision. Monitor for any signs of worsening.",
				Meds: []cases.Medication{
					{Name: "Phenylbutazone", Dose: "2g", Frequency: "BID"},
					{Name: "Joint Supplement", Dose: "As directed", Frequency: "Daily"},
				},
				NextReviewDate: date("2024-02-01"),
			},
		},
		"2": {
			{
				ID: "c2-1", HorseID: "2",
				Diagnosis:     "Shoulder Strain - Left Shoulder",
				OnsetDate:     date("2026-01-10"),
				Status:        cases.StatusActive,
				TreatmentPlan: "Strict rest for 6 weeks. Cold therapy 3x daily for first week, then alternating heat/cold. Gradual return to exercise under supervision. Monitor for any signs of worsening or lameness.",
				Meds: []cases.Medication{
					{Name: "Phenylbutazone", Dose: "2g", Frequency: "BID"},
					{Name: "Muscle Relaxant", Dose: "As directed", Frequency: "Daily"},
					{Name: "Joint Supplement", Dose: "As directed", Frequency: "Daily"},
				},
				NextReviewDate: date("2026-01-24"),
			},
			{
				ID: "c2-2", HorseID: "2",
				Diagnosis:     "Mild Respiratory Congestion",
				OnsetDate:     date("2024-01-10"),
				Status:        cases.StatusMonitoring,
				TreatmentPlan: "Continue nebulization therapy. Monitor respiratory rate and effort. Reassess in 1 week.",
				Meds: []cases.Medication{
					{Name: "Trimethoprim-Sulfa", Dose: "30mg/kg", Frequency: "BID"},
				},
				NextReviewDate: date("2024-01-25"),
			},
		},
		"3": {
			{
				ID: "c3-1", HorseID: "3",
				Diagnosis:     "Superficial Wound - Left Hind",
				OnsetDate:     date("2024-01-18"),
				Status:        cases.StatusMonitoring,
				TreatmentPlan: "Keep wound clean and dry. Change dressing daily. Monitor for infection signs.",
				Meds: []cases.Medication{
					{Name: "Topical Antibiotic", Dose: "Apply thin layer", Frequency: "BID"},
				},
				NextReviewDate: date("2024-01-22"),
			},
		},
	}
}

// alertHistoryPoints: las alertas muestran las últimas 14 lecturas de su métrica.
const alertHistoryPoints = 14

func fixtureAlerts(readings map[string][]vitals.Reading) map[string][]alerts.Alert {
	hist := func(horseID string, k vitals.MetricKey) []vitals.Point {
		rs := readings[horseID]
		if len(rs) > alertHistoryPoints {
			rs = rs[len(rs)-alertHistoryPoints:]
		}
		return vitals.Series(rs, k)
	}

	return map[string][]alerts.Alert{
		"1": {
			{
				ID: "a1-1", HorseID: "1", Severity: clinical.SeverityHigh,
				Title:       "Recovery Score Declining",
				Description: "Recovery score has decreased by 15 points over the past 7 days, indicating potential concern.",
				MetricKey:   vitals.MetricRecoveryScore,
				History:     hist("1", vitals.MetricRecoveryScore),
				RecommendedNextSteps: []string{
					"Review recent exercise intensity",
					"Assess for signs of overexertion",
					"Consider additional rest days",
					"Schedule follow-up examination",
				},
			},
			{
				ID: "a1-2", HorseID: "1", Severity: clinical.SeverityMed,
				Title:       "Inflammation Index Elevated",
				Description: "Inflammation index has been above normal range for 3 consecutive readings.",
				MetricKey:   vitals.MetricInflammationIndex,
				History:     hist("1", vitals.MetricInflammationIndex),
				RecommendedNextSteps: []string{
					"Continue current anti-inflammatory protocol",
					"Monitor for clinical signs of inflammation",
					"Reassess in 48 hours",
				},
			},
		},
		"2": {
			{
				ID: "a2-1", HorseID: "2", Severity: clinical.SeverityMed,
				Title:       "Respiratory Rate Slightly Elevated",
				Description: "Resting respiratory rate has been consistently above baseline for the past week.",
				MetricKey:   vitals.MetricRespRate,
				History:     hist("2", vitals.MetricRespRate),
				RecommendedNextSteps: []string{
					"Continue respiratory therapy",
					"Monitor for any discharge or coughing",
					"Ensure stable ventilation is adequate",
				},
			},
		},
		"3": {
			{
				ID: "a3-1", HorseID: "3", Severity: clinical.SeverityLow,
				Title:       "Temperature Fluctuation",
				Description: "Minor temperature variations noted, within normal range but worth monitoring.",
				MetricKey:   vitals.MetricTempC,
				History:     hist("3", vitals.MetricTempC),
				RecommendedNextSteps: []string{
					"Continue monitoring daily",
					"Ensure adequate hydration",
					"Report if temperature exceeds 38.5°C",
				},
			},
		},
	}
}

func fixtureUpcoming() map[string][]schedule.Event {
	return map[string][]schedule.Event{
		"1": {
			{ID: "u1-1", HorseID: "1", DateTime: dateTime("2024-02-01T10:00:00"), Kind: schedule.KindFollowUp, Title: "Tendon Strain Re-evaluation", Priority: schedule.PriorityHigh},
			{ID: "u1-2", HorseID: "1", DateTime: dateTime("2024-02-15T14:00:00"), Kind: schedule.KindTreatmentEnd, Title: "Complete Anti-inflammatory Course", Priority: schedule.PriorityMed},
			{ID: "u1-3", HorseID: "1", DateTime: dateTime("2024-03-01T09:00:00"), Kind: schedule.KindLabReview, Title: "Review Blood Work Results", Priority: schedule.PriorityLow},
		},
		"2": {
			{ID: "u2-1", HorseID: "2", DateTime: dateTime("2026-01-24T10:00:00"), Kind: schedule.KindFollowUp, Title: "Shoulder Strain Re-evaluation", Priority: schedule.PriorityHigh},
			{ID: "u2-2", HorseID: "2", DateTime: dateTime("2024-01-25T11:00:00"), Kind: schedule.KindFollowUp, Title: "Respiratory Condition Assessment", Priority: schedule.PriorityMed},
			{ID: "u2-3", HorseID: "2", DateTime: dateTime("2024-02-10T10:00:00"), Kind: schedule.KindVaccination, Title: "Annual Vaccination Due", Priority: schedule.PriorityMed},
		},
		"3": {
			{ID: "u3-1", HorseID: "3", DateTime: dateTime("2024-01-22T15:00:00"), Kind: schedule.KindFollowUp, Title: "Wound Healing Check", Priority: schedule.PriorityMed},
		},
	}
}
