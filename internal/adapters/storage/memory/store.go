package memory

import (
	"equine-vet-dashboard/internal/adapters/storage/seed"
	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
)

// Store agrupa los repos de una sesión. Cada sesión tiene el suyo, todos sobre el
// mismo Dataset base (que se comparte pero no se modifica).
type Store struct {
	Horses   horses.Repository
	Vitals   vitals.Repository
	History  history.Repository
	Cases    cases.Repository
	Alerts   alerts.Repository
	Upcoming schedule.Repository
}

func NewStore(ds seed.Dataset) *Store {
	return &Store{
		Horses:   NewHorseRepo(ds.Horses),
		Vitals:   NewVitalsRepo(ds.Vitals),
		History:  NewHistoryRepo(ds.History),
		Cases:    NewCaseRepo(ds.Cases),
		Alerts:   NewAlertRepo(ds.Alerts),
		Upcoming: NewScheduleRepo(ds.Upcoming),
	}
}
