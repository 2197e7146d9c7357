package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/injuries"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
	"equine-vet-dashboard/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ViewKind es la vista secundaria (drawer/modal) abierta sobre el dashboard.
// @Enum case, timelineEvent, alert, metric, addData
type ViewKind string

const (
	ViewCase          ViewKind = "case"
	ViewTimelineEvent ViewKind = "timelineEvent"
	ViewAlert         ViewKind = "alert"
	ViewMetric        ViewKind = "metric"
	ViewAddData       ViewKind = "addData"
)

type OpenView struct {
	Kind ViewKind `json:"kind"`
	ID   string   `json:"id,omitempty"`
}

// State es la foto de las variables de selección de la sesión.
type State struct {
	SessionID    string            `json:"session_id"`
	HorseID      string            `json:"horse_id"`
	Range        vitals.Range      `json:"range"`
	Window       vitals.WindowMode `json:"window"`
	View         *OpenView         `json:"view,omitempty"`
	Acknowledged []string          `json:"acknowledged"`
}

// services de una sesión, todos sobre el mismo memory.Store.
type services struct {
	horses   *horses.Service
	vitals   *vitals.Service
	history  *history.Service
	cases    *cases.Service
	alerts   *alerts.Service
	upcoming *schedule.Service
}

// Session es el estado de un dashboard abierto. Lo agregado vive solo acá.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	horseID string
	rng     vitals.Range
	window  vitals.WindowMode
	view    *OpenView
	acks    *schedule.Acknowledgments

	svc        services
	mapper     *injuries.Mapper
	activeDays int
	now        func() time.Time
	log        logger.Logger
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	st := State{
		SessionID:    s.ID,
		HorseID:      s.horseID,
		Range:        s.rng,
		Window:       s.window,
		Acknowledged: s.acks.IDs(),
	}
	if s.view != nil {
		v := *s.view
		st.View = &v
	}
	return st
}

// SelectHorse cambia el caballo. No toca rango, vista ni acknowledgments.
func (s *Session) SelectHorse(ctx context.Context, horseID string) error {
	h, err := s.svc.horses.GetByID(ctx, horseID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.horseID = h.ID
	s.log.Debug("horse selected", map[string]any{"horse_id": h.ID})
	return nil
}

// SetRangeWindow valida ambos y los aplica juntos. Un window vacío deja el modo actual.
func (s *Session) SetRangeWindow(r vitals.Range, m vitals.WindowMode) error {
	r, err := vitals.ParseRange(string(r))
	if err != nil {
		return err
	}
	keep := strings.TrimSpace(string(m)) == ""
	if !keep {
		if m, err = vitals.ParseWindowMode(string(m)); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng = r
	if !keep {
		s.window = m
	}
	return nil
}

// OpenView abre una vista secundaria. Hay como mucho una: abrir otra reemplaza la actual.
// El destino tiene que existir para el caballo seleccionado.
func (s *Session) OpenView(ctx context.Context, kind ViewKind, id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case ViewCase:
		if _, ok, err := s.svc.cases.GetByID(ctx, s.horseID, id); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("case %q: %w", id, ErrNotFound)
		}
	case ViewTimelineEvent:
		if _, ok, err := s.svc.history.GetByID(ctx, s.horseID, id); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("medical event %q: %w", id, ErrNotFound)
		}
	case ViewAlert:
		if _, err := s.svc.alerts.GetByID(ctx, s.horseID, id); err != nil {
			return err
		}
	case ViewMetric:
		if _, err := ParseMetric(id); err != nil {
			return err
		}
	case ViewAddData:
		id = ""
	default:
		return fmt.Errorf("%w: unknown view %q", ErrInvalidInput, kind)
	}

	s.view = &OpenView{Kind: kind, ID: id}
	return nil
}

func (s *Session) CloseView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = nil
}

// ToggleAcknowledge marca/desmarca un evento próximo. Devuelve el estado resultante.
func (s *Session) ToggleAcknowledge(eventID string) (bool, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return false, fmt.Errorf("%w: event id required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.acks.Toggle(eventID), nil
}

// Altas: siempre sobre el caballo seleccionado.

func (s *Session) AddMedicalEvent(ctx context.Context, in history.RecordInput) (history.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.svc.history.Record(ctx, s.horseID, in)
	if err != nil {
		return history.Event{}, err
	}
	s.logRecord(RecordMedicalEvent, e.ID)
	return e, nil
}

func (s *Session) OpenCase(ctx context.Context, in cases.OpenInput) (cases.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.svc.cases.Open(ctx, s.horseID, in)
	if err != nil {
		return cases.Case{}, err
	}
	s.logRecord(RecordActiveCase, c.ID)
	return c, nil
}

func (s *Session) RecordVitals(ctx context.Context, in vitals.RecordInput) (vitals.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.svc.vitals.Record(ctx, s.horseID, in)
	if err != nil {
		return vitals.Reading{}, err
	}
	s.logRecord(RecordVitals, r.Date.Format(dateLayout))
	return r, nil
}

func (s *Session) ScheduleEvent(ctx context.Context, in schedule.RecordInput) (schedule.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.svc.upcoming.Record(ctx, s.horseID, in)
	if err != nil {
		return schedule.Event{}, err
	}
	s.logRecord(RecordUpcomingEvent, e.ID)
	return e, nil
}

func (s *Session) logRecord(kind RecordKind, id string) {
	s.log.Info("record added", map[string]any{
		"kind":     string(kind),
		"horse_id": s.horseID,
		"id":       id,
	})
}
