package dashboard

import (
	"context"
	"sync"
	"time"

	"equine-vet-dashboard/internal/adapters/storage/memory"
	"equine-vet-dashboard/internal/adapters/storage/seed"
	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/injuries"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
	"equine-vet-dashboard/internal/platform/config"
	"equine-vet-dashboard/internal/platform/logger"

	"github.com/google/uuid"
)

type Options struct {
	// Now default time.Now
	Now func() time.Time

	InjuryLookbackDays int
	ActiveEventDays    int

	// Locator para el mapa de lesiones (nil = KeywordLocator).
	Locator injuries.Locator

	// IdleTTL: sesiones sin uso por más de esto se descartan al buscarlas. 0 = nunca.
	IdleTTL time.Duration
	// IdleClock mide la inactividad. Default time.Now; no usa Now, que puede estar fijo.
	IdleClock func() time.Time

	Logger logger.Logger
}

type entry struct {
	s        *Session
	lastSeen time.Time
}

// Manager crea y busca sesiones. Todas comparten el Dataset base.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry

	dataset seed.Dataset
	opts    Options
	log     logger.Logger
}

func NewManager(ds seed.Dataset, opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ActiveEventDays <= 0 {
		opts.ActiveEventDays = history.DefaultActiveDays
	}
	if opts.IdleClock == nil {
		opts.IdleClock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Manager{
		sessions: make(map[string]*entry),
		dataset:  ds,
		opts:     opts,
		log:      opts.Logger,
	}
}

// NewManagerFromConfig arma el dataset con el reloj y las ventanas de la config.
func NewManagerFromConfig(cfg config.Config, log logger.Logger) *Manager {
	now := cfg.Clock()
	ds := seed.Build(now(), cfg.VitalsHistoryDays)
	return NewManager(ds, Options{
		Now:                now,
		InjuryLookbackDays: cfg.InjuryLookbackDays,
		ActiveEventDays:    cfg.ActiveEventDays,
		IdleTTL:            cfg.SessionIdleTTL(),
		Logger:             log,
	})
}

// Horses es el listado estático (no depende de ninguna sesión).
func (m *Manager) Horses() horses.Repository {
	return memory.NewHorseRepo(m.dataset.Horses)
}

// Create abre una sesión con el primer caballo, rango 30d y modo tail.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	store := memory.NewStore(m.dataset)
	svc := services{
		horses:   horses.NewService(store.Horses),
		vitals:   vitals.NewService(store.Vitals),
		history:  history.NewService(store.History),
		cases:    cases.NewService(store.Cases),
		alerts:   alerts.NewService(store.Alerts),
		upcoming: schedule.NewService(store.Upcoming),
	}

	first, err := svc.horses.Default(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s := &Session{
		ID:         id,
		CreatedAt:  m.opts.Now(),
		horseID:    first.ID,
		rng:        vitals.DefaultRange,
		window:     vitals.WindowTail,
		acks:       schedule.NewAcknowledgments(),
		svc:        svc,
		mapper:     injuries.NewMapper(m.opts.Locator, m.opts.InjuryLookbackDays, m.opts.Now),
		activeDays: m.opts.ActiveEventDays,
		now:        m.opts.Now,
		log:        m.log.With(map[string]any{"session_id": id}),
	}

	m.mu.Lock()
	m.sweepLocked()
	m.sessions[id] = &entry{s: s, lastSeen: m.opts.IdleClock()}
	m.mu.Unlock()

	m.log.Info("session created", map[string]any{"session_id": id, "horse_id": first.ID})
	return s, nil
}

// Get busca la sesión y renueva su actividad. Una sesión vencida se descarta.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	now := m.opts.IdleClock()
	if m.expired(e, now) {
		m.dropLocked(id, "expired")
		return nil, false
	}
	e.lastSeen = now
	return e.s, true
}

func (m *Manager) Exists(id string) bool {
	_, ok := m.Get(id)
	return ok
}

// Close descarta la sesión y todo lo agregado en ella. Devuelve false si no existía.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	m.dropLocked(id, "closed")
	return true
}

func (m *Manager) expired(e *entry, now time.Time) bool {
	return m.opts.IdleTTL > 0 && now.Sub(e.lastSeen) > m.opts.IdleTTL
}

// sweepLocked se corre en cada Create, así las sesiones abandonadas no se acumulan.
func (m *Manager) sweepLocked() {
	if m.opts.IdleTTL <= 0 {
		return
	}
	now := m.opts.IdleClock()
	for id, e := range m.sessions {
		if m.expired(e, now) {
			m.dropLocked(id, "expired")
		}
	}
}

func (m *Manager) dropLocked(id, reason string) {
	delete(m.sessions, id)
	m.log.Info("session "+reason, map[string]any{"session_id": id})
}
