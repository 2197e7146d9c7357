package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
	"equine-vet-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, m *Manager) {
	r.Post("/sessions", createSessionHandler(m))

	// Todo lo de /dashboard exige X-Session-ID
	r.Route("/dashboard", func(dr chi.Router) {
		dr.Get("/", getStateHandler(m))
		dr.Delete("/", closeSessionHandler(m))
		dr.Get("/view", getViewHandler(m))

		dr.Put("/horse", selectHorseHandler(m))
		dr.Put("/range", setRangeHandler(m))

		dr.Post("/views", openViewHandler(m))
		dr.Delete("/views", closeViewHandler(m))

		dr.Post("/upcoming/{eventID}/acknowledge", toggleAcknowledgeHandler(m))
		dr.Post("/records/{kind}", addRecordHandler(m))

		dr.Get("/metrics/{metric}", metricDetailHandler(m))
	})
}

type selectHorseRequest struct {
	HorseID string `json:"horse_id"`
}

type setRangeRequest struct {
	Range  string `json:"range"`
	Window string `json:"window"` // tail|calendar, opcional
}

type openViewRequest struct {
	Kind ViewKind `json:"kind"`
	ID   string   `json:"id"`
}

type acknowledgeResponse struct {
	ID           string `json:"id"`
	Acknowledged bool   `json:"acknowledged"`
}

type attachmentRequest struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type medicalEventRequest struct {
	Date        string              `json:"date"`     // YYYY-MM-DD
	EndDate     string              `json:"end_date"` // YYYY-MM-DD opcional
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	BodySystem  string              `json:"body_system"`
	Severity    string              `json:"severity"`
	Notes       string              `json:"notes"`
	Clinician   string              `json:"clinician"`
	Attachments []attachmentRequest `json:"attachments"`
}

type medicationRequest struct {
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Frequency string `json:"frequency"`
}

type activeCaseRequest struct {
	Diagnosis      string              `json:"diagnosis"`
	OnsetDate      string              `json:"onset_date"`
	Status         string              `json:"status"`
	TreatmentPlan  string              `json:"treatment_plan"`
	Meds           []medicationRequest `json:"meds"`
	NextReviewDate string              `json:"next_review_date"`
}

type vitalsRequest struct {
	Date              string  `json:"date"`
	RestingHR         float64 `json:"resting_hr"`
	TempC             float64 `json:"temp_c"`
	RespRate          float64 `json:"resp_rate"`
	RecoveryScore     float64 `json:"recovery_score"`
	InflammationIndex float64 `json:"inflammation_index"`
	SymmetryPct       float64 `json:"symmetry_pct"`
}

type upcomingEventRequest struct {
	DateTime string `json:"date_time"` // RFC3339 o YYYY-MM-DDTHH:MM
	Type     string `json:"type"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// createSessionHandler godoc
// @Summary Abrir sesión de dashboard
// @Description Crea una sesión con el primer caballo, rango 30d y sin vistas abiertas. Lo agregado en la sesión no se persiste.
// @Tags sessions
// @Produce json
// @Success 201 {object} State
// @Failure 500 {string} string "internal error"
// @Router /sessions [post]
func createSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Create(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, s.State())
	}
}

// getStateHandler godoc
// @Summary Estado de la sesión
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Success 200 {object} State
// @Failure 401 {string} string "session required"
// @Router /dashboard [get]
func getStateHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, s.State())
	}
}

// closeSessionHandler godoc
// @Summary Cerrar sesión de dashboard
// @Description Descarta la sesión y todo lo agregado en ella. Después el ID responde 401.
// @Tags sessions
// @Param X-Session-ID header string true "ID de sesión"
// @Success 204
// @Failure 401 {string} string "session required"
// @Router /dashboard [delete]
func closeSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		if !m.Close(s.ID) {
			http.Error(w, "session required", http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// getViewHandler godoc
// @Summary Dashboard compuesto
// @Description Tarjetas de resumen, casos, timeline, vitals recortadas por rango, mapa de lesiones, alertas, próximos eventos y el detalle de la vista abierta.
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Success 200 {object} View
// @Failure 401 {string} string "session required"
// @Router /dashboard/view [get]
func getViewHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		v, err := s.Compose(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// selectHorseHandler godoc
// @Summary Seleccionar caballo
// @Tags dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Param body body selectHorseRequest true "Caballo"
// @Success 200 {object} State
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "horse not found"
// @Router /dashboard/horse [put]
func selectHorseHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		var req selectHorseRequest
		if !decode(w, r, &req) {
			return
		}
		if err := s.SelectHorse(r.Context(), req.HorseID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.State())
	}
}

// setRangeHandler godoc
// @Summary Cambiar rango de vitals
// @Description range: 7d, 30d o 6m. window: tail (últimas N lecturas, default) o calendar (últimos N días).
// @Tags dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Param body body setRangeRequest true "Rango"
// @Success 200 {object} State
// @Failure 400 {string} string "range must be one of 7d, 30d, 6m"
// @Router /dashboard/range [put]
func setRangeHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		var req setRangeRequest
		if !decode(w, r, &req) {
			return
		}
		if err := s.SetRangeWindow(vitals.Range(req.Range), vitals.WindowMode(req.Window)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.State())
	}
}

// openViewHandler godoc
// @Summary Abrir vista secundaria
// @Description Abre un drawer/modal. Hay como mucho una vista abierta; abrir otra la reemplaza.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Param body body openViewRequest true "Vista"
// @Success 200 {object} State
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "not found"
// @Router /dashboard/views [post]
func openViewHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		var req openViewRequest
		if !decode(w, r, &req) {
			return
		}
		if err := s.OpenView(r.Context(), req.Kind, req.ID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.State())
	}
}

// closeViewHandler godoc
// @Summary Cerrar vista secundaria
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Success 200 {object} State
// @Router /dashboard/views [delete]
func closeViewHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		s.CloseView()
		writeJSON(w, http.StatusOK, s.State())
	}
}

// toggleAcknowledgeHandler godoc
// @Summary Marcar/desmarcar evento próximo
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} acknowledgeResponse
// @Router /dashboard/upcoming/{eventID}/acknowledge [post]
func toggleAcknowledgeHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		id := chi.URLParam(r, "eventID")
		acked, err := s.ToggleAcknowledge(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, acknowledgeResponse{ID: strings.TrimSpace(id), Acknowledged: acked})
	}
}

// addRecordHandler godoc
// @Summary Agregar registro al caballo seleccionado
// @Description kind: medical-event, active-case, vitals o upcoming-event. El body depende del kind.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Param kind path string true "Tipo de registro"
// @Success 201 {object} TimelineItem "kind=medical-event"
// @Success 201 {object} CaseItem "kind=active-case"
// @Success 201 {object} VitalsItem "kind=vitals"
// @Success 201 {object} UpcomingItem "kind=upcoming-event"
// @Failure 400 {string} string "invalid input"
// @Router /dashboard/records/{kind} [post]
func addRecordHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		kind, err := ParseRecordKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, err)
			return
		}

		var out any
		switch kind {
		case RecordMedicalEvent:
			out, err = addMedicalEvent(w, r, s)
		case RecordActiveCase:
			out, err = addActiveCase(w, r, s)
		case RecordVitals:
			out, err = addVitals(w, r, s)
		case RecordUpcomingEvent:
			out, err = addUpcomingEvent(w, r, s)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		if out == nil {
			// decode ya respondió
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// metricDetailHandler godoc
// @Summary Detalle de métrica
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string true "ID de sesión"
// @Param metric path string true "Métrica"
// @Success 200 {object} MetricDetail
// @Failure 400 {string} string "unknown metric"
// @Router /dashboard/metrics/{metric} [get]
func metricDetailHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		d, err := s.MetricDetail(r.Context(), chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func addMedicalEvent(w http.ResponseWriter, r *http.Request, s *Session) (any, error) {
	var req medicalEventRequest
	if !decode(w, r, &req) {
		return nil, nil
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if strings.TrimSpace(req.EndDate) != "" {
		d, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		end = &d
	}
	atts := make([]history.Attachment, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		atts = append(atts, history.Attachment{Label: a.Label, URL: a.URL})
	}

	e, err := s.AddMedicalEvent(r.Context(), history.RecordInput{
		Date:        date,
		EndDate:     end,
		Category:    history.Category(strings.TrimSpace(req.Type)),
		Title:       req.Title,
		BodySystem:  history.BodySystem(strings.TrimSpace(req.BodySystem)),
		Severity:    clinical.Severity(req.Severity),
		Notes:       req.Notes,
		Clinician:   req.Clinician,
		Attachments: atts,
	})
	if err != nil {
		return nil, err
	}
	return s.toTimelineItem(e, s.now()), nil
}

func addActiveCase(w http.ResponseWriter, r *http.Request, s *Session) (any, error) {
	var req activeCaseRequest
	if !decode(w, r, &req) {
		return nil, nil
	}
	onset, err := parseDate("onset_date", req.OnsetDate)
	if err != nil {
		return nil, err
	}
	var review time.Time
	if strings.TrimSpace(req.NextReviewDate) != "" {
		if review, err = parseDate("next_review_date", req.NextReviewDate); err != nil {
			return nil, err
		}
	}
	meds := make([]cases.Medication, 0, len(req.Meds))
	for _, md := range req.Meds {
		meds = append(meds, cases.Medication{Name: md.Name, Dose: md.Dose, Frequency: md.Frequency})
	}

	c, err := s.OpenCase(r.Context(), cases.OpenInput{
		Diagnosis:      req.Diagnosis,
		OnsetDate:      onset,
		Status:         cases.Status(strings.TrimSpace(req.Status)),
		TreatmentPlan:  req.TreatmentPlan,
		Meds:           meds,
		NextReviewDate: review,
	})
	if err != nil {
		return nil, err
	}
	return toCaseItem(c), nil
}

func addVitals(w http.ResponseWriter, r *http.Request, s *Session) (any, error) {
	var req vitalsRequest
	if !decode(w, r, &req) {
		return nil, nil
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	v, err := s.RecordVitals(r.Context(), vitals.RecordInput{
		Date:              date,
		RestingHR:         req.RestingHR,
		TempC:             req.TempC,
		RespRate:          req.RespRate,
		RecoveryScore:     req.RecoveryScore,
		InflammationIndex: req.InflammationIndex,
		SymmetryPct:       req.SymmetryPct,
	})
	if err != nil {
		return nil, err
	}
	return toVitalsItem(v), nil
}

func addUpcomingEvent(w http.ResponseWriter, r *http.Request, s *Session) (any, error) {
	var req upcomingEventRequest
	if !decode(w, r, &req) {
		return nil, nil
	}
	at, err := parseDateTime("date_time", req.DateTime)
	if err != nil {
		return nil, err
	}

	e, err := s.ScheduleEvent(r.Context(), schedule.RecordInput{
		DateTime: at,
		Kind:     schedule.Kind(strings.TrimSpace(req.Type)),
		Title:    req.Title,
		Priority: schedule.Priority(strings.TrimSpace(req.Priority)),
	})
	if err != nil {
		return nil, err
	}
	return toUpcomingItem(e, false), nil
}

// sessionFrom resuelve la sesión del request; responde 401 si no hay.
func sessionFrom(w http.ResponseWriter, r *http.Request, m *Manager) (*Session, bool) {
	id, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return nil, false
	}
	s, ok := m.Get(id)
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return nil, false
	}
	return s, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return t, nil
}

// dateTimeLayouts: el input datetime-local del browser no manda segundos ni zona.
var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseDateTime(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DDTHH:MM", ErrInvalidInput, field)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, horses.ErrInvalidInput),
		errors.Is(err, vitals.ErrInvalidInput),
		errors.Is(err, vitals.ErrInvalidRange),
		errors.Is(err, vitals.ErrInvalidWindow),
		errors.Is(err, history.ErrInvalidInput),
		errors.Is(err, cases.ErrInvalidInput),
		errors.Is(err, schedule.ErrInvalidInput),
		errors.Is(err, clinical.ErrInvalidSeverity):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound),
		errors.Is(err, horses.ErrNotFound),
		errors.Is(err, alerts.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
