package horses

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/horses", func(hr chi.Router) {
		hr.Get("/", listHorsesHandler(svc))
		hr.Get("/{horseID}", getHorseHandler(svc))
	})
}

// Response representa el perfil de un caballo devuelto por la API.
type Response struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Discipline     string `json:"discipline"`
	StableLocation string `json:"stable_location"`
}

// listHorsesHandler godoc
// @Summary Listar caballos
// @Description Devuelve el listado estático de pacientes que alimenta el selector del header.
// @Tags horses
// @Produce json
// @Success 200 {array} Response
// @Failure 500 {string} string "internal error"
// @Router /horses [get]
func listHorsesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Response, 0, len(items))
		for _, h := range items {
			out = append(out, ToResponse(h))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getHorseHandler godoc
// @Summary Obtener caballo
// @Tags horses
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Success 200 {object} Response
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID} [get]
func getHorseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.GetByID(r.Context(), chi.URLParam(r, "horseID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(h))
	}
}

// ToResponse se exporta porque el dashboard embebe el perfil en su vista.
func ToResponse(h Horse) Response {
	return Response{
		ID:             h.ID,
		Name:           h.Name,
		Age:            h.Age,
		Discipline:     h.Discipline,
		StableLocation: h.StableLocation,
	}
}

// writeJSON está duplicado en cada módulo con handlers (igual que en dashboard).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
