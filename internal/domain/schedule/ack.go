package schedule

import "sort"

// Acknowledgments es el set de IDs de eventos marcados como vistos en la sesión.
// Tiene ciclo de vida propio: no valida que el evento exista.
type Acknowledgments struct {
	ids map[string]struct{}
}

func NewAcknowledgments() *Acknowledgments {
	return &Acknowledgments{ids: map[string]struct{}{}}
}

// Toggle agrega o quita el ID y devuelve el estado resultante.
func (a *Acknowledgments) Toggle(id string) bool {
	if _, ok := a.ids[id]; ok {
		delete(a.ids, id)
		return false
	}
	a.ids[id] = struct{}{}
	return true
}

func (a *Acknowledgments) Has(id string) bool {
	_, ok := a.ids[id]
	return ok
}

// IDs ordenados (salida estable para la API).
func (a *Acknowledgments) IDs() []string {
	out := make([]string, 0, len(a.ids))
	for id := range a.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
