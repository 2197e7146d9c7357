package memory

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrHorseIDMissing = errors.New("horse id required")
)

// appendLog es la base inmutable del seed más lo agregado en la sesión, por caballo.
// La base nunca se modifica; list devuelve base + agregados en orden de inserción.
// clone copia lo anidado (slices, punteros) de T; nil = T es plano y alcanza con copiar el valor.
type appendLog[T any] struct {
	mu    sync.RWMutex
	base  map[string][]T
	added map[string][]T
	clone func(T) T
}

func newAppendLog[T any](base map[string][]T, clone func(T) T) *appendLog[T] {
	if base == nil {
		base = map[string][]T{}
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &appendLog[T]{
		base:  base,
		added: make(map[string][]T),
		clone: clone,
	}
}

func (l *appendLog[T]) list(horseID string) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, a := l.base[horseID], l.added[horseID]
	out := make([]T, 0, len(b)+len(a))
	for _, v := range b {
		out = append(out, l.clone(v))
	}
	for _, v := range a {
		out = append(out, l.clone(v))
	}
	return out
}

func (l *appendLog[T]) append(horseID string, v T) error {
	if strings.TrimSpace(horseID) == "" {
		return ErrHorseIDMissing
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.added[horseID] = append(l.added[horseID], l.clone(v))
	return nil
}
