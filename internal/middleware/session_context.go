package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const sessionKey ctxKey = "session_id"

// SessionHeader lleva el ID de sesión del dashboard.
const SessionHeader = "X-Session-ID"

// SessionContext:
// - Si viene X-Session-ID y exists() lo reconoce => setea el ID en el contexto.
// - Si no, el request sigue igual; los handlers deciden si exigen sesión (401).
func SessionContext(exists func(id string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))
			if id == "" || exists == nil || !exists(id) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
