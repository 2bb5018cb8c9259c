package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const personIDKey contextKey = "person_id"

// PersonID extracts the authenticated person id from the request context.
func PersonID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(personIDKey).(uuid.UUID)
	return id, ok
}

// Middleware validates the bearer token and puts the person id in the
// request context. Requests without a valid token are rejected with 401.
func Middleware(m *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := m.Validate(parts[1])
			if err != nil {
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), personIDKey, claims.PersonID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
