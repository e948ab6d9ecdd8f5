package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

type contextKey string

const userKey = contextKey("user")

// WithUser returns a copy of ctx carrying the user resolved by the auth
// middleware.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// userFromContext returns the user the auth middleware resolved for this
// request.
func userFromContext(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userKey).(models.User)
	return user, ok
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}
