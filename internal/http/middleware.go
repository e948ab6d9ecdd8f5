package http

import (
	"net/http"

	"github.com/lucas-barreto/foodcheck/internal/auth"
	"github.com/lucas-barreto/foodcheck/internal/http/handlers"
)

// AuthMiddleware verifies the bearer token and resolves its id claim against
// the user repository, stashing the resolved user in the request context.
// Any failure answers 401 with the same body, so an invalid signature is
// indistinguishable from a deleted user.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
			return
		}

		id, err := auth.UserIDFromClaims(claims)
		if err != nil {
			http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
			return
		}

		user, err := userRepo.GetByID(id)
		if err != nil {
			http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
	})
}
