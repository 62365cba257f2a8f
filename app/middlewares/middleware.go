package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/services"
	"github.com/unrolled/render"
)

// AuthMiddleware extracts the bearer token, verifies it and puts the
// caller's id and role on the request context.
func AuthMiddleware(tokens *services.TokenService, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, helpers.ContextKeyUserRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware gates a route on the admin role; it must run after
// AuthMiddleware.
func AdminMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(helpers.ContextKeyUserRole).(string)
			if role != models.RoleAdmin {
				userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
				log.Printf("AdminMiddleware: user %s attempted an admin route without the admin role", userID)
				_ = rnd.JSON(w, http.StatusForbidden, map[string]string{"error": "admin role required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the authenticated caller's id from the request context.
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	return userID
}

// Role returns the authenticated caller's role from the request context.
func Role(r *http.Request) string {
	role, _ := r.Context().Value(helpers.ContextKeyUserRole).(string)
	return role
}
