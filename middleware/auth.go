package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shubhampawale7/Acharya-Beena/auth"
	"github.com/shubhampawale7/Acharya-Beena/models"
	"github.com/shubhampawale7/Acharya-Beena/repository"
)

// writeError mirrors the handlers package's response envelope without
// importing it, to keep middleware free of a handler dependency.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

type ctxKey string

const userKey ctxKey = "user"

// UserFromContext returns the authenticated user attached by Protect.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

// WithUser is used by tests to pre-populate the request context.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// Protect verifies the bearer token and resolves the user record into the
// request context. Token holders whose account has since been deleted are
// rejected.
func Protect(users repository.UserRepository, secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := ""
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			raw = strings.TrimPrefix(h, "Bearer ")
		}
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Server Error")
			return
		}
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		user.Sanitize()

		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

// AdminOnly gates a protected route on the admin role.
func AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || user.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "Not authorized as an admin")
			return
		}
		next(w, r)
	}
}
