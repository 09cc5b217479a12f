package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Majncz/MVOP-Q14/internal/auth"
	"github.com/Majncz/MVOP-Q14/internal/models"
	"github.com/Majncz/MVOP-Q14/internal/store"
	"github.com/Majncz/MVOP-Q14/internal/utils"
)

type ctxKey string

const ctxUserKey ctxKey = "user"

// UserFrom returns the authenticated user placed in the context by Auth.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxUserKey).(*models.User)
	return u, ok
}

// Auth authenticates requests. The authorization header carries the raw
// token, no scheme prefix. The token's user is resolved on every request so
// tokens for since-removed users stop working.
func Auth(tokens *auth.Manager, st store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := tokens.VerifyToken(token)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := st.FindUserByID(r.Context(), userID)
			if errors.Is(err, store.ErrNotFound) {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			if err != nil {
				utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
