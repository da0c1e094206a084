package middleware

import (
	"net/http"

	"github.com/mkoval-dev/bookmarket-backend/internal/session"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// SessionContext copies the active demo session, if any, into the request
// context. There is no token parsing: the slot itself is the source of
// truth for this single-user demo.
func SessionContext(slot *session.Slot, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if slot != nil {
				if user, ok := slot.Current(); ok {
					ctx = WithUserID(ctx, user.ID)
					ctx = WithRole(ctx, string(user.Role))
					if logg != nil {
						ctx = logg.WithRole(ctx, string(user.Role))
					}
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
