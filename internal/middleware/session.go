package middleware

import (
	"context"
	"net/http"

	"techmart/internal/domain"
	"techmart/internal/session"

	"go.uber.org/zap"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionMiddleware resolves the visitor's session from the session cookie
// and attaches it to the request context. A missing, empty or unknown cookie
// gets a fresh session and a Set-Cookie; visitors never share sessions.
func SessionMiddleware(store *session.Store, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookieID string
			if cookie, err := r.Cookie(cookieName); err == nil {
				cookieID = cookie.Value
			}

			sess := store.GetOrCreate(cookieID)

			if sess.ID != cookieID {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				logger.Debug("Session cookie issued", zap.String("session_id", sess.ID))
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the visitor's session from the request context.
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok
}
