package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/session"
	"go.uber.org/zap"
)

// Session binds every request to a cart session. The session ID travels in a
// cookie; requests without a valid one get a fresh ID and a Set-Cookie.
func Session(cfg *config.SessionConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					sessionID = id.String()
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   cfg.CookieMaxAge,
					HttpOnly: true,
					Secure:   cfg.SecureCookie,
					SameSite: http.SameSiteLaxMode,
				})
				logger.Debug("cart session issued", zap.String("session_id", sessionID))
			}

			if info := requestInfoFrom(r.Context()); info != nil {
				info.sessionID = sessionID
			}

			next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), sessionID)))
		})
	}
}
