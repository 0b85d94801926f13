package transport

import (
	"net/http"

	"techmart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionHandler exposes the session's UI flags.
type SessionHandler struct {
	logger *zap.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(logger *zap.Logger) *SessionHandler {
	return &SessionHandler{logger: logger}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/session", h.GetState)
}

// GetState returns the flags driving which panel the client surfaces next.
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	view := SessionView{
		CustomerName:       sess.CustomerName,
		CartSize:           len(sess.Cart),
		RedirectToCheckout: sess.RedirectToCheckout,
		ViewingProductID:   sess.ViewingProductID,
		ShowResultActions:  sess.ShowResultActions,
	}

	middleware.RespondWithJSON(w, http.StatusOK, view)
}
