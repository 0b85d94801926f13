package transport

import (
	"net/http"
	"strings"

	"techmart/internal/chat"
	"techmart/internal/domain"
	"techmart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChatRequest represents one chat message from the visitor
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatHandler handles the chat panel: sending messages and scrollback.
type ChatHandler struct {
	dispatcher *chat.Dispatcher
	logger     *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(dispatcher *chat.Dispatcher, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterRoutes registers all chat routes
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", h.SendMessage)
	r.Get("/api/chat/history", h.History)
}

// SendMessage runs one chat interaction: append the user's turn, dispatch,
// append the assistant's turn, and return the updated chat view. All of it
// happens under the session lock, so the transition is atomic.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Chat message validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	// Whitespace-only input is ignored: no dispatch, no history mutation.
	if strings.TrimSpace(req.Message) == "" {
		middleware.RespondWithJSON(w, http.StatusOK, newChatView(sess, ""))
		return
	}

	sess.AppendTurn(domain.RoleUser, req.Message)
	reply := h.dispatcher.Dispatch(sess, req.Message)
	sess.AppendTurn(domain.RoleAssistant, reply)

	middleware.RespondWithJSON(w, http.StatusOK, newChatView(sess, reply))
}

// History returns the session's chat scrollback.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"history": sess.History,
	})
}
