package transport

import (
	"errors"
	"net/http"
	"strconv"

	"techmart/internal/cart"
	"techmart/internal/catalog"
	"techmart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest represents the add-to-cart payload
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

// CartHandler handles the cart sidebar: view, add, remove, clear.
type CartHandler struct {
	cart   *cart.Manager
	logger *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartManager *cart.Manager, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:   cartManager,
		logger: logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{index}", h.RemoveItem)
		r.Delete("/", h.ClearCart)
	})
}

// GetCart returns the cart view with its recomputed total.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, newCartView(sess))
}

// AddItem adds one unit of a product to the cart. Used by the gallery,
// detail view and search result action cards alike.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

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

	product, err := h.cart.Add(sess, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to add product to cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add product to cart")
		return
	}

	h.logger.Info("Product added to cart",
		zap.String("session_id", sess.ID),
		zap.Int("product_id", product.ID),
	)
	middleware.RespondWithJSON(w, http.StatusOK, newCartView(sess))
}

// RemoveItem deletes the cart line at the given position. A stale index from
// an old render is tolerated as a no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid cart line index")
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

	if err := h.cart.Remove(sess, index); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid cart line index")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, newCartView(sess))
}

// ClearCart empties the cart unconditionally.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	h.cart.Clear(sess)

	middleware.RespondWithJSON(w, http.StatusOK, newCartView(sess))
}
