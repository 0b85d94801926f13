package transport

import (
	"errors"
	"net/http"
	"time"

	"techmart/internal/checkout"
	"techmart/internal/currency"
	"techmart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutHandler handles the checkout form submission.
type CheckoutHandler struct {
	checkout *checkout.Service
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(service *checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: service,
		logger:   logger,
	}
}

// RegisterRoutes registers all checkout routes
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/checkout", h.PlaceOrder)
}

// PlaceOrder validates the form and places the order. Success clears the
// cart and returns the confirmation; any rejection leaves the session
// untouched.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.Request

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))

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

	order, err := h.checkout.PlaceOrder(sess, req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusConflict, "your cart is empty")
			return
		}
		if errors.Is(err, checkout.ErrMissingFields) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "Please fill in all required fields.")
			return
		}

		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	h.logger.Info("Order placed",
		zap.String("session_id", sess.ID),
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
	)

	view := OrderView{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Items:        newCartLineViews(order.Items),
		Total:        order.Total,
		TotalDisplay: currency.Format(order.Total),
		Status:       order.Status,
		OrderDate:    order.CreatedAt.Format(time.DateTime),
		Message:      "Thank you for shopping with TechMart, " + order.CustomerName + "! You will receive a confirmation email shortly.",
	}

	middleware.RespondWithJSON(w, http.StatusCreated, view)
}
