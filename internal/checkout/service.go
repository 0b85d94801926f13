// Package checkout validates the checkout form and synthesizes orders.
package checkout

import (
	"errors"
	"strings"
	"time"

	"techmart/internal/cart"
	"techmart/internal/domain"
)

var (
	// ErrMissingFields aggregates all presence failures; the contract gives
	// no per-field detail.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrEmptyCart rejects checkout against an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// Request carries the four required checkout fields. Presence is the only
// check: no email or phone format validation is performed.
type Request struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Service places orders against session state.
type Service struct{}

// NewService creates a checkout service.
func NewService() *Service {
	return &Service{}
}

// PlaceOrder validates the request and, on success, synthesizes a confirmed
// order from the session's cart, clears the cart and drops the
// redirect-to-checkout hint. On any failure the session is left untouched.
// The order exists only in the returned value; nothing is persisted.
func (s *Service) PlaceOrder(sess *domain.Session, req Request) (*domain.Order, error) {
	if len(sess.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, ErrMissingFields
	}

	now := time.Now()

	// Snapshot the lines before the cart is cleared.
	items := make([]domain.CartLine, len(sess.Cart))
	copy(items, sess.Cart)

	order := &domain.Order{
		ID:           "ORD" + now.Format("20060102150405"),
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        items,
		Total:        cart.Total(items),
		CreatedAt:    now,
		Status:       domain.OrderStatusConfirmed,
	}

	sess.Cart = nil
	sess.RedirectToCheckout = false

	return order, nil
}
