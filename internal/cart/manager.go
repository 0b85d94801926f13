// Package cart manages a session's cart lines. All operations mutate the
// session passed in; callers hold the session lock for the whole
// interaction.
package cart

import (
	"errors"

	"techmart/internal/catalog"
	"techmart/internal/domain"
)

var (
	ErrIndexOutOfRange = errors.New("cart line index out of range")
)

// Manager applies cart operations against session state, resolving products
// through the catalog.
type Manager struct {
	catalog *catalog.Store
}

// NewManager creates a cart manager backed by the given catalog.
func NewManager(store *catalog.Store) *Manager {
	return &Manager{catalog: store}
}

// Add puts one unit of the product into the session's cart. A repeat add
// increments the existing line's quantity instead of creating a second line;
// a first add snapshots the product's current name, price and brand. The
// redirect-to-checkout hint is set either way.
func (m *Manager) Add(sess *domain.Session, productID int) (domain.Product, error) {
	product, err := m.catalog.FindByID(productID)
	if err != nil {
		return domain.Product{}, err
	}

	for i := range sess.Cart {
		if sess.Cart[i].ProductID == productID {
			sess.Cart[i].Quantity++
			sess.RedirectToCheckout = true
			return product, nil
		}
	}

	sess.Cart = append(sess.Cart, domain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
		Brand:     product.Brand,
	})
	sess.RedirectToCheckout = true
	return product, nil
}

// Remove deletes the cart line at the given position. An index past the end
// is treated as a stale click and ignored; a negative index is a caller bug
// and reported as ErrIndexOutOfRange.
func (m *Manager) Remove(sess *domain.Session, index int) error {
	if index < 0 {
		return ErrIndexOutOfRange
	}
	if index >= len(sess.Cart) {
		return nil
	}
	sess.Cart = append(sess.Cart[:index], sess.Cart[index+1:]...)
	return nil
}

// Clear empties the cart unconditionally.
func (m *Manager) Clear(sess *domain.Session) {
	sess.Cart = nil
}

// Total is the sum of unit price times quantity across lines, recomputed on
// demand. An empty cart totals zero.
func Total(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
