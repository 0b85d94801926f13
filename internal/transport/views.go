package transport

import (
	"techmart/internal/cart"
	"techmart/internal/currency"
	"techmart/internal/domain"
)

// View models returned to the UI. Each user action maps to one handler and
// one targeted payload; prices come pre-formatted so the client never does
// currency math.

// ProductView is a catalog entry as rendered in the gallery, detail view and
// search result cards.
type ProductView struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Stock        int     `json:"stock_quantity"`
	Specs        string  `json:"specifications"`
	ImageURL     string  `json:"image_url"`
}

func newProductView(p domain.Product) ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Price:        p.Price,
		PriceDisplay: currency.Format(p.Price),
		Stock:        p.Stock,
		Specs:        p.Specs,
		ImageURL:     p.ImageURL,
	}
}

func newProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = newProductView(p)
	}
	return views
}

// CartLineView is one cart line with its line subtotal.
type CartLineView struct {
	ProductID       int     `json:"product_id"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	PriceDisplay    string  `json:"price_display"`
	Subtotal        float64 `json:"subtotal"`
	SubtotalDisplay string  `json:"subtotal_display"`
}

// CartView is the cart sidebar payload.
type CartView struct {
	Lines              []CartLineView `json:"lines"`
	Total              float64        `json:"total"`
	TotalDisplay       string         `json:"total_display"`
	CustomerName       string         `json:"customer_name,omitempty"`
	RedirectToCheckout bool           `json:"redirect_to_checkout"`
}

func newCartLineViews(lines []domain.CartLine) []CartLineView {
	views := make([]CartLineView, len(lines))
	for i, line := range lines {
		subtotal := line.Price * float64(line.Quantity)
		views[i] = CartLineView{
			ProductID:       line.ProductID,
			Name:            line.Name,
			Brand:           line.Brand,
			Quantity:        line.Quantity,
			Price:           line.Price,
			PriceDisplay:    currency.Format(line.Price),
			Subtotal:        subtotal,
			SubtotalDisplay: currency.Format(subtotal),
		}
	}
	return views
}

func newCartView(sess *domain.Session) CartView {
	total := cart.Total(sess.Cart)
	return CartView{
		Lines:              newCartLineViews(sess.Cart),
		Total:              total,
		TotalDisplay:       currency.Format(total),
		CustomerName:       sess.CustomerName,
		RedirectToCheckout: sess.RedirectToCheckout,
	}
}

// ChatView is the reply to one chat message: the assistant's response, the
// full scrollback, and action cards for the last search results when they
// should be shown.
type ChatView struct {
	Reply              string            `json:"reply"`
	History            []domain.ChatTurn `json:"history"`
	ResultActions      []ProductView     `json:"result_actions,omitempty"`
	RedirectToCheckout bool              `json:"redirect_to_checkout"`
}

func newChatView(sess *domain.Session, reply string) ChatView {
	view := ChatView{
		Reply:              reply,
		History:            sess.History,
		RedirectToCheckout: sess.RedirectToCheckout,
	}
	if sess.ShowResultActions {
		view.ResultActions = newProductViews(sess.LastResults)
	}
	return view
}

// OrderView is the checkout confirmation payload.
type OrderView struct {
	OrderID      string         `json:"order_id"`
	CustomerName string         `json:"customer_name"`
	Items        []CartLineView `json:"items"`
	Total        float64        `json:"total"`
	TotalDisplay string         `json:"total_display"`
	Status       string         `json:"status"`
	OrderDate    string         `json:"order_date"`
	Message      string         `json:"message"`
}

// SessionView exposes the UI flags a client needs to decide which panel to
// surface, mirroring what the session state used to drive implicitly.
type SessionView struct {
	CustomerName       string `json:"customer_name,omitempty"`
	CartSize           int    `json:"cart_size"`
	RedirectToCheckout bool   `json:"redirect_to_checkout"`
	ViewingProductID   int    `json:"viewing_product_id"`
	ShowResultActions  bool   `json:"show_result_actions"`
}
