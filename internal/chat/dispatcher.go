// Package chat implements the scripted storefront assistant: a name-capture
// gate followed by an ordered list of intent rules evaluated first-match-wins
// against the lowercased message text.
package chat

import (
	"fmt"
	"regexp"
	"strings"

	"techmart/internal/cart"
	"techmart/internal/catalog"
	"techmart/internal/currency"
	"techmart/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxResults caps how many search hits are kept on the session and rendered
// in a chat reply.
const maxResults = 5

var (
	greetingKeywords = []string{"hi", "hello", "hey", "good morning", "good afternoon"}
	searchKeywords   = []string{"laptop", "hp", "dell", "lenovo", "search", "find", "looking for", "gaming", "business", "budget"}
	addKeywords      = []string{"add", "cart", "buy"}

	namePattern     = regexp.MustCompile(`(?:my name is|i'm|i am|call me)\s+([a-zA-Z]+)`)
	bareNamePattern = regexp.MustCompile(`^([a-zA-Z]+)$`)
	pricePattern    = regexp.MustCompile(`(\d+)k?\s*-\s*(\d+)k?|under\s*(\d+)k?|below\s*(\d+)k?`)

	titleCaser = cases.Title(language.English)
)

// turn carries one user message through the rule chain.
type turn struct {
	sess    *domain.Session
	message string // lowercased, trimmed
}

type rule struct {
	name    string
	matches func(*turn) bool
	respond func(*turn) string
}

// Dispatcher maps an incoming chat message plus current session state to a
// response string and session mutations. Side effects are applied before the
// response returns; appending both chat turns to the history is the caller's
// job.
type Dispatcher struct {
	catalog *catalog.Store
	cart    *cart.Manager
	logger  *zap.Logger
	rules   []rule
}

// NewDispatcher creates the dispatcher with its fixed rule order.
func NewDispatcher(store *catalog.Store, cartManager *cart.Manager, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		catalog: store,
		cart:    cartManager,
		logger:  logger,
	}

	// First match wins. The add-from-results rule sits ahead of the keyword
	// search: its guard requires a prior search, a word from a result's name
	// and an add/cart/buy keyword, so plain brand or category chatter still
	// falls through to the search rule.
	d.rules = []rule{
		{name: "greeting", matches: d.matchGreeting, respond: d.respondGreeting},
		{name: "add_from_results", matches: d.matchAddFromResults, respond: d.respondAddFromResults},
		{name: "search", matches: d.matchSearch, respond: d.respondSearch},
		{name: "budget", matches: d.matchBudget, respond: d.respondBudget},
		{name: "cart", matches: d.matchCart, respond: d.respondCart},
		{name: "help", matches: d.matchHelp, respond: d.respondHelp},
		{name: "default", matches: func(*turn) bool { return true }, respond: d.respondDefault},
	}

	return d
}

// Dispatch processes one user message and returns the assistant's reply.
// Every input has a defined response; the dispatcher never fails.
func (d *Dispatcher) Dispatch(sess *domain.Session, message string) string {
	t := &turn{
		sess:    sess,
		message: strings.ToLower(strings.TrimSpace(message)),
	}

	// A new message always clears the previous result action buttons; the
	// last results themselves stay around for the add-from-results rule.
	sess.ShowResultActions = false

	if sess.CustomerName == "" {
		return d.collectName(t)
	}

	for _, r := range d.rules {
		if r.matches(t) {
			d.logger.Debug("Chat intent matched",
				zap.String("rule", r.name),
				zap.String("session_id", sess.ID),
			)
			return r.respond(t)
		}
	}

	// Unreachable: the default rule always matches.
	return d.respondDefault(t)
}

// collectName handles every message sent before a customer name is known.
// Name capture is permanent for the session.
func (d *Dispatcher) collectName(t *turn) string {
	if containsAny(t.message, greetingKeywords) {
		return "Hello! Welcome to TechMart! 👋 What's your name?"
	}

	name := ""
	if m := namePattern.FindStringSubmatch(t.message); m != nil {
		name = m[1]
	} else if m := bareNamePattern.FindStringSubmatch(t.message); m != nil {
		name = m[1]
	}

	if name != "" {
		t.sess.CustomerName = titleCaser.String(name)
		return fmt.Sprintf("Nice to meet you, %s! 😊 I'm here to help you find the perfect laptop. "+
			"You can ask me about our HP, Dell, or Lenovo laptops, or tell me what you're looking for.",
			t.sess.CustomerName)
	}

	return "Could you please tell me your name? You can say 'My name is [Your Name]' or just type your name."
}

func (d *Dispatcher) matchGreeting(t *turn) bool {
	return containsAny(t.message, greetingKeywords)
}

func (d *Dispatcher) respondGreeting(t *turn) string {
	return fmt.Sprintf("Hello %s! How can I help you find the perfect laptop today? 😊", t.sess.CustomerName)
}

func (d *Dispatcher) matchAddFromResults(t *turn) bool {
	return d.findInLastResults(t) != nil && containsAny(t.message, addKeywords)
}

func (d *Dispatcher) respondAddFromResults(t *turn) string {
	product := d.findInLastResults(t)

	if _, err := d.cart.Add(t.sess, product.ID); err != nil {
		// Catalog is static, so a stored result can't vanish; degrade to the
		// no-match apology all the same.
		d.logger.Warn("Search result no longer in catalog",
			zap.Int("product_id", product.ID),
			zap.Error(err),
		)
		return d.noMatchReply(t)
	}

	return fmt.Sprintf("Perfect! I've added %s to your cart. Would you like to continue shopping or proceed to checkout?", product.Name)
}

// findInLastResults returns the first prior search result whose name shares
// a word with the message, or nil.
func (d *Dispatcher) findInLastResults(t *turn) *domain.Product {
	for i, product := range t.sess.LastResults {
		for _, word := range strings.Fields(strings.ToLower(product.Name)) {
			if strings.Contains(t.message, word) {
				return &t.sess.LastResults[i]
			}
		}
	}
	return nil
}

func (d *Dispatcher) matchSearch(t *turn) bool {
	return containsAny(t.message, searchKeywords)
}

func (d *Dispatcher) respondSearch(t *turn) string {
	results := d.catalog.Search(t.message)
	if len(results) == 0 {
		return d.noMatchReply(t)
	}

	top := results
	if len(top) > maxResults {
		top = top[:maxResults]
	}
	t.sess.LastResults = top
	t.sess.ShowResultActions = true

	var b strings.Builder
	fmt.Fprintf(&b, "Great choice, %s! I found %d laptops that match your search:\n\n", t.sess.CustomerName, len(results))
	for i, product := range top {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, product.Name)
		fmt.Fprintf(&b, "   Price: %s\n", currency.Format(product.Price))
		fmt.Fprintf(&b, "   Stock: %d units available\n\n", product.Stock)
	}
	b.WriteString("You can use the buttons below to view details or add products to your cart!")
	return b.String()
}

func (d *Dispatcher) noMatchReply(t *turn) string {
	return fmt.Sprintf("Sorry %s, I couldn't find any laptops matching your search. "+
		"Could you try different keywords? We have HP, Dell, and Lenovo laptops available.",
		t.sess.CustomerName)
}

func (d *Dispatcher) matchBudget(t *turn) bool {
	return pricePattern.MatchString(t.message) ||
		strings.Contains(t.message, "price") ||
		strings.Contains(t.message, "cost") ||
		strings.Contains(t.message, "budget")
}

// respondBudget is a deliberate stub: the parsed numeric range is never used
// to filter the catalog, matching the behavior this assistant shipped with.
func (d *Dispatcher) respondBudget(t *turn) string {
	return fmt.Sprintf("Great question, %s! Our laptops range from ₦350,000 to ₦750,000. "+
		"What's your budget range? I can help you find something perfect within your budget!",
		t.sess.CustomerName)
}

func (d *Dispatcher) matchCart(t *turn) bool {
	return strings.Contains(t.message, "cart") || strings.Contains(t.message, "checkout")
}

func (d *Dispatcher) respondCart(t *turn) string {
	if len(t.sess.Cart) == 0 {
		return fmt.Sprintf("Your cart is empty, %s. Browse our products and add some laptops to your cart!", t.sess.CustomerName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's your cart, %s:\n\n", t.sess.CustomerName)
	for _, line := range t.sess.Cart {
		fmt.Fprintf(&b, "• %s x%d - %s\n", line.Name, line.Quantity, currency.Format(line.Price*float64(line.Quantity)))
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n\nReady to checkout?", currency.Format(cart.Total(t.sess.Cart)))
	return b.String()
}

func (d *Dispatcher) matchHelp(t *turn) bool {
	return strings.Contains(t.message, "help")
}

func (d *Dispatcher) respondHelp(t *turn) string {
	return fmt.Sprintf(`I'm here to help you, %s! Here's what I can do:

• Find laptops by brand (HP, Dell, Lenovo)
• Search by specifications or price range
• Help you add products to your cart
• Provide product details and comparisons
• Assist with your order

Just ask me anything about our laptops!`, t.sess.CustomerName)
}

func (d *Dispatcher) respondDefault(t *turn) string {
	return fmt.Sprintf("I'm here to help you find the perfect laptop, %s! "+
		"You can ask me about specific brands, price ranges, or specifications. What are you looking for today?",
		t.sess.CustomerName)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
