package session

import (
	"sync"
	"time"

	"github.com/novashop/novashop-backend/internal/app/model"
)

// CartSummary is the derived cart view: lines, badge count and the subtotal
// rounded to currency precision. It is recomputed from the cart on every read.
type CartSummary struct {
	Items      model.Cart `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
}

// ViewState is a snapshot of everything the storefront renders for one session.
type ViewState struct {
	ActiveCategory  model.Category `json:"active_category"`
	CartOpen        bool           `json:"cart_open"`
	SelectedProduct *model.Product `json:"selected_product,omitempty"`
	Insight         string         `json:"insight,omitempty"`
	InsightPending  bool           `json:"insight_pending"`
	Cart            CartSummary    `json:"cart"`
}

// Session holds the view state owned by one browser session: the cart, the
// active category filter, the overlays and the insight for the currently open
// product. All transitions run to completion under the session mutex, so no
// two intents for the same session ever interleave.
type Session struct {
	id string

	mu             sync.Mutex
	cart           model.Cart
	activeCategory model.Category
	cartOpen       bool
	selected       *model.Product
	insight        string
	insightPending bool
	insightSeq     uint64
	lastSeen       time.Time
}

func newSession(id string) *Session {
	return &Session{
		id:             id,
		activeCategory: model.CategoryAll,
		lastSeen:       time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) touchLocked() {
	s.lastSeen = time.Now()
}

func summarize(cart model.Cart) CartSummary {
	items := cart
	if items == nil {
		items = model.Cart{}
	}
	return CartSummary{
		Items:      items,
		TotalItems: cart.TotalItems(),
		Subtotal:   model.RoundPrice(cart.Subtotal()),
	}
}

// View returns a consistent snapshot of the session's view state.
func (s *Session) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	return ViewState{
		ActiveCategory:  s.activeCategory,
		CartOpen:        s.cartOpen,
		SelectedProduct: s.selected,
		Insight:         s.insight,
		InsightPending:  s.insightPending,
		Cart:            summarize(s.cart),
	}
}

// CartSnapshot returns the derived cart view.
func (s *Session) CartSnapshot() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return summarize(s.cart)
}

// AddToCart adds one unit of p, merging into an existing line when present.
func (s *Session) AddToCart(p model.Product) CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.cart = s.cart.AddItem(p)
	return summarize(s.cart)
}

// ChangeQuantity adjusts a line's quantity by delta, floor 1. Unknown product
// ids are silent no-ops.
func (s *Session) ChangeQuantity(productID, delta int) CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.cart = s.cart.ChangeQuantity(productID, delta)
	return summarize(s.cart)
}

// RemoveItem drops a line. Unknown product ids are silent no-ops.
func (s *Session) RemoveItem(productID int) CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.cart = s.cart.RemoveItem(productID)
	return summarize(s.cart)
}

// ClearCart empties the cart.
func (s *Session) ClearCart() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.cart = model.Cart{}
	return summarize(s.cart)
}

// SetCategory switches the active catalog filter.
func (s *Session) SetCategory(c model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.activeCategory = c
}

// ActiveCategory returns the current filter selection.
func (s *Session) ActiveCategory() model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCategory
}

// SetCartOpen opens or closes the cart drawer.
func (s *Session) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.cartOpen = open
}

// OpenProduct opens the detail overlay for p, replacing whichever product was
// open before, and returns the token the matching insight resolution must
// present. Any in-flight insight for a previous open is invalidated by the
// token bump.
func (s *Session) OpenProduct(p model.Product) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	s.selected = &p
	s.insight = ""
	s.insightPending = true
	s.insightSeq++
	return s.insightSeq
}

// CloseProduct closes the detail overlay. The token bump guarantees that an
// insight still in flight for the closed product is discarded on arrival.
func (s *Session) CloseProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	s.selected = nil
	s.insight = ""
	s.insightPending = false
	s.insightSeq++
}

// ResolveInsight applies an insight result if the overlay it was requested for
// is still the one on screen: both the token and the open product id must match
// the values captured when the fetch was issued. Stale results are dropped and
// false is returned.
func (s *Session) ResolveInsight(token uint64, productID int, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.insightSeq || s.selected == nil || s.selected.ID != productID {
		return false
	}
	s.insight = text
	s.insightPending = false
	return true
}

// IdleSince reports how long ago the session was last used.
func (s *Session) IdleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
