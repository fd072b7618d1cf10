package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novashop/novashop-backend/internal/app/catalog"
	"github.com/novashop/novashop-backend/internal/app/model"
	"github.com/novashop/novashop-backend/internal/app/session"
)

// gatedInsight blocks each fetch until the test releases it, so resolution
// order can be forced.
type gatedInsight struct {
	mu    sync.Mutex
	gates map[string]chan string
}

func newGatedInsight() *gatedInsight {
	return &gatedInsight{gates: make(map[string]chan string)}
}

func (f *gatedInsight) gate(name string) chan string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.gates[name]; !ok {
		f.gates[name] = make(chan string)
	}
	return f.gates[name]
}

func (f *gatedInsight) FetchInsight(_ context.Context, name, _ string) string {
	return <-f.gate(name)
}

type publishedEvent struct {
	SessionID string
	Type      string
	Payload   interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(sessionID string, eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{SessionID: sessionID, Type: eventType, Payload: payload})
}

func (p *recordingPublisher) byType(eventType string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func setupStorefrontTest(t *testing.T) (StorefrontService, *session.Session, *gatedInsight, *recordingPublisher) {
	store, err := catalog.NewStore(catalog.DefaultProducts())
	require.NoError(t, err)

	insight := newGatedInsight()
	publisher := &recordingPublisher{}
	svc := NewStorefrontService(NewCatalogService(store), insight, publisher)

	sess, _ := session.NewStore().GetOrCreate("")
	return svc, sess, insight, publisher
}

func TestStorefrontService_SetCategory(t *testing.T) {
	svc, sess, _, _ := setupStorefrontTest(t)

	category, err := svc.SetCategory(sess, "Mode")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFashion, category)
	assert.Equal(t, model.CategoryFashion, svc.View(sess).ActiveCategory)

	_, err = svc.SetCategory(sess, "Speelgoed")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	// A rejected filter leaves the selection untouched.
	assert.Equal(t, model.CategoryFashion, svc.View(sess).ActiveCategory)
}

func TestStorefrontService_CartFlow(t *testing.T) {
	svc, sess, _, publisher := setupStorefrontTest(t)

	summary, err := svc.AddToCart(sess, 1)
	require.NoError(t, err)
	summary, err = svc.AddToCart(sess, 1)
	require.NoError(t, err)
	summary, err = svc.AddToCart(sess, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, model.RoundPrice(299.00*2+89.95), summary.Subtotal)

	// Silent no-ops for unknown lines.
	before := svc.GetCart(sess)
	assert.Equal(t, before, svc.ChangeQuantity(sess, 999, 1))
	assert.Equal(t, before, svc.RemoveFromCart(sess, 999))

	summary = svc.RemoveFromCart(sess, 1)
	assert.Equal(t, 1, summary.TotalItems)

	summary = svc.ClearCart(sess)
	assert.Equal(t, 0, summary.TotalItems)

	events := publisher.byType("cart_updated")
	assert.NotEmpty(t, events)
	for _, e := range events {
		assert.Equal(t, sess.ID(), e.SessionID)
	}
}

func TestStorefrontService_AddToCart_UnknownProduct(t *testing.T) {
	svc, sess, _, _ := setupStorefrontTest(t)

	_, err := svc.AddToCart(sess, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStorefrontService_OpenProduct_UnknownProduct(t *testing.T) {
	svc, sess, _, _ := setupStorefrontTest(t)

	_, err := svc.OpenProduct(sess, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, svc.View(sess).SelectedProduct)
}

func TestStorefrontService_OpenProduct_InsightApplied(t *testing.T) {
	svc, sess, insight, publisher := setupStorefrontTest(t)

	product, err := svc.OpenProduct(sess, 1)
	require.NoError(t, err)
	assert.True(t, svc.View(sess).InsightPending)

	insight.gate(product.Name) <- "een echte aanrader"

	require.Eventually(t, func() bool {
		view := svc.View(sess)
		return !view.InsightPending && view.Insight == "een echte aanrader"
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(publisher.byType("insight_ready")) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStorefrontService_StaleInsightDiscarded(t *testing.T) {
	svc, sess, insight, publisher := setupStorefrontTest(t)

	productA, err := svc.OpenProduct(sess, 1)
	require.NoError(t, err)
	productB, err := svc.OpenProduct(sess, 2)
	require.NoError(t, err)

	// A's fetch resolves after B replaced it on screen: the result must be
	// dropped, not rendered.
	insight.gate(productA.Name) <- "verouderd"

	assert.Never(t, func() bool {
		return svc.View(sess).Insight == "verouderd"
	}, 200*time.Millisecond, 10*time.Millisecond)
	assert.True(t, svc.View(sess).InsightPending)

	insight.gate(productB.Name) <- "vers"

	require.Eventually(t, func() bool {
		view := svc.View(sess)
		return view.Insight == "vers" && !view.InsightPending
	}, time.Second, 5*time.Millisecond)

	// Only B's insight was ever announced.
	events := publisher.byType("insight_ready")
	require.Len(t, events, 1)
	payload, ok := events[0].Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, productB.ID, payload["product_id"])
}

func TestStorefrontService_CloseProductDiscardsLateInsight(t *testing.T) {
	svc, sess, insight, _ := setupStorefrontTest(t)

	product, err := svc.OpenProduct(sess, 3)
	require.NoError(t, err)
	svc.CloseProduct(sess)

	insight.gate(product.Name) <- "te laat"

	assert.Never(t, func() bool {
		return svc.View(sess).Insight != ""
	}, 200*time.Millisecond, 10*time.Millisecond)
	assert.Nil(t, svc.View(sess).SelectedProduct)
}

func TestStorefrontService_CartDrawer(t *testing.T) {
	svc, sess, _, _ := setupStorefrontTest(t)

	svc.OpenCart(sess)
	assert.True(t, svc.View(sess).CartOpen)

	svc.CloseCart(sess)
	assert.False(t, svc.View(sess).CartOpen)
}
