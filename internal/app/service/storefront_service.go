package service

import (
	"context"

	"github.com/novashop/novashop-backend/internal/app/model"
	"github.com/novashop/novashop-backend/internal/app/session"
	"github.com/novashop/novashop-backend/internal/websocket"
	"github.com/novashop/novashop-backend/pkg/logger"
)

// EventPublisher pushes storefront events to a session's live connections.
// Delivery is best-effort and purely advisory.
type EventPublisher interface {
	Publish(sessionID string, eventType string, payload interface{})
}

// StorefrontService drives the view-layer intents for one session: catalog
// filter, cart drawer, product-detail overlay and all cart mutations. Cart
// changes go through the pure cart model; badge count and subtotal are
// re-derived from the returned cart on every change.
type StorefrontService interface {
	View(sess *session.Session) session.ViewState
	SetCategory(sess *session.Session, raw string) (model.Category, error)
	OpenCart(sess *session.Session)
	CloseCart(sess *session.Session)
	OpenProduct(sess *session.Session, productID int) (model.Product, error)
	CloseProduct(sess *session.Session)
	GetCart(sess *session.Session) session.CartSummary
	AddToCart(sess *session.Session, productID int) (session.CartSummary, error)
	ChangeQuantity(sess *session.Session, productID, delta int) session.CartSummary
	RemoveFromCart(sess *session.Session, productID int) session.CartSummary
	ClearCart(sess *session.Session) session.CartSummary
}

type storefrontService struct {
	catalogService CatalogService
	insightService InsightService
	events         EventPublisher
}

func NewStorefrontService(
	catalogService CatalogService,
	insightService InsightService,
	events ...EventPublisher,
) StorefrontService {
	var publisher EventPublisher
	if len(events) > 0 {
		publisher = events[0]
	}
	return &storefrontService{
		catalogService: catalogService,
		insightService: insightService,
		events:         publisher,
	}
}

func (s *storefrontService) View(sess *session.Session) session.ViewState {
	return sess.View()
}

func (s *storefrontService) SetCategory(sess *session.Session, raw string) (model.Category, error) {
	category, err := model.ParseCategory(raw)
	if err != nil {
		logger.Warn("Rejected category filter", map[string]interface{}{
			"session_id": sess.ID(),
			"value":      raw,
		})
		return "", ErrInvalidCategory
	}

	sess.SetCategory(category)
	logger.Debug("Category filter changed", map[string]interface{}{
		"session_id": sess.ID(),
		"category":   category,
	})
	return category, nil
}

func (s *storefrontService) OpenCart(sess *session.Session) {
	sess.SetCartOpen(true)
}

func (s *storefrontService) CloseCart(sess *session.Session) {
	sess.SetCartOpen(false)
}

// OpenProduct opens the detail overlay and issues exactly one insight fetch
// for it. The fetch runs asynchronously; its result is applied only if the
// same overlay is still open when it resolves, otherwise it is discarded.
func (s *storefrontService) OpenProduct(sess *session.Session, productID int) (model.Product, error) {
	product, err := s.catalogService.GetProductByID(productID)
	if err != nil {
		return model.Product{}, err
	}

	token := sess.OpenProduct(product)

	logger.Debug("Product detail opened", map[string]interface{}{
		"session_id": sess.ID(),
		"product_id": product.ID,
	})

	go s.fetchInsight(sess, product, token)

	return product, nil
}

func (s *storefrontService) fetchInsight(sess *session.Session, product model.Product, token uint64) {
	text := s.insightService.FetchInsight(context.Background(), product.Name, product.Description)

	if !sess.ResolveInsight(token, product.ID, text) {
		logger.Debug("Discarded stale insight", map[string]interface{}{
			"session_id": sess.ID(),
			"product_id": product.ID,
		})
		return
	}

	s.publish(sess.ID(), websocket.EventInsightReady, map[string]interface{}{
		"product_id": product.ID,
		"insight":    text,
	})
}

func (s *storefrontService) CloseProduct(sess *session.Session) {
	sess.CloseProduct()
}

func (s *storefrontService) GetCart(sess *session.Session) session.CartSummary {
	return sess.CartSnapshot()
}

func (s *storefrontService) AddToCart(sess *session.Session, productID int) (session.CartSummary, error) {
	product, err := s.catalogService.GetProductByID(productID)
	if err != nil {
		return session.CartSummary{}, err
	}

	summary := sess.AddToCart(product)
	logger.Info("Item added to cart", map[string]interface{}{
		"session_id":  sess.ID(),
		"product_id":  product.ID,
		"total_items": summary.TotalItems,
	})

	s.publishCart(sess.ID(), summary)
	return summary, nil
}

// ChangeQuantity adjusts a line by delta with a floor of 1. A product id
// without a cart line is a silent no-op by contract, never an error.
func (s *storefrontService) ChangeQuantity(sess *session.Session, productID, delta int) session.CartSummary {
	summary := sess.ChangeQuantity(productID, delta)
	s.publishCart(sess.ID(), summary)
	return summary
}

// RemoveFromCart drops a line; absent ids are silent no-ops.
func (s *storefrontService) RemoveFromCart(sess *session.Session, productID int) session.CartSummary {
	summary := sess.RemoveItem(productID)
	s.publishCart(sess.ID(), summary)
	return summary
}

func (s *storefrontService) ClearCart(sess *session.Session) session.CartSummary {
	summary := sess.ClearCart()
	logger.Info("Cart cleared", map[string]interface{}{
		"session_id": sess.ID(),
	})
	s.publishCart(sess.ID(), summary)
	return summary
}

func (s *storefrontService) publishCart(sessionID string, summary session.CartSummary) {
	s.publish(sessionID, websocket.EventCartUpdated, map[string]interface{}{
		"total_items": summary.TotalItems,
		"subtotal":    summary.Subtotal,
	})
}

func (s *storefrontService) publish(sessionID string, eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(sessionID, eventType, payload)
}
