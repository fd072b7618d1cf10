package catalog

import (
	"fmt"

	"github.com/novashop/novashop-backend/internal/app/model"
)

// Store holds the immutable product catalog. It is built once at startup,
// shared read-only by every consumer, and owns no mutation.
type Store struct {
	products []model.Product
	byID     map[int]model.Product
}

// NewStore validates the assortment and builds the catalog. Duplicate ids,
// sentinel or unknown categories and out-of-range fields are rejected.
func NewStore(products []model.Product) (*Store, error) {
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}
	owned := make([]model.Product, len(products))
	copy(owned, products)
	return &Store{products: owned, byID: byID}, nil
}

// Products returns the full catalog in its original order.
func (s *Store) Products() []model.Product {
	return s.products
}

// FindByID looks a product up by its identity key.
func (s *Store) FindByID(id int) (model.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// FilterByCategory returns the catalog filtered down to the selected category,
// original order preserved. The sentinel selects the whole catalog; a category
// without matches yields an empty slice, never an error.
func (s *Store) FilterByCategory(selected model.Category) []model.Product {
	if selected == model.CategoryAll {
		return s.products
	}
	filtered := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == selected {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories returns the closed category set in display order.
func (s *Store) Categories() []model.Category {
	return model.Categories()
}
