package model

import "fmt"

// Category is the closed set of product categories shown in the storefront.
// CategoryAll is a filter sentinel only; no product may carry it.
type Category string

const (
	CategoryAll         Category = "Alle"
	CategoryElectronics Category = "Elektronica"
	CategoryFashion     Category = "Mode"
	CategoryHome        Category = "Huis & Wonen"
	CategoryTech        Category = "Gadgets"
)

// Categories returns every category in display order, the sentinel first.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryElectronics,
		CategoryFashion,
		CategoryHome,
		CategoryTech,
	}
}

// Valid reports whether c is a member of the closed set, including the sentinel.
func (c Category) Valid() bool {
	switch c {
	case CategoryAll, CategoryElectronics, CategoryFashion, CategoryHome, CategoryTech:
		return true
	}
	return false
}

// ParseCategory validates a raw filter value against the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
}

// Validate checks the catalog invariants: a real (non-sentinel) category,
// a non-negative price and a rating within [0, 5].
func (p Product) Validate() error {
	if p.Category == CategoryAll || !p.Category.Valid() {
		return fmt.Errorf("product %d: invalid category %q", p.ID, p.Category)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d: negative price %.2f", p.ID, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %d: rating %.1f out of range", p.ID, p.Rating)
	}
	return nil
}
