package model

import "math"

// CartItem is one cart line: a product plus its quantity.
// Quantity is always >= 1 for as long as the line exists.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is an ordered list of cart lines, at most one per product id.
// Insertion order of first add is preserved. All operations are pure:
// they return a new cart and never modify the receiver's backing array
// in a way visible to callers holding the old value.
type Cart []CartItem

// AddItem returns the cart with product p added. If a line for p.ID already
// exists its quantity grows by one, relative order untouched; otherwise a new
// line with quantity 1 is appended.
func (c Cart) AddItem(p Product) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	for i := range next {
		if next[i].ID == p.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, CartItem{Product: p, Quantity: 1})
}

// ChangeQuantity adjusts the line for id by delta, clamped so the quantity
// never drops below 1. An id without a line is a no-op, not an error.
func (c Cart) ChangeQuantity(id int, delta int) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	for i := range next {
		if next[i].ID == id {
			q := next[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			next[i].Quantity = q
			break
		}
	}
	return next
}

// RemoveItem returns the cart without the line for id; no-op if absent.
func (c Cart) RemoveItem(id int) Cart {
	next := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next
}

// TotalItems is the badge count: the sum of quantities, not the line count.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// Subtotal accumulates price times quantity without intermediate rounding.
// Round with RoundPrice at display time only.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// RoundPrice rounds an amount to currency precision (2 decimals) for display.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
