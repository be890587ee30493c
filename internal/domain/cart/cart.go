package cart

// Package cart contains the pure shopping-cart state machine. All operations
// are reductions over the full item list: input is the current state plus the
// action payload, output is the next state. No hidden I/O.

import "errors"

// ErrNegativeQuantity is returned by SetQuantity for negative input. Callers
// validate UI input (quantity pickers clamp to >= 1 in the presentation
// layer); the store only enforces the >= 0 floor.
var ErrNegativeQuantity = errors.New("quantity must be >= 0")

// Product is the product reference carried by a cart line. ID is the item
// identity used to deduplicate cart entries.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name,omitempty"`
	Price          float64 `json:"price"`
	ManufacturerID string  `json:"manufacturer_id,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// Line is one cart entry: a product reference plus a quantity.
type Line struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price x quantity for the line.
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart is an ordered collection of lines, at most one per product identity.
type Cart struct {
	Items []Line `json:"items"`
}

// Empty returns the initial cart state.
func Empty() Cart {
	return Cart{}
}

// Add appends a new line with quantity 1, or increments the quantity when a
// line with the same product identity already exists.
func Add(c Cart, p Product) Cart {
	items := make([]Line, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity++
			return Cart{Items: items}
		}
	}
	return Cart{Items: append(items, Line{Product: p, Quantity: 1})}
}

// Remove deletes the line with the matching identity. Removing an absent
// identity is a no-op, not an error.
func Remove(c Cart, productID string) Cart {
	items := make([]Line, 0, len(c.Items))
	for _, l := range c.Items {
		if l.Product.ID != productID {
			items = append(items, l)
		}
	}
	if len(items) == 0 {
		return Cart{}
	}
	return Cart{Items: items}
}

// IncreaseQuantity adds one to the matching line's quantity. No-op when the
// identity is absent.
func IncreaseQuantity(c Cart, productID string) Cart {
	if len(c.Items) == 0 {
		return c
	}
	items := make([]Line, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity++
			break
		}
	}
	return Cart{Items: items}
}

// SetQuantity sets the matching line's quantity to the exact non-negative
// value. No-op when the identity is absent; negative input is rejected and
// the state returned unchanged.
func SetQuantity(c Cart, productID string, quantity int) (Cart, error) {
	if quantity < 0 {
		return c, ErrNegativeQuantity
	}
	if len(c.Items) == 0 {
		return c, nil
	}
	items := make([]Line, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return Cart{Items: items}, nil
}

// Clear empties the entire list. Used after a successful checkout.
func Clear(Cart) Cart {
	return Cart{}
}

// Find returns the line with the given identity and whether it exists.
func (c Cart) Find(productID string) (Line, bool) {
	for _, l := range c.Items {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return Line{}, false
}

// Count returns the total number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.Items {
		n += l.Quantity
	}
	return n
}

// Total returns the sum of line subtotals.
func (c Cart) Total() float64 {
	t := 0.0
	for _, l := range c.Items {
		t += l.Subtotal()
	}
	return t
}
