package cart

import (
	"errors"
	"reflect"
	"testing"
)

var (
	p1 = Product{ID: "p1", Name: "Widget", Price: 10}
	p2 = Product{ID: "p2", Name: "Gadget", Price: 25}
)

func TestAdd_NewProductStartsAtQuantityOne(t *testing.T) {
	c := Add(Empty(), p1)
	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 1 || c.Items[0].Product != p1 {
		t.Fatalf("unexpected line: %+v", c.Items[0])
	}
}

func TestAdd_SameIdentityMergesNotDuplicates(t *testing.T) {
	c := Empty()
	const n = 5
	for range n {
		c = Add(c, p1)
	}
	if len(c.Items) != 1 {
		t.Fatalf("cart must never contain two lines with the same identity: %+v", c.Items)
	}
	if c.Items[0].Quantity != n {
		t.Fatalf("final quantity %d, want %d", c.Items[0].Quantity, n)
	}
}

func TestAdd_PreservesOrder(t *testing.T) {
	c := Add(Add(Empty(), p1), p2)
	c = Add(c, p1)
	if c.Items[0].Product.ID != "p1" || c.Items[1].Product.ID != "p2" {
		t.Fatalf("order not preserved: %+v", c.Items)
	}
}

func TestRemove_DeletesMatchingLine(t *testing.T) {
	c := Add(Add(Empty(), p1), p2)
	c = Remove(c, "p1")
	if _, ok := c.Find("p1"); ok {
		t.Fatalf("p1 still present")
	}
	if _, ok := c.Find("p2"); !ok {
		t.Fatalf("p2 lost")
	}
}

func TestRemove_AbsentIdentityIsNoOp(t *testing.T) {
	c := Add(Add(Empty(), p1), p2)
	got := Remove(c, "p-nonexistent")
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("remove of absent identity changed state: got %+v want %+v", got, c)
	}
}

func TestRemove_IsIdempotent(t *testing.T) {
	c := Add(Add(Empty(), p1), p2)
	once := Remove(c, "p1")
	twice := Remove(once, "p1")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second remove changed state: %+v vs %+v", once, twice)
	}
}

func TestIncreaseQuantity(t *testing.T) {
	c := Add(Empty(), p1)
	c = IncreaseQuantity(c, "p1")
	if l, _ := c.Find("p1"); l.Quantity != 2 {
		t.Fatalf("quantity %d, want 2", l.Quantity)
	}

	// absent identity is a no-op
	got := IncreaseQuantity(c, "p-nonexistent")
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("increment of absent identity changed state")
	}
}

func TestSetQuantity(t *testing.T) {
	c := Add(Empty(), p1)

	c, err := SetQuantity(c, "p1", 5)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if l, _ := c.Find("p1"); l.Quantity != 5 {
		t.Fatalf("quantity %d, want 5", l.Quantity)
	}

	// zero is allowed; the line stays
	c, err = SetQuantity(c, "p1", 0)
	if err != nil {
		t.Fatalf("set quantity 0: %v", err)
	}
	if l, ok := c.Find("p1"); !ok || l.Quantity != 0 {
		t.Fatalf("expected retained zero-quantity line: %+v", c.Items)
	}
}

func TestSetQuantity_NegativeRejected(t *testing.T) {
	c := Add(Empty(), p1)
	got, err := SetQuantity(c, "p1", -1)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("expected ErrNegativeQuantity, got %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("state changed on rejected set")
	}
}

func TestSetQuantity_AbsentIdentityIsNoOp(t *testing.T) {
	c := Add(Empty(), p1)
	got, err := SetQuantity(c, "p-nonexistent", 3)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("set on absent identity changed state")
	}
}

func TestClear_AlwaysYieldsEmpty(t *testing.T) {
	carts := []Cart{
		Empty(),
		Add(Empty(), p1),
		Add(Add(Add(Empty(), p1), p2), p1),
	}
	for _, c := range carts {
		if got := Clear(c); !reflect.DeepEqual(got, Empty()) {
			t.Fatalf("clear of %+v yielded %+v", c, got)
		}
	}
}

// Scenario from the storefront: add twice, set to 5, increment once.
func TestScenario_AddAddSetIncrement(t *testing.T) {
	c := Add(Add(Empty(), p1), p1)
	c, err := SetQuantity(c, "p1", 5)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	c = IncreaseQuantity(c, "p1")

	if len(c.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(c.Items))
	}
	l := c.Items[0]
	if l.Quantity != 6 {
		t.Fatalf("quantity %d, want 6", l.Quantity)
	}
	if l.Subtotal() != 60 {
		t.Fatalf("subtotal %v, want 60", l.Subtotal())
	}
}

func TestTotals(t *testing.T) {
	c := Add(Add(Add(Empty(), p1), p2), p1) // p1 x2, p2 x1
	if c.Count() != 3 {
		t.Fatalf("count %d, want 3", c.Count())
	}
	if c.Total() != 45 {
		t.Fatalf("total %v, want 45", c.Total())
	}
}
