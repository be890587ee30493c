package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	Carts  ports.CartStore
	Orders ports.OrderBackend // optional, enables backend mirroring
	Logger *slog.Logger
}

// CartService owns per-session cart state. The cart store is the source of
// truth for what the browser sees; the order backend holds a best-effort
// mirror for authenticated retailers so the eventual order submission matches
// what the backend already knows.
//
// Every mutation bumps a per-session generation counter. Refreshes from the
// backend capture the counter before the fetch and discard the response if a
// mutation landed in the meantime, so a slow fetch can never clobber newer
// local state.
type CartService struct {
	carts  ports.CartStore
	orders ports.OrderBackend
	logger *slog.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

// NewCartService constructs a new CartService.
func NewCartService(opts CartServiceOptions) *CartService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CartService{
		carts:       opts.Carts,
		orders:      opts.Orders,
		logger:      logger,
		generations: make(map[string]uint64),
	}
}

// Get returns the session's cart. A session with no stored cart reads as empty.
func (s *CartService) Get(ctx context.Context, sessionID string) (domaincart.Cart, error) {
	if sessionID == "" {
		return domaincart.Cart{}, errors.New("session ID is required")
	}
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domaincart.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// AddItem adds a product to the session's cart, merging by product ID. For
// authenticated retailer sessions the new line is also mirrored to the order
// backend; mirror failures are logged, never surfaced, since the local store
// is the source of truth.
func (s *CartService) AddItem(ctx context.Context, session domainauth.Session, p domaincart.Product) (domaincart.Cart, error) {
	cart, err := s.mutate(ctx, session.ID, func(c domaincart.Cart) (domaincart.Cart, error) {
		return domaincart.Add(c, p), nil
	})
	if err != nil {
		return domaincart.Cart{}, err
	}

	if line, ok := cart.Find(p.ID); ok {
		s.mirrorLine(ctx, session, line)
	}
	return cart, nil
}

// RemoveItem removes a product from the session's cart. Removing an absent
// product is a no-op. The backend mirror row, when one exists, is deleted
// best-effort.
func (s *CartService) RemoveItem(ctx context.Context, session domainauth.Session, productID string) (domaincart.Cart, error) {
	cart, err := s.mutate(ctx, session.ID, func(c domaincart.Cart) (domaincart.Cart, error) {
		return domaincart.Remove(c, productID), nil
	})
	if err != nil {
		return domaincart.Cart{}, err
	}

	s.mirrorRemove(ctx, session, productID)
	return cart, nil
}

// IncreaseQuantity increments the quantity of an existing line by one.
func (s *CartService) IncreaseQuantity(ctx context.Context, sessionID, productID string) (domaincart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c domaincart.Cart) (domaincart.Cart, error) {
		return domaincart.IncreaseQuantity(c, productID), nil
	})
}

// SetQuantity sets the quantity of an existing line. Negative quantities are
// rejected and leave the cart unchanged.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (domaincart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c domaincart.Cart) (domaincart.Cart, error) {
		return domaincart.SetQuantity(c, productID, quantity)
	})
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) (domaincart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c domaincart.Cart) (domaincart.Cart, error) {
		return domaincart.Clear(c), nil
	})
}

// SyncFromBackend refreshes the local cart from the order backend's rows for
// the session's retailer. The fetched state is discarded when a local
// mutation landed while the fetch was in flight.
func (s *CartService) SyncFromBackend(ctx context.Context, session domainauth.Session) (domaincart.Cart, error) {
	if session.ID == "" {
		return domaincart.Cart{}, errors.New("session ID is required")
	}
	if s.orders == nil || !canMirror(session) {
		return s.Get(ctx, session.ID)
	}

	before := s.generation(session.ID)

	lines, err := s.orders.ListCartLines(ctx, session.Token, session.User.UserID)
	if err != nil {
		return domaincart.Cart{}, fmt.Errorf("list backend cart: %w", err)
	}

	local, err := s.carts.Get(ctx, session.ID)
	if err != nil {
		return domaincart.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	if s.generation(session.ID) != before {
		// A mutation landed while the fetch was in flight; the response is
		// stale, keep the local state.
		return local, nil
	}

	merged := mergeBackendLines(local, lines)
	if err := s.carts.Save(ctx, session.ID, merged); err != nil {
		return domaincart.Cart{}, fmt.Errorf("save cart: %w", err)
	}
	return merged, nil
}

// mutate applies a pure cart transition under the session's generation
// counter and persists the result.
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(domaincart.Cart) (domaincart.Cart, error)) (domaincart.Cart, error) {
	if sessionID == "" {
		return domaincart.Cart{}, errors.New("session ID is required")
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domaincart.Cart{}, fmt.Errorf("get cart: %w", err)
	}

	next, err := fn(cart)
	if err != nil {
		return domaincart.Cart{}, err
	}

	s.bumpGeneration(sessionID)

	if err := s.carts.Save(ctx, sessionID, next); err != nil {
		return domaincart.Cart{}, fmt.Errorf("save cart: %w", err)
	}
	return next, nil
}

func (s *CartService) generation(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[sessionID]
}

func (s *CartService) bumpGeneration(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[sessionID]++
}

// mirrorLine pushes one cart line to the order backend for authenticated
// retailer sessions. Failures are logged and swallowed.
func (s *CartService) mirrorLine(ctx context.Context, session domainauth.Session, line domaincart.Line) {
	if s.orders == nil || !canMirror(session) {
		return
	}

	_, err := s.orders.CreateCartLine(ctx, session.Token, ports.CartLine{
		ProductID:      line.Product.ID,
		RetailerID:     session.User.UserID,
		ManufacturerID: line.Product.ManufacturerID,
		OrderQuantity:  line.Quantity,
		ProductPrice:   line.Product.Price,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "cart mirror create failed",
			"session_id", session.ID,
			"product_id", line.Product.ID,
			"error", err)
	}
}

// mirrorRemove deletes the backend cart row for a product, when one exists.
func (s *CartService) mirrorRemove(ctx context.Context, session domainauth.Session, productID string) {
	if s.orders == nil || !canMirror(session) {
		return
	}

	lines, err := s.orders.ListCartLines(ctx, session.Token, session.User.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "cart mirror lookup failed",
			"session_id", session.ID,
			"product_id", productID,
			"error", err)
		return
	}
	for _, line := range lines {
		if line.ProductID != productID {
			continue
		}
		if err := s.orders.DeleteCartLine(ctx, session.Token, line.CartID); err != nil {
			s.logger.WarnContext(ctx, "cart mirror delete failed",
				"session_id", session.ID,
				"cart_id", line.CartID,
				"error", err)
		}
		return
	}
}

// canMirror reports whether the session may talk to the order backend.
func canMirror(session domainauth.Session) bool {
	return session.IsAuthenticated && session.Token != "" && session.User != nil && session.User.UserID != ""
}

// mergeBackendLines folds backend cart rows into the local cart. Quantities
// from the backend win for products the local cart does not carry newer
// state for; products only known locally are kept.
func mergeBackendLines(local domaincart.Cart, lines []ports.CartLine) domaincart.Cart {
	merged := local
	for _, line := range lines {
		if line.ProductID == "" || line.OrderQuantity <= 0 {
			continue
		}
		if _, ok := merged.Find(line.ProductID); ok {
			continue
		}
		merged = domaincart.Add(merged, domaincart.Product{
			ID:             line.ProductID,
			Price:          line.ProductPrice,
			ManufacturerID: line.ManufacturerID,
		})
		var err error
		merged, err = domaincart.SetQuantity(merged, line.ProductID, line.OrderQuantity)
		if err != nil {
			// Quantity was validated above; keep the added line as-is.
			continue
		}
	}
	return merged
}
