// Package orders converts a non-empty cart into a priced, immutable order
// snapshot and lists a user's order history.
package orders

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recordshop/vinylstore/internal/catalog"
	"github.com/recordshop/vinylstore/internal/identity"
	"github.com/recordshop/vinylstore/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

const defaultPaymentMethod = "card"

type Service struct {
	store store.Store
	log   zerolog.Logger
}

func NewService(s store.Store, log zerolog.Logger) *Service {
	return &Service{store: s, log: log}
}

// Create snapshots the user's cart into a pending order and clears the
// cart. Order first, cart second: a failure in between leaves the order in
// place with an unemptied cart, which is accepted rather than rolled back
// (see DESIGN.md).
func (s *Service) Create(ctx context.Context, userID, shippingAddress, paymentMethod string) (Order, error) {
	if userID == "" {
		return Order{}, identity.ErrUnauthenticated
	}

	users, err := store.Load[identity.User](ctx, s.store, store.Users)
	if err != nil {
		return Order{}, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Order{}, identity.ErrUserNotFound
	}
	if len(users[idx].Cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	products, err := store.Load[catalog.Product](ctx, s.store, store.Products)
	if err != nil {
		return Order{}, err
	}
	byID := catalog.Index(products)

	var lineTotal float64
	items := make([]OrderItem, 0, len(users[idx].Cart))
	for _, line := range users[idx].Cart {
		p, ok := byID[line.ProductID]
		if !ok {
			// Orphaned line: the product left the catalog after it was
			// carted. Skip it instead of failing the whole order.
			s.log.Warn().
				Str("user_id", userID).
				Str("product_id", line.ProductID).
				Msg("dropping cart line with unknown product")
			continue
		}
		lineTotal += p.Price * float64(line.Quantity)
		items = append(items, OrderItem{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Price:         p.Price,
			ProductTitle:  p.Title,
			ProductArtist: p.Artist,
		})
	}

	shippingCost := FlatShippingCost
	if lineTotal > FreeShippingThreshold {
		shippingCost = 0
	}
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	order := Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     round2(lineTotal + shippingCost),
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
		ShippingCost:    shippingCost,
	}

	all, err := store.Load[Order](ctx, s.store, store.Orders)
	if err != nil {
		return Order{}, err
	}
	all = append(all, order)
	if err := store.Replace(ctx, s.store, store.Orders, all); err != nil {
		return Order{}, err
	}

	users[idx].Cart = []identity.CartLine{}
	if err := store.Replace(ctx, s.store, store.Users, users); err != nil {
		return Order{}, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Int("items", len(order.Items)).
		Float64("total", order.TotalAmount).
		Msg("order created")
	return order, nil
}

// ListByUser returns the user's orders, newest first. The sort is stable so
// equal timestamps keep their stored order.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, identity.ErrUnauthenticated
	}

	all, err := store.Load[Order](ctx, s.store, store.Orders)
	if err != nil {
		return nil, err
	}
	mine := make([]Order, 0, len(all))
	for _, o := range all {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
