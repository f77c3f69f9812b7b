// Package cart mutates a user's embedded cart and materializes it against
// the product catalog.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/recordshop/vinylstore/internal/catalog"
	"github.com/recordshop/vinylstore/internal/identity"
	"github.com/recordshop/vinylstore/internal/store"
)

var (
	ErrInvalidInput = errors.New("productId and a positive quantity are required")
	ErrLineNotFound = errors.New("product not in cart")
)

// Item is a cart line joined with its catalog product for display.
type Item struct {
	catalog.Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Get returns the user's cart joined against the catalog. Lines whose
// product no longer exists are dropped from the view, not from the cart.
func (s *Service) Get(ctx context.Context, userID string) ([]Item, error) {
	users, err := store.Load[identity.User](ctx, s.store, store.Users)
	if err != nil {
		return nil, err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return nil, identity.ErrUserNotFound
	}

	products, err := store.Load[catalog.Product](ctx, s.store, store.Products)
	if err != nil {
		return nil, err
	}
	byID := catalog.Index(products)

	items := make([]Item, 0, len(users[idx].Cart))
	for _, line := range users[idx].Cart {
		p, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		items = append(items, Item{Product: p, Quantity: line.Quantity, AddedAt: line.AddedAt})
	}
	return items, nil
}

// Add merges by product: an existing line gets its quantity incremented,
// otherwise a new line is appended with the current timestamp.
func (s *Service) Add(ctx context.Context, userID, productID string, quantity int) error {
	if productID == "" || quantity < 1 {
		return ErrInvalidInput
	}

	users, err := store.Load[identity.User](ctx, s.store, store.Users)
	if err != nil {
		return err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return identity.ErrUserNotFound
	}

	if li := findLine(users[idx].Cart, productID); li >= 0 {
		users[idx].Cart[li].Quantity += quantity
	} else {
		users[idx].Cart = append(users[idx].Cart, identity.CartLine{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}
	return store.Replace(ctx, s.store, store.Users, users)
}

// UpdateQuantity sets a line's quantity exactly; it never increments.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidInput
	}

	users, err := store.Load[identity.User](ctx, s.store, store.Users)
	if err != nil {
		return err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return identity.ErrUserNotFound
	}
	li := findLine(users[idx].Cart, productID)
	if li < 0 {
		return ErrLineNotFound
	}

	users[idx].Cart[li].Quantity = quantity
	return store.Replace(ctx, s.store, store.Users, users)
}

// Remove drops the matching line. Removing an absent product is not an
// error.
func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	users, err := store.Load[identity.User](ctx, s.store, store.Users)
	if err != nil {
		return err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return identity.ErrUserNotFound
	}

	kept := users[idx].Cart[:0]
	for _, line := range users[idx].Cart {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	users[idx].Cart = kept
	return store.Replace(ctx, s.store, store.Users, users)
}

func findUser(users []identity.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

func findLine(lines []identity.CartLine, productID string) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
