package catalog

import (
	"context"
	"errors"

	"github.com/recordshop/vinylstore/internal/store"
)

var ErrNotFound = errors.New("product not found")

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return store.Load[Product](ctx, s.store, store.Products)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// EnsureSeeded populates an empty products collection with the demo
// catalog. Called once at startup; an already-seeded collection is left
// alone.
func (s *Service) EnsureSeeded(ctx context.Context) (bool, error) {
	products, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	if len(products) > 0 {
		return false, nil
	}
	if err := store.Replace(ctx, s.store, store.Products, Seed()); err != nil {
		return false, err
	}
	return true, nil
}
