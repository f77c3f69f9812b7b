// Package store defines the Record Store: whole-collection access to named
// sets of JSON documents. Every mutation in the app is load, modify in
// memory, replace — concurrent writers to the same collection can lose
// updates, which is accepted at this scale (see DESIGN.md).
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

type Collection string

const (
	Users    Collection = "users"
	Products Collection = "products"
	Orders   Collection = "orders"
)

type Store interface {
	// Load returns every document in the collection, initializing an
	// absent collection to empty.
	Load(ctx context.Context, c Collection) ([]json.RawMessage, error)
	// Replace overwrites the whole collection with the given documents.
	Replace(ctx context.Context, c Collection, docs []json.RawMessage) error
}

// Load reads a collection and decodes each document into T.
func Load[T any](ctx context.Context, s Store, c Collection) ([]T, error) {
	docs, err := s.Load(ctx, c)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", c, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Replace encodes each item and overwrites the collection.
func Replace[T any](ctx context.Context, s Store, c Collection, items []T) error {
	docs := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		d, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", c, err)
		}
		docs = append(docs, d)
	}
	return s.Replace(ctx, c, docs)
}
