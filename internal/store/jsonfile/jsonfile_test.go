package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordshop/vinylstore/internal/store"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoad_InitializesAbsentCollection(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	docs, err := s.Load(context.Background(), store.Users)
	require.NoError(t, err)
	assert.Empty(t, docs)

	b, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestReplaceThenLoad_Roundtrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	in := []doc{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, store.Replace(ctx, s, store.Orders, in))

	out, err := store.Load[doc](ctx, s, store.Orders)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReplace_OverwritesWholeCollection(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, s, store.Users, []doc{{ID: "1"}, {ID: "2"}, {ID: "3"}}))
	require.NoError(t, store.Replace(ctx, s, store.Users, []doc{{ID: "9"}}))

	out, err := store.Load[doc](ctx, s, store.Users)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "9", out[0].ID)
}

func TestReplace_NilBecomesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Replace(context.Background(), store.Products, nil))

	b, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestLoad_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	_, err = s.Load(context.Background(), store.Users)
	assert.Error(t, err)
}
