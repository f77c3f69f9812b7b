package httpx_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordshop/vinylstore/internal/cart"
)

func TestCartEndpoints(t *testing.T) {
	app := newTestApp(t)
	userID, _ := app.register(t, "ana", "ana@example.com")

	t.Run("get empty cart", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/cart?userId="+userID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[[]cart.Item](t, rec))
	})

	t.Run("add", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/cart", map[string]any{
			"userId": userID, "productId": "1", "quantity": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("add merges", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/cart", map[string]any{
			"userId": userID, "productId": "1", "quantity": 3,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = app.do(t, http.MethodGet, "/api/cart?userId="+userID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeBody[[]cart.Item](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, "The Dark Side of the Moon", items[0].Title)
	})

	t.Run("update quantity", func(t *testing.T) {
		rec := app.do(t, http.MethodPut, "/api/cart/1", map[string]any{
			"userId": userID, "quantity": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = app.do(t, http.MethodGet, "/api/cart?userId="+userID, nil)
		items := decodeBody[[]cart.Item](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("update rejects zero quantity", func(t *testing.T) {
		rec := app.do(t, http.MethodPut, "/api/cart/1", map[string]any{
			"userId": userID, "quantity": 0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update absent line", func(t *testing.T) {
		rec := app.do(t, http.MethodPut, "/api/cart/999", map[string]any{
			"userId": userID, "quantity": 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		rec := app.do(t, http.MethodDelete, "/api/cart/1", map[string]any{"userId": userID})
		require.Equal(t, http.StatusOK, rec.Code)

		// removing again still succeeds
		rec = app.do(t, http.MethodDelete, "/api/cart/1", map[string]any{"userId": userID})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing userId is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/api/cart", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/api/cart",
			map[string]any{"productId": "1", "quantity": 1}).Code)
		assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPut, "/api/cart/1",
			map[string]any{"quantity": 1}).Code)
		assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodDelete, "/api/cart/1",
			map[string]any{}).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/cart", map[string]any{
			"userId": "ghost", "productId": "1", "quantity": 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing product fields", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/cart", map[string]any{"userId": userID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductsEndpoints(t *testing.T) {
	app := newTestApp(t)

	t.Run("list seeded catalog", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/products", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		products := decodeBody[[]map[string]any](t, rec)
		assert.Len(t, products, 8)
	})

	t.Run("get one", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/products/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		p := decodeBody[map[string]any](t, rec)
		assert.Equal(t, "Kind of Blue", p["title"])
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/products/999", nil).Code)
	})
}
