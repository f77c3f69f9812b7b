package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/recordshop/vinylstore/internal/cart"
)

type CartHandler struct {
	Cart *cart.Service
	Log  zerolog.Logger
}

type addToCartReq struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateCartReq struct {
	UserID   string `json:"userId"`
	Quantity int    `json:"quantity"`
}

type removeFromCartReq struct {
	UserID string `json:"userId"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/api/cart", h.getCart)
	r.Post("/api/cart", h.addToCart)
	r.Put("/api/cart/{productId}", h.updateCartItem)
	r.Delete("/api/cart/{productId}", h.removeFromCart)
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.Cart.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.Cart.Add(r.Context(), req.UserID, req.ProductID, req.Quantity); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product added to cart"})
}

func (h *CartHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req updateCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.Cart.UpdateQuantity(r.Context(), req.UserID, productID, req.Quantity); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "cart updated"})
}

func (h *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req removeFromCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.Cart.Remove(r.Context(), req.UserID, productID); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product removed from cart"})
}
