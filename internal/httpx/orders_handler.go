package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/recordshop/vinylstore/internal/orders"
)

type OrdersHandler struct {
	Orders *orders.Service
	Log    zerolog.Logger
}

type createOrderReq struct {
	UserID          string `json:"userId"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/api/orders", h.createOrder)
	r.Get("/api/orders", h.getUserOrders)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	order, err := h.Orders.Create(r.Context(), req.UserID, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "order placed successfully",
		"order":   order,
	})
}

func (h *OrdersHandler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	list, err := h.Orders.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
