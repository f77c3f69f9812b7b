package orders

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Checkout never moves an order past pending; the later statuses exist for
// display and are set outside this system.

const (
	// Orders whose line total exceeds this ship free.
	FreeShippingThreshold = 50.00
	FlatShippingCost      = 5.99
)

// OrderItem is a frozen copy of product data and pricing at order time,
// detached from future catalog changes.
type OrderItem struct {
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	ProductTitle  string  `json:"productTitle"`
	ProductArtist string  `json:"productArtist"`
}

// Order is immutable once created: totalAmount is computed at creation and
// never recomputed.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	ShippingCost    float64     `json:"shippingCost"`
}
