// Package catalog holds the read-only product catalog. No workflow in the
// app mutates products; the collection is seeded once at startup.
package catalog

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionUsed    Condition = "used"
	ConditionVintage Condition = "vintage"
)

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Genre       string    `json:"genre"`
	Year        int       `json:"year"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	ImageURL    string    `json:"imageUrl"`
	Rating      float64   `json:"rating"`
	Label       string    `json:"label"`
	Condition   Condition `json:"condition"`
	Tracks      []string  `json:"tracks"`
}

// Index maps products by id for cart/order joins.
func Index(products []Product) map[string]Product {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
