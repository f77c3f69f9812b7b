// Package identity owns the user collection: registration, login, and
// session-token verification. Other packages mutate only a user's cart.
package identity

import "time"

// CartLine is one (product, quantity) pairing embedded in a user record.
// A cart never holds two lines for the same product.
type CartLine struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt"`
	Cart         []CartLine `json:"cart"`
	Orders       []string   `json:"orders"`
}

// Profile is the public view of a user; it never carries the password hash.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email, Phone: u.Phone}
}
