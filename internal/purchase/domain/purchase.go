package domain

import "time"

// CartItem is one line of a submitted order. Name and Price are
// snapshots taken at checkout; Quantity stays text on the wire, matching
// the storefront payload, and is only parsed where a number is needed.
type CartItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  string  `json:"quantity"`
}

type Purchase struct {
	ID        string     `json:"id"`
	User      string     `json:"user"`
	Email     string     `json:"email"`
	Celphone  string     `json:"celphone"`
	CPF       string     `json:"cpf"`
	Address   string     `json:"address"`
	Status    Status     `json:"status"`
	Date      time.Time  `json:"date"`
	Cart      []CartItem `json:"cart"`
	TotalCart float64    `json:"totalCart"`
}

// NewPurchase stamps identity, creation time and the default status.
// Date is set once here and never recomputed.
func NewPurchase(id string, now time.Time, user, email, celphone, cpf, address string, cart []CartItem, totalCart float64) Purchase {
	return Purchase{
		ID:        id,
		User:      user,
		Email:     email,
		Celphone:  celphone,
		CPF:       cpf,
		Address:   address,
		Status:    StatusRequested,
		Date:      now.UTC(),
		Cart:      cart,
		TotalCart: totalCart,
	}
}
