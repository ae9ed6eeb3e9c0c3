package domain

// Product is a catalog item. Src is the object-storage key of the
// product photo; it is resolved to a temporary URL on every read and
// never leaves the backend raw.
type Product struct {
	ID      string
	Src     string
	Name    string
	Portion string
	Price   float64
	Type    string
}
