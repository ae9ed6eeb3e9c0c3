package domain

// Plan is a subscription offering shown on the storefront.
type Plan struct {
	ID       string   `json:"id"`
	URL      string   `json:"url"`
	Name     string   `json:"name"`
	Includes []string `json:"includes"`
}
