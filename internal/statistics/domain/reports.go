package domain

// Report row shapes. JSON field names match what the dashboard charts
// already consume.

type MonthlyTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type CustomerTotal struct {
	User       string  `json:"user"`
	Celphone   string  `json:"celphone"`
	TotalSpent float64 `json:"totalSpent"`
}

type ProductTotal struct {
	ProductName string `json:"productName"`
	TotalSold   int    `json:"totalSold"`
}

type Card struct {
	TotalClients   int `json:"totalClients"`
	TotalPurchases int `json:"totalPurchases"`
}
