package domain

const (
	EventPurchaseCreated       = "PurchaseCreated"
	EventPurchaseStatusChanged = "PurchaseStatusChanged"
	EventPurchaseDeleted       = "PurchaseDeleted"
)

type PurchaseCreated struct {
	PurchaseID string     `json:"purchaseId"`
	User       string     `json:"user"`
	Email      string     `json:"email"`
	TotalCart  float64    `json:"totalCart"`
	Cart       []CartItem `json:"cart"`
}

type PurchaseStatusChanged struct {
	PurchaseID string `json:"purchaseId"`
	Email      string `json:"email"`
	OldStatus  Status `json:"oldStatus"`
	NewStatus  Status `json:"newStatus"`
}

type PurchaseDeleted struct {
	PurchaseID string `json:"purchaseId"`
}
