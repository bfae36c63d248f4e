package model

// Overview is the admin dashboard aggregate. Each field comes from an
// independent query; "active" means Pending or Sent, "delivered" means
// Completed, and income is the raw sum of payment amounts.
type Overview struct {
	TotalOrders     int64   `json:"totalOrders"`
	DeliveredOrders int64   `json:"deliveredOrders"`
	ActiveOrders    int64   `json:"activeOrders"`
	TotalRequests   int64   `json:"totalRequests"`
	TotalUsers      int64   `json:"totalUsers"`
	TotalIncome     float64 `json:"totalIncome"`
}

// NotificationMode selects the digest flavour.
type NotificationMode string

const (
	ModeDaily   NotificationMode = "daily"
	ModeWeekend NotificationMode = "weekend"
)

// NotificationRequest is the payload for triggering a digest fan-out.
type NotificationRequest struct {
	Type NotificationMode `json:"type"`
}

// NotificationResult reports how many emails went out.
type NotificationResult struct {
	Message    string `json:"message"`
	EmailsSent int    `json:"emailsSent"`
}
