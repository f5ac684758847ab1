package models

// Metrics is the admin dashboard summary, derived from live data.
type Metrics struct {
	TotalBookings        int     `json:"totalBookings"`
	ActiveWashers        int     `json:"activeWashers"`
	CompletionRate       float64 `json:"completionRate"` // percent
	Revenue              float64 `json:"revenue"`
	CustomerSatisfaction float64 `json:"customerSatisfaction"`
}
