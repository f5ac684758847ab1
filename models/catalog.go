package models

// ServicePackage is one of the bookable wash packages.
type ServicePackage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
}

// TimeSlot is one cell of the availability grid for a date.
type TimeSlot struct {
	ID        string `json:"id"`
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
}
