package models

import "time"

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingPending:    {BookingInProgress: true, BookingCancelled: true},
	BookingInProgress: {BookingCompleted: true, BookingCancelled: true},
	BookingCompleted:  {},
	BookingCancelled:  {},
}

// CanTransitionTo reports whether the lifecycle allows moving to the given status.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	allowed, ok := bookingTransitions[s]
	if !ok {
		return false
	}
	return allowed[next]
}

// Terminal reports whether no further transitions are possible.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingInProgress, BookingCompleted, BookingCancelled:
		return BookingStatus(s), nil
	default:
		return "", &UnknownStatusError{Kind: "booking", Value: s}
	}
}

// Booking is a customer's requested service instance.
// Washers are referenced by id; display names are resolved at read time.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	CustomerName     string        `bson:"customer_name" json:"customerName"`
	CustomerEmail    string        `bson:"customer_email" json:"customerEmail"`
	CustomerPhone    string        `bson:"customer_phone" json:"customerPhone"`
	ServiceType      string        `bson:"service_type" json:"serviceType"`
	Date             string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time             string        `bson:"time" json:"time"` // "HH:MM"
	Status           BookingStatus `bson:"status" json:"status"`
	Amount           float64       `bson:"amount" json:"amount"`
	Location         string        `bson:"location" json:"location"`
	VehicleType      string        `bson:"vehicle_type,omitempty" json:"vehicleType,omitempty"`
	Notes            string        `bson:"notes,omitempty" json:"notes,omitempty"`
	AssignedWasherID string        `bson:"assigned_washer_id,omitempty" json:"assignedWasherId,omitempty"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}

// BookingView is the read model handed to clients: the booking plus the
// assigned washer's display name resolved from the washer record.
type BookingView struct {
	Booking
	AssignedWasher string `json:"assignedWasher,omitempty"`
}
