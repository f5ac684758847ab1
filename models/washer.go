package models

// WasherStatus tracks a washer's availability.
type WasherStatus string

const (
	WasherActive  WasherStatus = "active"
	WasherBusy    WasherStatus = "busy"
	WasherOffline WasherStatus = "offline"
)

// CanTransitionTo allows any washer state change except a no-op.
func (s WasherStatus) CanTransitionTo(next WasherStatus) bool {
	return s != next
}

func ParseWasherStatus(s string) (WasherStatus, error) {
	switch WasherStatus(s) {
	case WasherActive, WasherBusy, WasherOffline:
		return WasherStatus(s), nil
	default:
		return "", &UnknownStatusError{Kind: "washer", Value: s}
	}
}

// Washer is a service provider who performs car-wash jobs.
type Washer struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Photo           string       `bson:"photo,omitempty" json:"photo,omitempty"`
	Rating          float64      `bson:"rating" json:"rating"`
	CompletedWashes int          `bson:"completed_washes" json:"completedWashes"`
	Status          WasherStatus `bson:"status" json:"status"`
	Location        string       `bson:"location" json:"location"`
	Earnings        float64      `bson:"earnings" json:"earnings"`
}
