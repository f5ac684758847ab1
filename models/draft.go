package models

import "time"

// Wizard step numbers. A session walks service → location → schedule →
// contact info → payment summary.
const (
	StepService  = 1
	StepLocation = 2
	StepSchedule = 3
	StepContact  = 4
	StepSummary  = 5
)

// BookingDraft is the wizard's in-progress, not-yet-submitted form state.
// It lives only inside a WizardSession and is discarded on submit or cancel.
type BookingDraft struct {
	Service     string `json:"service"`
	Address     string `json:"address"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
	Notes       string `json:"notes"`
}

// DraftPatch carries a partial draft update; nil fields are left untouched.
type DraftPatch struct {
	Service     *string `json:"service,omitempty"`
	Address     *string `json:"address,omitempty"`
	Date        *string `json:"date,omitempty"`
	TimeSlot    *string `json:"timeSlot,omitempty"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	VehicleType *string `json:"vehicleType,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// WizardSession holds the booking wizard state between requests.
type WizardSession struct {
	SessionID    string       `json:"sessionId"`
	Step         int          `json:"step"`
	Draft        BookingDraft `json:"draft"`
	Availability []TimeSlot   `json:"availability,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
