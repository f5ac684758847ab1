package wizard

import (
	"context"
	"fmt"
	"time"

	"washly/models"
	"washly/services/catalog"
	"washly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a new wizard session at step 1. The prefill mirrors the
// original entry points that seed service and address from query parameters.
func (s *DefaultWizardService) Start(ctx context.Context, prefill models.DraftPatch) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
		Draft:     models.BookingDraft{VehicleType: "sedan"},
		CreatedAt: time.Now(),
	}
	applyPatch(&session.Draft, prefill)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current session state.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// Patch applies field-by-field draft mutations. Choosing a new date clears
// the selected slot and recomputes the availability grid for that date.
func (s *DefaultWizardService) Patch(ctx context.Context, sessionID string, patch models.DraftPatch) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if applyPatch(&session.Draft, patch) {
		// A new date invalidates a previously chosen slot, unless this
		// very patch picked one.
		if patch.TimeSlot == nil {
			session.Draft.TimeSlot = ""
		}
		session.Availability = nil
		if session.Draft.Date != "" {
			slots, err := s.Catalog.AvailableSlots(ctx, session.Draft.Date)
			if err != nil {
				return nil, err
			}
			session.Availability = slots
		}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the wizard one step if the current step's requirements hold.
// On validation failure the step is left unchanged and the error names the
// missing fields.
func (s *DefaultWizardService) Next(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step >= models.StepSummary {
		return nil, utils.NewTransitionError("wizard is at the final step; submit the booking instead")
	}

	if err := validateStep(session.Step, session.Draft); err != nil {
		return nil, err
	}
	if session.Step == models.StepSchedule {
		if err := s.ensureSlotAvailable(ctx, session); err != nil {
			return nil, err
		}
	}

	session.Step++
	if session.Step == models.StepSchedule && session.Draft.Date != "" {
		slots, err := s.Catalog.AvailableSlots(ctx, session.Draft.Date)
		if err != nil {
			return nil, err
		}
		session.Availability = slots
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step backwards without touching the accumulated draft.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step <= models.StepService {
		return nil, utils.NewTransitionError("wizard is already at the first step")
	}

	session.Step--
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit finalizes the wizard: the draft is re-validated end to end,
// serialized into a booking-creation request with every field carried over,
// and the session is torn down.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.BookingView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSummary {
		return nil, utils.NewTransitionError("wizard is at step %d; submission is only possible from the summary step", session.Step)
	}
	if err := validateDraft(session.Draft); err != nil {
		return nil, err
	}
	if err := s.ensureSlotAvailable(ctx, session); err != nil {
		return nil, err
	}

	pkg, err := s.Catalog.PackageByID(session.Draft.Service)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		CustomerName:  session.Draft.Name,
		CustomerEmail: session.Draft.Email,
		CustomerPhone: session.Draft.Phone,
		ServiceType:   pkg.Name,
		Date:          session.Draft.Date,
		Time:          session.Draft.TimeSlot,
		Status:        models.BookingPending,
		Amount:        pkg.Price + catalog.BookingFee,
		Location:      session.Draft.Address,
		VehicleType:   session.Draft.VehicleType,
		Notes:         session.Draft.Notes,
	}
	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id

	if s.Notifier != nil {
		msg := fmt.Sprintf("Your %s on %s at %s is booked.", pkg.Name, booking.Date, booking.Time)
		if err := s.Notifier.Send(ctx, booking.CustomerEmail, msg); err != nil {
			zap.L().Warn("booking confirmation notice failed", zap.String("bookingId", id), zap.Error(err))
		}
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		zap.L().Warn("failed to discard submitted session", zap.String("sessionId", sessionID), zap.Error(err))
	}

	return &models.BookingView{Booking: booking}, nil
}

// Cancel discards the session and its draft.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}

// ensureSlotAvailable checks the chosen slot against the live grid, so a
// slot taken since the grid was shown is caught before moving on.
func (s *DefaultWizardService) ensureSlotAvailable(ctx context.Context, session *models.WizardSession) error {
	slots, err := s.Catalog.AvailableSlots(ctx, session.Draft.Date)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot.ID == session.Draft.TimeSlot {
			if !slot.Available {
				return utils.NewTransitionError("time slot %s on %s is no longer available", session.Draft.TimeSlot, session.Draft.Date)
			}
			return nil
		}
	}
	return utils.NewValidationError("time slot %q is not on the schedule grid", session.Draft.TimeSlot)
}
