package wizard

import (
	"context"

	"washly/models"
	"washly/services/catalog"
	"washly/services/notification"

	bookingRepo "washly/database/repository/booking"
)

// WizardService runs the five-step booking wizard: service → location →
// schedule → contact info → payment summary. Forward progress is gated by
// per-step validation; an invalid advance never moves the step.
type WizardService interface {
	Start(ctx context.Context, prefill models.DraftPatch) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Patch(ctx context.Context, sessionID string, patch models.DraftPatch) (*models.WizardSession, error)
	Next(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*models.BookingView, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService on an injected session store
// and the catalog/booking collaborators.
type DefaultWizardService struct {
	Store    SessionStore
	Catalog  catalog.CatalogService
	Bookings bookingRepo.BookingRepository
	Notifier notification.NotificationService
}
