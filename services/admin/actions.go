package admin

import (
	"washly/models"
	"washly/utils"
)

// Action is one entry of the admin action surface for an entity.
type Action string

const (
	ActionStartService Action = "start-service"
	ActionAssignWasher Action = "assign-washer"
	ActionComplete     Action = "complete"
	ActionCancel       Action = "cancel"
	ActionNotify       Action = "notify-customer"
	ActionSetActive    Action = "set-active"
	ActionSetBusy      Action = "set-busy"
	ActionSetOffline   Action = "set-offline"
	ActionSendMessage  Action = "send-message"
)

// LegalActions derives the action set the dashboard may offer for an entity
// in a given status. The UI must never expose an action outside this set.
func LegalActions(entityType, status string) ([]Action, error) {
	switch entityType {
	case "booking":
		st, err := models.ParseBookingStatus(status)
		if err != nil {
			return nil, utils.NewValidationError("%v", err)
		}
		return bookingActions(st), nil
	case "washer":
		st, err := models.ParseWasherStatus(status)
		if err != nil {
			return nil, utils.NewValidationError("%v", err)
		}
		return washerActions(st), nil
	default:
		return nil, utils.NewValidationError("unknown entity type %q", entityType)
	}
}

func bookingActions(status models.BookingStatus) []Action {
	var actions []Action
	if status == models.BookingPending {
		actions = append(actions, ActionStartService, ActionAssignWasher)
	}
	if status == models.BookingInProgress {
		actions = append(actions, ActionComplete)
	}
	if !status.Terminal() {
		actions = append(actions, ActionCancel)
	}
	return append(actions, ActionNotify)
}

func washerActions(status models.WasherStatus) []Action {
	var actions []Action
	for _, target := range []struct {
		st     models.WasherStatus
		action Action
	}{
		{models.WasherActive, ActionSetActive},
		{models.WasherBusy, ActionSetBusy},
		{models.WasherOffline, ActionSetOffline},
	} {
		if status != target.st {
			actions = append(actions, target.action)
		}
	}
	return append(actions, ActionSendMessage)
}
