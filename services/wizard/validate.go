package wizard

import (
	"strings"

	"washly/models"
	"washly/utils"
)

// validateStep checks the draft against the requirements of a single step.
// Step 5 has no forward requirements; submit re-validates steps 1 through 4.
func validateStep(step int, draft models.BookingDraft) error {
	var missing []string
	switch step {
	case models.StepService:
		if draft.Service == "" {
			missing = append(missing, "service")
		}
	case models.StepLocation:
		if strings.TrimSpace(draft.Address) == "" {
			missing = append(missing, "address")
		}
	case models.StepSchedule:
		if draft.Date == "" {
			missing = append(missing, "date")
		}
		if draft.TimeSlot == "" {
			missing = append(missing, "timeSlot")
		}
	case models.StepContact:
		if strings.TrimSpace(draft.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(draft.Email) == "" {
			missing = append(missing, "email")
		}
		if strings.TrimSpace(draft.Phone) == "" {
			missing = append(missing, "phone")
		}
	}
	if len(missing) > 0 {
		return utils.NewValidationError("step %d incomplete: missing %s", step, strings.Join(missing, ", "))
	}
	return nil
}

// validateDraft checks every gating step, used before submission.
func validateDraft(draft models.BookingDraft) error {
	for step := models.StepService; step <= models.StepContact; step++ {
		if err := validateStep(step, draft); err != nil {
			return err
		}
	}
	return nil
}

// applyPatch copies the non-nil patch fields onto the draft and reports
// whether the date changed.
func applyPatch(draft *models.BookingDraft, patch models.DraftPatch) (dateChanged bool) {
	if patch.Service != nil {
		draft.Service = *patch.Service
	}
	if patch.Address != nil {
		draft.Address = *patch.Address
	}
	if patch.Date != nil && *patch.Date != draft.Date {
		draft.Date = *patch.Date
		dateChanged = true
	}
	if patch.TimeSlot != nil {
		draft.TimeSlot = *patch.TimeSlot
	}
	if patch.Name != nil {
		draft.Name = *patch.Name
	}
	if patch.Email != nil {
		draft.Email = *patch.Email
	}
	if patch.Phone != nil {
		draft.Phone = *patch.Phone
	}
	if patch.VehicleType != nil {
		draft.VehicleType = *patch.VehicleType
	}
	if patch.Notes != nil {
		draft.Notes = *patch.Notes
	}
	return dateChanged
}
