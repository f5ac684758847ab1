package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to in-progress", BookingPending, BookingInProgress, true},
		{"pending to cancelled", BookingPending, BookingCancelled, true},
		{"pending to completed skips in-progress", BookingPending, BookingCompleted, false},
		{"in-progress to completed", BookingInProgress, BookingCompleted, true},
		{"in-progress to cancelled", BookingInProgress, BookingCancelled, true},
		{"in-progress back to pending", BookingInProgress, BookingPending, false},
		{"completed is terminal", BookingCompleted, BookingCancelled, false},
		{"cancelled is terminal", BookingCancelled, BookingPending, false},
		{"cancelled twice", BookingCancelled, BookingCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingInProgress.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestWasherStatusTransitions(t *testing.T) {
	states := []WasherStatus{WasherActive, WasherBusy, WasherOffline}
	for _, from := range states {
		for _, to := range states {
			assert.Equal(t, from != to, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseBookingStatus("in-progress")
	assert.NoError(t, err)
	assert.Equal(t, BookingInProgress, st)

	_, err = ParseBookingStatus("paused")
	assert.Error(t, err)

	ws, err := ParseWasherStatus("busy")
	assert.NoError(t, err)
	assert.Equal(t, WasherBusy, ws)

	_, err = ParseWasherStatus("")
	assert.Error(t, err)
}
