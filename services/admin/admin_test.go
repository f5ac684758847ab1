package admin

import (
	"context"
	"testing"

	"washly/models"
	"washly/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings map[string]models.Booking
}

func newFakeBookingRepo(seed ...models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[string]models.Booking)}
	for _, b := range seed {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, b models.Booking) (string, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("booking %s not found", id)
	}
	return &b, nil
}

func (r *fakeBookingRepo) List(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByCustomerEmail(_ context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByWasherAndDate(_ context.Context, washerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.AssignedWasherID == washerID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return utils.NewNotFoundError("booking %s not found", b.ID)
	}
	r.bookings[b.ID] = *b
	return nil
}

type fakeWasherRepo struct {
	washers map[string]models.Washer
}

func newFakeWasherRepo(seed ...models.Washer) *fakeWasherRepo {
	r := &fakeWasherRepo{washers: make(map[string]models.Washer)}
	for _, w := range seed {
		r.washers[w.ID] = w
	}
	return r
}

func (r *fakeWasherRepo) Create(_ context.Context, w models.Washer) (string, error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	r.washers[w.ID] = w
	return w.ID, nil
}

func (r *fakeWasherRepo) GetByID(_ context.Context, id string) (*models.Washer, error) {
	w, ok := r.washers[id]
	if !ok {
		return nil, utils.NewNotFoundError("washer %s not found", id)
	}
	return &w, nil
}

func (r *fakeWasherRepo) List(_ context.Context) ([]models.Washer, error) {
	var out []models.Washer
	for _, w := range r.washers {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWasherRepo) Update(_ context.Context, w *models.Washer) error {
	if _, ok := r.washers[w.ID]; !ok {
		return utils.NewNotFoundError("washer %s not found", w.ID)
	}
	r.washers[w.ID] = *w
	return nil
}

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) Send(_ context.Context, userID, message string) error {
	n.sent = append(n.sent, userID+": "+message)
	return nil
}

func newTestService(bookings []models.Booking, washers []models.Washer) (*DefaultAdminService, *fakeBookingRepo, *fakeWasherRepo, *fakeNotifier) {
	br := newFakeBookingRepo(bookings...)
	wr := newFakeWasherRepo(washers...)
	n := &fakeNotifier{}
	return &DefaultAdminService{Bookings: br, Washers: wr, Notifier: n}, br, wr, n
}

func TestAssignSuccess(t *testing.T) {
	svc, br, wr, notifier := newTestService(
		[]models.Booking{{ID: "b1", Status: models.BookingPending, ServiceType: "Premium Wash", Date: "2024-01-10", Time: "09:00"}},
		[]models.Washer{{ID: "w1", Name: "Michael Johnson", Status: models.WasherActive}},
	)

	view, err := svc.Assign(context.Background(), "b1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", view.AssignedWasherID)
	assert.Equal(t, "Michael Johnson", view.AssignedWasher)

	booking, _ := br.GetByID(context.Background(), "b1")
	assert.Equal(t, "w1", booking.AssignedWasherID)

	washer, _ := wr.GetByID(context.Background(), "w1")
	assert.Equal(t, models.WasherBusy, washer.Status)

	assert.Len(t, notifier.sent, 1)
}

func TestAssignRejectsNonActiveWasher(t *testing.T) {
	for _, status := range []models.WasherStatus{models.WasherOffline, models.WasherBusy} {
		t.Run(string(status), func(t *testing.T) {
			svc, br, wr, _ := newTestService(
				[]models.Booking{{ID: "b1", Status: models.BookingPending}},
				[]models.Washer{{ID: "w1", Name: "Sam Ortiz", Status: status}},
			)

			_, err := svc.Assign(context.Background(), "b1", "w1")
			assert.Error(t, err)
			assert.Equal(t, utils.CodeTransition, utils.ErrorCode(err))

			// Neither entity is mutated on rejection.
			booking, _ := br.GetByID(context.Background(), "b1")
			assert.Empty(t, booking.AssignedWasherID)
			washer, _ := wr.GetByID(context.Background(), "w1")
			assert.Equal(t, status, washer.Status)
		})
	}
}

func TestAssignRejectsNonPendingBooking(t *testing.T) {
	svc, _, wr, _ := newTestService(
		[]models.Booking{{ID: "b1", Status: models.BookingInProgress}},
		[]models.Washer{{ID: "w1", Status: models.WasherActive}},
	)

	_, err := svc.Assign(context.Background(), "b1", "w1")
	assert.Equal(t, utils.CodeTransition, utils.ErrorCode(err))

	washer, _ := wr.GetByID(context.Background(), "w1")
	assert.Equal(t, models.WasherActive, washer.Status)
}

func TestAssignUnknownEntities(t *testing.T) {
	svc, _, _, _ := newTestService(
		[]models.Booking{{ID: "b1", Status: models.BookingPending}},
		[]models.Washer{{ID: "w1", Status: models.WasherActive}},
	)

	_, err := svc.Assign(context.Background(), "nope", "w1")
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))

	_, err = svc.Assign(context.Background(), "b1", "nope")
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestCompleteCreditsAssignedWasher(t *testing.T) {
	svc, _, wr, _ := newTestService(
		[]models.Booking{{ID: "b1", Status: models.BookingInProgress, Amount: 49.99, AssignedWasherID: "w1"}},
		[]models.Washer{{ID: "w1", Name: "Sarah Wilson", Status: models.WasherBusy, CompletedWashes: 213, Earnings: 4260}},
	)

	view, err := svc.SetBookingStatus(context.Background(), "b1", models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, view.Status)
	assert.Equal(t, "Sarah Wilson", view.AssignedWasher)

	washer, _ := wr.GetByID(context.Background(), "w1")
	assert.Equal(t, models.WasherActive, washer.Status)
	assert.Equal(t, 214, washer.CompletedWashes)
	assert.InDelta(t, 4309.99, washer.Earnings, 0.001)
}

func TestCancelFromTerminalStateFails(t *testing.T) {
	svc, br, _, _ := newTestService(
		[]models.Booking{{ID: "b1", Status: models.BookingCompleted}},
		nil,
	)

	_, err := svc.SetBookingStatus(context.Background(), "b1", models.BookingCancelled)
	assert.Error(t, err)
	assert.Equal(t, utils.CodeTransition, utils.ErrorCode(err))

	booking, _ := br.GetByID(context.Background(), "b1")
	assert.Equal(t, models.BookingCompleted, booking.Status)
}

func TestSetBookingStatusUnknownBooking(t *testing.T) {
	svc, _, _, _ := newTestService(nil, nil)

	_, err := svc.SetBookingStatus(context.Background(), "ghost", models.BookingInProgress)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestSetWasherStatus(t *testing.T) {
	svc, _, wr, _ := newTestService(nil, []models.Washer{{ID: "w1", Status: models.WasherActive}})

	washer, err := svc.SetWasherStatus(context.Background(), "w1", models.WasherOffline)
	require.NoError(t, err)
	assert.Equal(t, models.WasherOffline, washer.Status)

	stored, _ := wr.GetByID(context.Background(), "w1")
	assert.Equal(t, models.WasherOffline, stored.Status)

	// Same-state change is not offered and not accepted.
	_, err = svc.SetWasherStatus(context.Background(), "w1", models.WasherOffline)
	assert.Equal(t, utils.CodeTransition, utils.ErrorCode(err))

	_, err = svc.SetWasherStatus(context.Background(), "ghost", models.WasherActive)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestOfflineWasherAssignScenario(t *testing.T) {
	svc, br, wr, _ := newTestService(
		[]models.Booking{{ID: "b1", Status: models.BookingPending}},
		[]models.Washer{{ID: "w1", Status: models.WasherOffline, CompletedWashes: 87}},
	)

	_, err := svc.Assign(context.Background(), "b1", "w1")
	assert.Error(t, err)

	booking, _ := br.GetByID(context.Background(), "b1")
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Empty(t, booking.AssignedWasherID)

	washer, _ := wr.GetByID(context.Background(), "w1")
	assert.Equal(t, models.WasherOffline, washer.Status)
	assert.Equal(t, 87, washer.CompletedWashes)
}

func TestMetricsDerivation(t *testing.T) {
	svc, _, _, _ := newTestService(
		[]models.Booking{
			{ID: "b1", Status: models.BookingCompleted, Amount: 49.99},
			{ID: "b2", Status: models.BookingCompleted, Amount: 89.99},
			{ID: "b3", Status: models.BookingPending, Amount: 29.99},
			{ID: "b4", Status: models.BookingCancelled, Amount: 29.99},
		},
		[]models.Washer{
			{ID: "w1", Status: models.WasherActive, Rating: 4.8},
			{ID: "w2", Status: models.WasherBusy, Rating: 4.6},
			{ID: "w3", Status: models.WasherActive, Rating: 5.0},
		},
	)

	m, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, m.TotalBookings)
	assert.Equal(t, 2, m.ActiveWashers)
	assert.Equal(t, 50.0, m.CompletionRate)
	assert.InDelta(t, 139.98, m.Revenue, 0.001)
	assert.InDelta(t, 4.8, m.CustomerSatisfaction, 0.001)
}

func TestListBookingsResolvesWasherNames(t *testing.T) {
	svc, _, _, _ := newTestService(
		[]models.Booking{
			{ID: "b1", Status: models.BookingInProgress, AssignedWasherID: "w1"},
			{ID: "b2", Status: models.BookingPending},
		},
		[]models.Washer{{ID: "w1", Name: "David Chen", Status: models.WasherBusy}},
	)

	views, err := svc.ListBookings(context.Background())
	require.NoError(t, err)

	byID := make(map[string]models.BookingView)
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.Equal(t, "David Chen", byID["b1"].AssignedWasher)
	assert.Empty(t, byID["b2"].AssignedWasher)
}

func TestLegalActionsBooking(t *testing.T) {
	testCases := []struct {
		status   string
		expected []Action
	}{
		{"pending", []Action{ActionStartService, ActionAssignWasher, ActionCancel, ActionNotify}},
		{"in-progress", []Action{ActionComplete, ActionCancel, ActionNotify}},
		{"completed", []Action{ActionNotify}},
		{"cancelled", []Action{ActionNotify}},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			actions, err := LegalActions("booking", tc.status)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actions)
		})
	}
}

func TestLegalActionsWasher(t *testing.T) {
	testCases := []struct {
		status   string
		expected []Action
	}{
		{"active", []Action{ActionSetBusy, ActionSetOffline, ActionSendMessage}},
		{"busy", []Action{ActionSetActive, ActionSetOffline, ActionSendMessage}},
		{"offline", []Action{ActionSetActive, ActionSetBusy, ActionSendMessage}},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			actions, err := LegalActions("washer", tc.status)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actions)
		})
	}
}

func TestLegalActionsRejectsUnknownInput(t *testing.T) {
	_, err := LegalActions("driver", "active")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = LegalActions("booking", "paused")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}
