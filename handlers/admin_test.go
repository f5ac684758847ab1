package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"washly/models"
	"washly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAdminService returns canned errors so the handler's status mapping can
// be exercised without repositories.
type stubAdminService struct {
	err error
}

func (s *stubAdminService) ListBookings(context.Context) ([]models.BookingView, error) {
	return []models.BookingView{}, s.err
}

func (s *stubAdminService) ListWashers(context.Context) ([]models.Washer, error) {
	return []models.Washer{}, s.err
}

func (s *stubAdminService) Metrics(context.Context) (*models.Metrics, error) {
	return &models.Metrics{}, s.err
}

func (s *stubAdminService) Assign(context.Context, string, string) (*models.BookingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingView{}, nil
}

func (s *stubAdminService) SetBookingStatus(context.Context, string, models.BookingStatus) (*models.BookingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingView{}, nil
}

func (s *stubAdminService) SetWasherStatus(context.Context, string, models.WasherStatus) (*models.Washer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Washer{}, nil
}

func newAdminRouter(svc *stubAdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(svc, nil)
	r := gin.New()
	r.POST("/bookings/:id/assign", h.AssignWasherHandler)
	r.PATCH("/bookings/:id/status", h.UpdateBookingStatusHandler)
	r.PATCH("/washers/:id/status", h.UpdateWasherStatusHandler)
	r.GET("/actions", h.LegalActionsHandler)
	return r
}

func TestDomainErrorStatusMapping(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"not found maps to 404", utils.NewNotFoundError("booking b1 not found"), http.StatusNotFound},
		{"validation maps to 400", utils.NewValidationError("bad input"), http.StatusBadRequest},
		{"transition maps to 409", utils.NewTransitionError("illegal move"), http.StatusConflict},
		{"success maps to 200", nil, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAdminRouter(&stubAdminService{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bookings/b1/assign",
				strings.NewReader(`{"washerId":"w1"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	r := newAdminRouter(&stubAdminService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/b1/status",
		strings.NewReader(`{"status":"paused"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateWasherStatusRejectsMissingBody(t *testing.T) {
	r := newAdminRouter(&stubAdminService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/washers/w1/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLegalActionsEndpoint(t *testing.T) {
	r := newAdminRouter(&stubAdminService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/actions?type=booking&status=pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "assign-washer")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/actions?type=driver&status=pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
