package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"meetdesk/models"
	"meetdesk/services/scheduling"
)

// stubSchedulingService returns canned results so handler tests only exercise
// binding and error mapping.
type stubSchedulingService struct {
	slots     []string
	dates     []string
	createErr error
	booking   *models.Booking
}

func (s *stubSchedulingService) MeetingTypes() []models.MeetingTypeOption {
	return models.MeetingTypes
}

func (s *stubSchedulingService) AvailableDates(viewerTz string) ([]string, error) {
	return s.dates, nil
}

func (s *stubSchedulingService) AvailableSlots(date, viewerTz string) ([]string, error) {
	return s.slots, nil
}

func (s *stubSchedulingService) CreateBooking(input scheduling.CreateBookingInput) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.booking, nil
}

func (s *stubSchedulingService) StartSession(session scheduling.WizardSession) (string, error) {
	return "session-1", nil
}

func (s *stubSchedulingService) UpdateSession(sessionID string, session scheduling.WizardSession) (*scheduling.WizardSession, error) {
	return &session, nil
}

func (s *stubSchedulingService) CancelSession(sessionID string) error {
	return nil
}

func newTestRouter(svc scheduling.SchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSchedulingHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/booking/meeting-types", h.GetMeetingTypes)
	r.GET("/api/booking/slots", h.GetAvailableSlots)
	r.POST("/api/booking/confirm", h.CreateBooking)
	return r
}

func TestGetMeetingTypes(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/meeting-types", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Free Discovery Call")
}

func TestGetAvailableSlotsRequiresDate(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableSlotsEmptyListNotNull(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{slots: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/slots?date=2026-09-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestCreateBookingConflictMapsTo409(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{createErr: scheduling.ErrSlotTaken})

	body := `{"meetingType":"discovery","attendeeName":"A","attendeeEmail":"a@b.co","date":"2026-09-07","time":"10:30","timezone":"UTC"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingValidationMapsTo400(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{
		createErr: scheduling.ValidationErrors{"attendeeEmail": "Email is required"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "attendeeEmail")
}

func TestCreateBookingSettingsUnavailableMapsTo503(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{createErr: scheduling.ErrSettingsUnavailable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
