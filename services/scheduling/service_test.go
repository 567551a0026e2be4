package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "meetdesk/database/repository/booking"
	"meetdesk/models"
)

// memBookingRepo is an in-memory BookingRepository that enforces the same
// confirmed-slot uniqueness as the Mongo partial index.
type memBookingRepo struct {
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) slotHeld(date, timeOfDay, excludeID string) bool {
	for _, b := range r.bookings {
		if b.ID != excludeID && b.Status == models.StatusConfirmed &&
			b.ScheduledDate == date && b.ScheduledTime == timeOfDay {
			return true
		}
	}
	return false
}

func (r *memBookingRepo) Create(booking *models.Booking) error {
	if booking.Status == models.StatusConfirmed && r.slotHeld(booking.ScheduledDate, booking.ScheduledTime, booking.ID) {
		return bookingRepo.ErrDuplicateSlot
	}
	copied := *booking
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBookingRepo) GetByDateRange(startDate, endDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ScheduledDate >= startDate && b.ScheduledDate <= endDate {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) Update(id string, update models.BookingUpdate) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	next := *b
	if update.Status != nil {
		next.Status = *update.Status
	}
	if update.ScheduledDate != nil {
		next.ScheduledDate = *update.ScheduledDate
	}
	if update.ScheduledTime != nil {
		next.ScheduledTime = *update.ScheduledTime
	}
	if update.ForwardedTo != nil {
		next.ForwardedTo = *update.ForwardedTo
	}
	if update.AdminNotes != nil {
		next.AdminNotes = *update.AdminNotes
	}
	if next.Status == models.StatusConfirmed && r.slotHeld(next.ScheduledDate, next.ScheduledTime, id) {
		return bookingRepo.ErrDuplicateSlot
	}
	next.UpdatedAt = time.Now()
	r.bookings[id] = &next
	return nil
}

func (r *memBookingRepo) Delete(id string) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) CheckConflict(date, timeOfDay string, excludeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ID != excludeID && b.Status == models.StatusConfirmed &&
			b.ScheduledDate == date && b.ScheduledTime == timeOfDay {
			out = append(out, *b)
		}
	}
	return out, nil
}

type memSettingsRepo struct {
	settings models.BookingSettings
}

func (r *memSettingsRepo) Get() (*models.BookingSettings, error) {
	copied := r.settings
	return &copied, nil
}

func (r *memSettingsRepo) Update(update models.SettingsUpdate) error {
	if update.Timezone != nil {
		r.settings.Timezone = *update.Timezone
	}
	if update.SlotDuration != nil {
		r.settings.SlotDuration = *update.SlotDuration
	}
	if update.BufferTime != nil {
		r.settings.BufferTime = *update.BufferTime
	}
	if update.AdvanceBookingDays != nil {
		r.settings.AdvanceBookingDays = *update.AdvanceBookingDays
	}
	if update.WorkingDays != nil {
		r.settings.WorkingDays = *update.WorkingDays
	}
	if update.Availability != nil {
		r.settings.Availability = *update.Availability
	}
	if update.BlockedDates != nil {
		r.settings.BlockedDates = *update.BlockedDates
	}
	return nil
}

func newTestService(tz string) (*DefaultSchedulingService, *memBookingRepo, *memSettingsRepo) {
	repo := newMemBookingRepo()
	settings := &memSettingsRepo{settings: models.DefaultBookingSettings(tz)}
	svc := &DefaultSchedulingService{
		BookingRepo:  repo,
		SettingsRepo: settings,
	}
	return svc, repo, settings
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		MeetingType:   models.MeetingDiscovery,
		AttendeeName:  "Priya Sharma",
		AttendeeEmail: "priya@example.com",
		Date:          testMonday,
		Time:          "10:30",
		Timezone:      "UTC",
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newTestService("UTC")

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
		field  string
	}{
		{"missing name", func(in *CreateBookingInput) { in.AttendeeName = "  " }, "attendeeName"},
		{"missing email", func(in *CreateBookingInput) { in.AttendeeEmail = "" }, "attendeeEmail"},
		{"malformed email", func(in *CreateBookingInput) { in.AttendeeEmail = "not an email" }, "attendeeEmail"},
		{"unknown meeting type", func(in *CreateBookingInput) { in.MeetingType = "retro" }, "meetingType"},
		{"bad date", func(in *CreateBookingInput) { in.Date = "07/09/2026" }, "date"},
		{"bad time", func(in *CreateBookingInput) { in.Time = "10.30" }, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateBooking(input)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestCreateBookingStoresAdminTimezone(t *testing.T) {
	svc, _, _ := newTestService("UTC")

	input := validInput()
	input.Time = "10:00"
	input.Timezone = "Asia/Kolkata"

	booking, err := svc.CreateBooking(input)
	require.NoError(t, err)

	// 10:00 IST is 04:30 UTC; the stored slot is in the admin timezone while
	// the attendee's own timezone is kept for reference.
	assert.Equal(t, testMonday, booking.ScheduledDate)
	assert.Equal(t, "04:30", booking.ScheduledTime)
	assert.Equal(t, "Asia/Kolkata", booking.Timezone)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.NotEmpty(t, booking.ID)
}

func TestCreateBookingDoubleBook(t *testing.T) {
	svc, repo, _ := newTestService("UTC")

	first, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	_, err = svc.CreateBooking(validInput())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Cancelling the holder frees the slot for the next attempt.
	cancelled := models.StatusCancelled
	require.NoError(t, repo.Update(first.ID, models.BookingUpdate{Status: &cancelled}))

	_, err = svc.CreateBooking(validInput())
	assert.NoError(t, err)
}

func TestCreateBookingConflictAcrossTimezones(t *testing.T) {
	svc, _, _ := newTestService("UTC")

	input := validInput()
	input.Time = "10:00"
	input.Timezone = "Asia/Kolkata"
	_, err := svc.CreateBooking(input)
	require.NoError(t, err)

	// The same instant expressed directly in UTC collides with the stored
	// admin-timezone slot.
	second := validInput()
	second.Time = "04:30"
	second.Timezone = "UTC"
	_, err = svc.CreateBooking(second)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBookingSurvivesLostRace(t *testing.T) {
	svc, repo, _ := newTestService("UTC")

	// Simulate a concurrent winner that slipped in between the conflict check
	// and the insert: the storage uniqueness constraint still rejects it.
	require.NoError(t, repo.Create(&models.Booking{
		ID:            "winner",
		ScheduledDate: testMonday,
		ScheduledTime: "10:30",
		Status:        models.StatusConfirmed,
	}))

	_, err := svc.CreateBooking(validInput())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	svc, _, _ := newTestService("UTC")
	_, err := svc.AvailableSlots("tomorrow", "UTC")
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "date")
}

func TestAvailableSlotsReflectConfirmedBookings(t *testing.T) {
	svc, repo, _ := newTestService("UTC")

	require.NoError(t, repo.Create(&models.Booking{
		ID:            "held",
		ScheduledDate: testMonday,
		ScheduledTime: "10:30",
		Status:        models.StatusConfirmed,
	}))
	require.NoError(t, repo.Create(&models.Booking{
		ID:            "waiting",
		ScheduledDate: testMonday,
		ScheduledTime: "09:45",
		Status:        models.StatusPending,
	}))

	slots, err := svc.AvailableSlots(testMonday, "UTC")
	require.NoError(t, err)
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "09:45")
}

func TestAvailableDates(t *testing.T) {
	svc, _, settings := newTestService("UTC")
	settings.settings.WorkingDays = []int{0, 1, 2, 3, 4, 5, 6}

	dates, err := svc.AvailableDates("UTC")
	require.NoError(t, err)

	// Every day works and the horizon is 30 days, so the list is a screenful
	// of consecutive dates starting tomorrow.
	require.Len(t, dates, 14)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	assert.Equal(t, tomorrow, dates[0])
	for i := 1; i < len(dates); i++ {
		assert.Greater(t, dates[i], dates[i-1])
	}
}

func TestAvailableDatesSkipsBlocked(t *testing.T) {
	svc, _, settings := newTestService("UTC")
	settings.settings.WorkingDays = []int{0, 1, 2, 3, 4, 5, 6}
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	settings.settings.BlockedDates = []string{tomorrow}

	dates, err := svc.AvailableDates("UTC")
	require.NoError(t, err)
	assert.NotContains(t, dates, tomorrow)
}

func TestAvailableDatesSettingsFailure(t *testing.T) {
	svc := &DefaultSchedulingService{
		BookingRepo:  newMemBookingRepo(),
		SettingsRepo: failingSettingsRepo{},
	}
	_, err := svc.AvailableDates("UTC")
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
}

type failingSettingsRepo struct{}

func (failingSettingsRepo) Get() (*models.BookingSettings, error) {
	return nil, errors.New("mongo is down")
}

func (failingSettingsRepo) Update(models.SettingsUpdate) error {
	return errors.New("mongo is down")
}
