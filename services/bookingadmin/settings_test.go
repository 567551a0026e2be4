package bookingadmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetdesk/models"
)

type stubSettingsRepo struct {
	settings models.BookingSettings
}

func (r *stubSettingsRepo) Get() (*models.BookingSettings, error) {
	copied := r.settings
	return &copied, nil
}

func (r *stubSettingsRepo) Update(update models.SettingsUpdate) error {
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

func newSettingsService() (*DefaultBookingAdminService, *stubSettingsRepo) {
	repo := &stubSettingsRepo{settings: models.DefaultBookingSettings("Asia/Kolkata")}
	return &DefaultBookingAdminService{SettingsRepo: repo}, repo
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func daysPtr(v []int) *[]int     { return &v }
func datesPtr(v []string) *[]string { return &v }
func availPtr(v []models.Availability) *[]models.Availability { return &v }

func TestUpdateSettingsRejections(t *testing.T) {
	tests := []struct {
		name   string
		update models.SettingsUpdate
		field  string
	}{
		{"unknown timezone", models.SettingsUpdate{Timezone: strPtr("Atlantis/Capital")}, "timezone"},
		{"slot too short", models.SettingsUpdate{SlotDuration: intPtr(10)}, "slotDuration"},
		{"negative buffer", models.SettingsUpdate{BufferTime: intPtr(-5)}, "bufferTime"},
		{"zero horizon", models.SettingsUpdate{AdvanceBookingDays: intPtr(0)}, "advanceBookingDays"},
		{"weekday out of range", models.SettingsUpdate{WorkingDays: daysPtr([]int{1, 7})}, "workingDays"},
		{"duplicate availability weekday", models.SettingsUpdate{Availability: availPtr([]models.Availability{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00", IsAvailable: true},
		})}, "availability"},
		{"overnight window", models.SettingsUpdate{Availability: availPtr([]models.Availability{
			{DayOfWeek: 1, StartTime: "22:00", EndTime: "06:00", IsAvailable: true},
		})}, "availability"},
		{"empty window", models.SettingsUpdate{Availability: availPtr([]models.Availability{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00", IsAvailable: true},
		})}, "availability"},
		{"malformed clock", models.SettingsUpdate{Availability: availPtr([]models.Availability{
			{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00", IsAvailable: true},
		})}, "availability"},
		{"malformed blocked date", models.SettingsUpdate{BlockedDates: datesPtr([]string{"next friday"})}, "blockedDates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newSettingsService()
			before := repo.settings

			err := svc.UpdateSettings(tt.update)
			var verr *SettingsValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, before, repo.settings, "a rejected update persists nothing")
		})
	}
}

func TestUpdateSettingsApplies(t *testing.T) {
	svc, repo := newSettingsService()

	err := svc.UpdateSettings(models.SettingsUpdate{
		SlotDuration: intPtr(60),
		BufferTime:   intPtr(0),
		WorkingDays:  daysPtr([]int{1, 3, 5}),
		BlockedDates: datesPtr([]string{"2026-10-02"}),
	})
	require.NoError(t, err)

	assert.Equal(t, 60, repo.settings.SlotDuration)
	assert.Equal(t, 0, repo.settings.BufferTime)
	assert.Equal(t, []int{1, 3, 5}, repo.settings.WorkingDays)
	assert.Equal(t, []string{"2026-10-02"}, repo.settings.BlockedDates)
	// Untouched fields keep their values.
	assert.Equal(t, "Asia/Kolkata", repo.settings.Timezone)
	assert.Equal(t, 30, repo.settings.AdvanceBookingDays)
}

func TestUpdateSettingsValidatesResultingState(t *testing.T) {
	svc, repo := newSettingsService()
	repo.settings.SlotDuration = 20

	// The update itself only touches the buffer, but validation runs against
	// the merged result, so the existing short slot duration still passes.
	err := svc.UpdateSettings(models.SettingsUpdate{BufferTime: intPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.settings.BufferTime)
}

func TestGetSettingsSeedsDefaults(t *testing.T) {
	svc, _ := newSettingsService()
	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, 30, settings.SlotDuration)
	assert.Equal(t, 15, settings.BufferTime)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, settings.WorkingDays)
}
