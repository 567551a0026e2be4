package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetingTypeByID(t *testing.T) {
	mt, ok := MeetingTypeByID(MeetingDiscovery)
	assert.True(t, ok)
	assert.Equal(t, "Free Discovery Call", mt.Name)
	assert.Equal(t, 15, mt.Duration)

	_, ok = MeetingTypeByID("standup")
	assert.False(t, ok)
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, BookingStatus("archived").Valid())
}
