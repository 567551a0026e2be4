package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking represents one scheduled meeting.
//
// ScheduledDate and ScheduledTime are always stored in the admin timezone;
// Timezone records the attendee's browser timezone for display only and is
// never used to reinterpret the stored date/time.
type Booking struct {
	ID            string        `bson:"id" json:"id"` // UUID
	MeetingType   MeetingType   `bson:"meeting_type" json:"meetingType"`
	AttendeeName  string        `bson:"attendee_name" json:"attendeeName"`
	AttendeeEmail string        `bson:"attendee_email" json:"attendeeEmail"`
	AttendeePhone string        `bson:"attendee_phone,omitempty" json:"attendeePhone,omitempty"`
	CompanyName   string        `bson:"company_name,omitempty" json:"companyName,omitempty"`
	Message       string        `bson:"message,omitempty" json:"message,omitempty"`
	ScheduledDate string        `bson:"scheduled_date" json:"scheduledDate"` // "YYYY-MM-DD", admin timezone
	ScheduledTime string        `bson:"scheduled_time" json:"scheduledTime"` // "HH:MM", admin timezone
	Timezone      string        `bson:"timezone" json:"timezone"`            // attendee's IANA timezone, reference only
	Status        BookingStatus `bson:"status" json:"status"`
	ForwardedTo   string        `bson:"forwarded_to,omitempty" json:"forwardedTo,omitempty"`
	AdminNotes    string        `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}

// BookingUpdate carries the mutable fields of a booking for partial updates.
// Nil pointers mean "leave unchanged".
type BookingUpdate struct {
	MeetingType   *MeetingType   `bson:"meeting_type,omitempty"`
	AttendeeName  *string        `bson:"attendee_name,omitempty"`
	AttendeeEmail *string        `bson:"attendee_email,omitempty"`
	AttendeePhone *string        `bson:"attendee_phone,omitempty"`
	CompanyName   *string        `bson:"company_name,omitempty"`
	Message       *string        `bson:"message,omitempty"`
	ScheduledDate *string        `bson:"scheduled_date,omitempty"`
	ScheduledTime *string        `bson:"scheduled_time,omitempty"`
	Timezone      *string        `bson:"timezone,omitempty"`
	Status        *BookingStatus `bson:"status,omitempty"`
	ForwardedTo   *string        `bson:"forwarded_to,omitempty"`
	AdminNotes    *string        `bson:"admin_notes,omitempty"`
}
