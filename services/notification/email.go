package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"meetdesk/config"
	"meetdesk/models"
)

// EmailPayload is the body posted to the email delivery endpoint.
type EmailPayload struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// EmailNotificationService delivers booking emails by posting to the
// configured delivery endpoint.
type EmailNotificationService struct {
	Endpoint string
	From     string
	Client   *http.Client
	Logger   *zap.Logger
}

// NewEmailNotificationService builds a notifier from app config.
func NewEmailNotificationService(logger *zap.Logger) *EmailNotificationService {
	return &EmailNotificationService{
		Endpoint: config.AppConfig.NotifyEndpoint,
		From:     config.AppConfig.NotifyFrom,
		Client:   &http.Client{Timeout: 5 * time.Second},
		Logger:   logger,
	}
}

func (svc *EmailNotificationService) send(payload EmailPayload) error {
	if svc.Endpoint == "" {
		svc.Logger.Debug("email endpoint not configured, skipping send",
			zap.String("subject", payload.Subject))
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding email payload failed: %w", err)
	}

	resp, err := svc.Client.Post(svc.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

func bookingDetailsHTML(booking *models.Booking) string {
	name := string(booking.MeetingType)
	if mt, ok := models.MeetingTypeByID(booking.MeetingType); ok {
		name = mt.Name
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<div style="font-family: sans-serif; padding: 20px; color: #333;">`)
	fmt.Fprintf(buf, `<h2 style="color: #000;">%s</h2>`, name)
	fmt.Fprintf(buf, `<p><strong>Name:</strong> %s</p>`, booking.AttendeeName)
	fmt.Fprintf(buf, `<p><strong>Email:</strong> %s</p>`, booking.AttendeeEmail)
	if booking.AttendeePhone != "" {
		fmt.Fprintf(buf, `<p><strong>Phone:</strong> %s</p>`, booking.AttendeePhone)
	}
	if booking.CompanyName != "" {
		fmt.Fprintf(buf, `<p><strong>Company:</strong> %s</p>`, booking.CompanyName)
	}
	fmt.Fprintf(buf, `<p><strong>Date:</strong> %s</p>`, booking.ScheduledDate)
	fmt.Fprintf(buf, `<p><strong>Time:</strong> %s</p>`, booking.ScheduledTime)
	if booking.Message != "" {
		fmt.Fprintf(buf, `<p><strong>Message:</strong> %s</p>`, booking.Message)
	}
	fmt.Fprintf(buf, `<hr style="border: 1px solid #eee; margin: 20px 0;">`)
	fmt.Fprintf(buf, `<p style="font-size: 12px; color: #666;">This is an automated notification.</p>`)
	fmt.Fprintf(buf, `</div>`)
	return buf.String()
}

// SendBookingConfirmation emails both the attendee and the admin inbox.
func (svc *EmailNotificationService) SendBookingConfirmation(booking *models.Booking) error {
	html := bookingDetailsHTML(booking)
	subject := fmt.Sprintf("New Meeting Booking: %s", booking.AttendeeName)

	if err := svc.send(EmailPayload{
		To:      []string{svc.From},
		Subject: "[ADMIN] " + subject,
		HTML:    html,
	}); err != nil {
		return err
	}
	return svc.send(EmailPayload{
		To:      []string{booking.AttendeeEmail},
		Subject: "Your meeting is confirmed",
		HTML:    html,
	})
}

// SendBookingReminder emails the attendee ahead of the meeting start.
func (svc *EmailNotificationService) SendBookingReminder(booking *models.Booking) error {
	return svc.send(EmailPayload{
		To:      []string{booking.AttendeeEmail},
		Subject: "Reminder: your meeting is coming up",
		HTML:    bookingDetailsHTML(booking),
	})
}
