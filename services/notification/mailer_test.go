package notification

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetsync/models"
)

func sampleBooking(meetingType string) *models.Booking {
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{
		ID:          "bk-1",
		Title:       "Quarterly Review",
		Description: "Q2 numbers",
		Interval:    models.TimeInterval{Start: start, End: start.Add(30 * time.Minute)},
		MeetingType: meetingType,
		Attendees: []models.Attendee{
			{Email: "ann@example.com", Name: "Ann"},
			{Email: "bob@example.com"},
		},
	}
	if meetingType == models.MeetingOnline {
		b.MeetingPlatform = "zoom"
		b.MeetingLink = "https://zoom.us/j/ABC123"
	} else {
		b.Location = &models.Location{
			FormattedAddress: "400 Broad St, Seattle, WA",
			MapsLink:         "https://www.bing.com/maps?cp=47.6~-122.3",
		}
	}
	return b
}

func render(t *testing.T, m *SMTPMailer, booking *models.Booking, attendee models.Attendee) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, invitationTemplate.Execute(&buf, m.buildData(booking, attendee, "Dana")))
	return buf.String()
}

func TestInvitationOnline(t *testing.T) {
	m := &SMTPMailer{loc: time.UTC}
	booking := sampleBooking(models.MeetingOnline)

	html := render(t, m, booking, booking.Attendees[0])

	assert.Contains(t, html, "Quarterly Review")
	assert.Contains(t, html, "Hi Ann,")
	assert.Contains(t, html, "Monday, June 16, 2025")
	assert.Contains(t, html, "10:00 - 10:30")
	assert.Contains(t, html, "Join on Zoom")
	assert.Contains(t, html, "#2D8CFF")
	assert.Contains(t, html, "https://zoom.us/j/ABC123")
	assert.NotContains(t, html, "Location:")
}

func TestInvitationOffline(t *testing.T) {
	m := &SMTPMailer{loc: time.UTC}
	booking := sampleBooking(models.MeetingOffline)

	html := render(t, m, booking, booking.Attendees[0])

	assert.Contains(t, html, "400 Broad St, Seattle, WA")
	assert.Contains(t, html, "Open in Maps")
	assert.NotContains(t, html, "Join on")
}

func TestRecipientNameFallsBackToEmail(t *testing.T) {
	m := &SMTPMailer{loc: time.UTC}
	booking := sampleBooking(models.MeetingOnline)

	html := render(t, m, booking, booking.Attendees[1])
	assert.Contains(t, html, "Hi bob@example.com,")
}

func TestTimesRenderedInMailerTimezone(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	require.NoError(t, err)

	m := &SMTPMailer{loc: nairobi}
	booking := sampleBooking(models.MeetingOnline)

	html := render(t, m, booking, booking.Attendees[0])
	assert.Contains(t, html, "13:00 - 13:30")
}

func TestCancellationTemplate(t *testing.T) {
	m := &SMTPMailer{loc: time.UTC}
	booking := sampleBooking(models.MeetingOnline)
	booking.Notes = "Rescheduling next week"

	var buf bytes.Buffer
	require.NoError(t, cancellationTemplate.Execute(&buf, m.buildData(booking, booking.Attendees[0], "Dana")))

	html := buf.String()
	assert.Contains(t, html, "Cancelled: Quarterly Review")
	assert.Contains(t, html, "Rescheduling next week")
}

func TestAllSent(t *testing.T) {
	assert.False(t, AllSent(nil))
	assert.False(t, AllSent([]SendResult{{Email: "a", Sent: true}, {Email: "b"}}))
	assert.True(t, AllSent([]SendResult{{Email: "a", Sent: true}, {Email: "b", Sent: true}}))
}
