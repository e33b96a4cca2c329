package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"meetsync/config"
	"meetsync/models"
	"meetsync/services/meeting"
	"meetsync/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends invitation and cancellation emails over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	loc    *time.Location
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer(loc *time.Location) (*SMTPMailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("mailer initialization error: SMTP host not configured")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		loc:    loc,
	}, nil
}

type emailData struct {
	RecipientName  string
	OrganizerName  string
	Title          string
	Description    string
	Date           string
	TimeRange      string
	Online         bool
	PlatformName   string
	PlatformColor  string
	MeetingLink    string
	Address        string
	MapsLink       string
	Notes          string
}

func (m *SMTPMailer) buildData(booking *models.Booking, attendee models.Attendee, organizerName string) emailData {
	start := booking.Interval.Start.In(m.loc)
	end := booking.Interval.End.In(m.loc)

	data := emailData{
		RecipientName: attendee.Name,
		OrganizerName: organizerName,
		Title:         booking.Title,
		Description:   booking.Description,
		Date:          start.Format("Monday, January 2, 2006"),
		TimeRange:     fmt.Sprintf("%s - %s", start.Format("15:04"), end.Format("15:04")),
		Notes:         booking.Notes,
	}
	if data.RecipientName == "" {
		data.RecipientName = attendee.Email
	}

	if booking.MeetingType == models.MeetingOnline {
		data.Online = true
		data.PlatformName = meeting.DisplayName(booking.MeetingPlatform)
		data.PlatformColor = meeting.BrandColor(booking.MeetingPlatform)
		data.MeetingLink = booking.MeetingLink
	} else if booking.Location != nil {
		data.Address = booking.Location.FormattedAddress
		data.MapsLink = booking.Location.MapsLink
	}
	return data
}

func (m *SMTPMailer) send(booking *models.Booking, organizerName, subject string, tmpl *template.Template) []SendResult {
	results := make([]SendResult, 0, len(booking.Attendees))
	for _, attendee := range booking.Attendees {
		result := SendResult{Email: attendee.Email}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, m.buildData(booking, attendee, organizerName)); err != nil {
			result.Error = fmt.Sprintf("failed to render email: %v", err)
			results = append(results, result)
			continue
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", attendee.Email)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/html", body.String())

		if err := m.dialer.DialAndSend(msg); err != nil {
			utils.GetLogger().Warn("email delivery failed",
				zap.String("recipient", attendee.Email),
				zap.String("bookingId", booking.ID),
				zap.Error(err))
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Sent = true
		results = append(results, result)
	}
	return results
}

// SendInvitations emails every attendee an invitation. Failures are recorded
// per recipient and never abort the remaining sends.
func (m *SMTPMailer) SendInvitations(_ context.Context, booking *models.Booking, organizerName string) []SendResult {
	subject := fmt.Sprintf("Invitation: %s", booking.Title)
	return m.send(booking, organizerName, subject, invitationTemplate)
}

// SendCancellation emails every attendee a cancellation notice.
func (m *SMTPMailer) SendCancellation(_ context.Context, booking *models.Booking, organizerName string) []SendResult {
	subject := fmt.Sprintf("Cancelled: %s", booking.Title)
	return m.send(booking, organizerName, subject, cancellationTemplate)
}

// SendReminder emails every attendee shortly before the meeting starts.
func (m *SMTPMailer) SendReminder(_ context.Context, booking *models.Booking, organizerName string) []SendResult {
	subject := fmt.Sprintf("Reminder: %s", booking.Title)
	return m.send(booking, organizerName, subject, reminderTemplate)
}
