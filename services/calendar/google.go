package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"meetsync/config"
	"meetsync/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleService implements Service against the Google Calendar API, building
// an authenticated client per call from the owner's stored tokens. The token
// source refreshes expired access tokens transparently via the refresh token.
type GoogleService struct {
	conf *oauth2.Config
}

// NewGoogleService creates a Google Calendar service from app configuration.
func NewGoogleService() *GoogleService {
	return &GoogleService{
		conf: &oauth2.Config{
			ClientID:     config.AppConfig.GoogleClientID,
			ClientSecret: config.AppConfig.GoogleClientSecret,
			RedirectURL:  config.AppConfig.GoogleCallbackURL,
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *GoogleService) client(ctx context.Context, creds Credentials) (*gcal.Service, error) {
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	}
	httpClient := oauth2.NewClient(ctx, s.conf.TokenSource(ctx, token))
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return svc, nil
}

func (s *GoogleService) listRaw(ctx context.Context, creds Credentials, rangeStart, rangeEnd time.Time, calendarID string) ([]*gcal.Event, error) {
	svc, err := s.client(ctx, creds)
	if err != nil {
		return nil, err
	}

	res, err := svc.Events.List(calendarID).
		TimeMin(rangeStart.Format(time.RFC3339)).
		TimeMax(rangeEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return res.Items, nil
}

// parseEventTime handles both timed events (DateTime) and all-day events (Date).
func parseEventTime(edt *gcal.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("event has no time")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	return time.Parse("2006-01-02", edt.Date)
}

// ListBusyIntervals returns the busy intervals for events in range. Events
// whose times cannot be parsed are skipped rather than failing the whole day.
func (s *GoogleService) ListBusyIntervals(ctx context.Context, creds Credentials, rangeStart, rangeEnd time.Time, calendarID string) ([]models.TimeInterval, error) {
	items, err := s.listRaw(ctx, creds, rangeStart, rangeEnd, calendarID)
	if err != nil {
		return nil, err
	}

	var busy []models.TimeInterval
	for _, item := range items {
		start, err := parseEventTime(item.Start)
		if err != nil {
			continue
		}
		end, err := parseEventTime(item.End)
		if err != nil {
			continue
		}
		busy = append(busy, models.TimeInterval{Start: start, End: end})
	}
	return busy, nil
}

// ListEvents returns event snapshots in range, for the admin dashboard.
func (s *GoogleService) ListEvents(ctx context.Context, creds Credentials, rangeStart, rangeEnd time.Time, calendarID string) ([]Event, error) {
	items, err := s.listRaw(ctx, creds, rangeStart, rangeEnd, calendarID)
	if err != nil {
		return nil, err
	}

	var events []Event
	for _, item := range items {
		start, err := parseEventTime(item.Start)
		if err != nil {
			continue
		}
		end, err := parseEventTime(item.End)
		if err != nil {
			continue
		}
		events = append(events, Event{
			ID:       item.Id,
			Title:    item.Summary,
			Interval: models.TimeInterval{Start: start, End: end},
			Status:   item.Status,
		})
	}
	return events, nil
}

// CheckAvailability reports whether the interval is free of events.
func (s *GoogleService) CheckAvailability(ctx context.Context, creds Credentials, interval models.TimeInterval, calendarID string) (bool, error) {
	busy, err := s.ListBusyIntervals(ctx, creds, interval.Start, interval.End, calendarID)
	if err != nil {
		return false, err
	}
	for _, b := range busy {
		if interval.Overlaps(b) {
			return false, nil
		}
	}
	return true, nil
}

// CreateEvent inserts an event with email and popup reminders, notifying all
// attendees, and returns its identifier.
func (s *GoogleService) CreateEvent(ctx context.Context, creds Credentials, details EventDetails, calendarID string) (string, error) {
	svc, err := s.client(ctx, creds)
	if err != nil {
		return "", err
	}

	attendees := make([]*gcal.EventAttendee, 0, len(details.Attendees))
	for _, email := range details.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	event := &gcal.Event{
		Summary:     details.Title,
		Description: details.Description,
		Start: &gcal.EventDateTime{
			DateTime: details.Interval.Start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: details.Interval.End.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: attendees,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert(calendarID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// DeleteEvent removes an event, notifying attendees. Absence of the event is
// not an error.
func (s *GoogleService) DeleteEvent(ctx context.Context, creds Credentials, eventID, calendarID string) error {
	svc, err := s.client(ctx, creds)
	if err != nil {
		return err
	}

	err = svc.Events.Delete(calendarID, eventID).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return nil
		}
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}
