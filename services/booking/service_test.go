package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	bookingRepo "meetsync/database/repository/booking"
	"meetsync/models"
	"meetsync/services/availability"
	"meetsync/services/calendar"
	"meetsync/services/geocode"
	"meetsync/services/meeting"
	"meetsync/services/notification"
)

// --- fakes ---

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	insertErr error
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (r *memBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) List(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBookingRepo) FindOverlapping(interval models.TimeInterval, statuses []string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		for _, st := range statuses {
			if b.Status == st && b.Interval.Overlaps(interval) {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (r *memBookingRepo) Insert(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) SetEmailSent(id string, sent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.EmailSent = sent
	}
	return nil
}

// memSlotLocks mirrors the granule-keyed advisory lock semantics.
type memSlotLocks struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemSlotLocks() *memSlotLocks {
	return &memSlotLocks{held: map[string]bool{}}
}

func (l *memSlotLocks) Acquire(_ context.Context, interval models.TimeInterval) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var keys []string
	start := interval.Start.UTC().Truncate(30 * time.Minute)
	for g := start; g.Before(interval.End.UTC()); g = g.Add(30 * time.Minute) {
		keys = append(keys, g.Format(time.RFC3339))
	}
	for _, k := range keys {
		if l.held[k] {
			return nil, bookingRepo.ErrSlotLocked
		}
	}
	for _, k := range keys {
		l.held[k] = true
	}
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for _, k := range keys {
			delete(l.held, k)
		}
	}, nil
}

type memUserRepo struct {
	users map[string]*models.User
	admin *models.User
}

func (r *memUserRepo) GetByID(id string) (*models.User, error)    { return r.users[id], nil }
func (r *memUserRepo) GetByGoogleID(string) (*models.User, error) { return nil, nil }
func (r *memUserRepo) GetByEmail(string) (*models.User, error)    { return nil, nil }
func (r *memUserRepo) GetAdmin() (*models.User, error)            { return r.admin, nil }
func (r *memUserRepo) GetAllWithProjection(bson.M) ([]models.User, error) {
	return nil, nil
}
func (r *memUserRepo) Create(*models.User) error { return nil }
func (r *memUserRepo) Update(*models.User) error { return nil }
func (r *memUserRepo) SetAdminStatus(string, bool) (*models.User, error) {
	return nil, nil
}
func (r *memUserRepo) SetSuperAdminStatus(string, bool) (*models.User, error) {
	return nil, nil
}
func (r *memUserRepo) RoleCounts() (int64, int64, int64, error) { return 0, 0, 0, nil }

type fakeCalendar struct {
	mu            sync.Mutex
	busy          []models.TimeInterval
	nextEventID   int
	created       []string
	deleted       []string
	failCalendars map[string]error
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{failCalendars: map[string]error{}}
}

func (c *fakeCalendar) ListBusyIntervals(context.Context, calendar.Credentials, time.Time, time.Time, string) ([]models.TimeInterval, error) {
	return c.busy, nil
}

func (c *fakeCalendar) ListEvents(context.Context, calendar.Credentials, time.Time, time.Time, string) ([]calendar.Event, error) {
	return nil, nil
}

func (c *fakeCalendar) CheckAvailability(_ context.Context, _ calendar.Credentials, interval models.TimeInterval, _ string) (bool, error) {
	for _, b := range c.busy {
		if interval.Overlaps(b) {
			return false, nil
		}
	}
	return true, nil
}

func (c *fakeCalendar) CreateEvent(_ context.Context, _ calendar.Credentials, _ calendar.EventDetails, calendarID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failCalendars[calendarID]; err != nil {
		return "", err
	}
	c.nextEventID++
	id := fmt.Sprintf("evt-%d", c.nextEventID)
	c.created = append(c.created, calendarID+"/"+id)
	return id, nil
}

func (c *fakeCalendar) DeleteEvent(_ context.Context, _ calendar.Credentials, eventID, calendarID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, calendarID+"/"+eventID)
	return nil
}

type fakeMailer struct {
	mu            sync.Mutex
	invitations   int
	cancellations int
	results       []notification.SendResult
}

func (m *fakeMailer) SendInvitations(_ context.Context, b *models.Booking, _ string) []notification.SendResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invitations++
	if m.results != nil {
		return m.results
	}
	out := make([]notification.SendResult, 0, len(b.Attendees))
	for _, a := range b.Attendees {
		out = append(out, notification.SendResult{Email: a.Email, Sent: true})
	}
	return out
}

func (m *fakeMailer) SendCancellation(context.Context, *models.Booking, string) []notification.SendResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancellations++
	return nil
}

func (m *fakeMailer) SendReminder(context.Context, *models.Booking, string) []notification.SendResult {
	return nil
}

type unavailableGeocoder struct{}

func (unavailableGeocoder) Geocode(context.Context, string) (*geocode.Result, error) {
	return nil, geocode.ErrGeocodeUnavailable
}
func (unavailableGeocoder) Suggest(context.Context, string) ([]geocode.Suggestion, error) {
	return nil, geocode.ErrGeocodeUnavailable
}

// --- fixture ---

type fixture struct {
	svc    *DefaultBookingService
	repo   *memBookingRepo
	cal    *fakeCalendar
	mailer *fakeMailer
}

var testNow = time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemBookingRepo()
	cal := newFakeCalendar()
	mailer := &fakeMailer{}
	users := &memUserRepo{
		users: map[string]*models.User{
			"u-1": {ID: "u-1", Email: "ann@example.com", Name: "Ann", AccessToken: "at-u1"},
			"u-2": {ID: "u-2", Email: "bob@example.com", Name: "Bob", AccessToken: "at-u2"},
		},
		admin: &models.User{ID: "adm", Email: "admin@example.com", Name: "Dana", IsAdmin: true, AccessToken: "at-adm"},
	}

	svc, err := NewDefaultBookingService(
		repo, newMemSlotLocks(), users, cal,
		meeting.NewDefaultLinkGenerator(), unavailableGeocoder{}, mailer,
		availability.TimeOfDay{Hour: 9}, availability.TimeOfDay{Hour: 17},
		time.UTC, "admin-cal",
	)
	require.NoError(t, err)
	svc.now = func() time.Time { return testNow }
	svc.sleep = func(time.Duration) {}
	return &fixture{svc: svc, repo: repo, cal: cal, mailer: mailer}
}

func onlineRequest(start time.Time) CreateBookingRequest {
	return CreateBookingRequest{
		Start:           start,
		DurationMinutes: 30,
		Title:           "Sync",
		MeetingType:     models.MeetingOnline,
		MeetingPlatform: "zoom",
		Attendees:       []models.Attendee{{Email: "guest@example.com", Name: "Guest"}},
	}
}

// --- availability ---

func TestAvailableSlotsFullDay(t *testing.T) {
	f := newFixture(t)
	// A future day: the whole window is open.
	slots, err := f.svc.AvailableSlots(context.Background(), models.AvailabilityRequest{Date: "2025-06-17"})
	require.NoError(t, err)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00 - 09:30", slots[0].Formatted)
	assert.Equal(t, "16:30 - 17:00", slots[15].Formatted)
}

func TestAvailableSlotsMergesStoredBookings(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	f.repo.bookings["b-1"] = &models.Booking{
		ID:     "b-1",
		Status: models.StatusConfirmed,
		Interval: models.TimeInterval{
			Start: day.Add(10 * time.Hour),
			End:   day.Add(11 * time.Hour),
		},
	}

	slots, err := f.svc.AvailableSlots(context.Background(), models.AvailabilityRequest{Date: "2025-06-17"})
	require.NoError(t, err)
	require.Len(t, slots, 14)
	for _, s := range slots {
		assert.False(t, s.Start.Hour() == 10, "stored booking should block 10:00 and 10:30")
	}
}

func TestAvailableSlotsRejectsPastDate(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AvailableSlots(context.Background(), models.AvailabilityRequest{Date: "2025-06-15"})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestAvailableSlotsRejectsBadDuration(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AvailableSlots(context.Background(), models.AvailabilityRequest{Date: "2025-06-17", DurationMinutes: 7})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

// --- create ---

func TestCreateOnlineBooking(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	result, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))
	require.NoError(t, err)

	b := result.Booking
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Contains(t, b.MeetingLink, "zoom.us")
	assert.NotEmpty(t, b.AdminCalendarEventID)
	assert.NotEmpty(t, b.UserCalendarEventID)
	assert.True(t, b.EmailSent)
	assert.Equal(t, models.ResponseNeedsAction, b.Attendees[0].ResponseStatus)
	require.Len(t, result.EmailResults, 1)
	assert.True(t, result.EmailResults[0].Sent)

	stored, err := f.repo.GetByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.EmailSent)
	assert.Len(t, f.cal.created, 2)
}

func TestCreateOfflineBookingKeepsAddressWhenGeocoderDown(t *testing.T) {
	f := newFixture(t)
	req := onlineRequest(time.Date(2025, 6, 16, 11, 0, 0, 0, time.UTC))
	req.MeetingType = models.MeetingOffline
	req.MeetingPlatform = ""
	req.Location = &models.Location{Address: "1 Main St", City: "Springfield"}

	result, err := f.svc.Create(context.Background(), "u-1", req)
	require.NoError(t, err)

	loc := result.Booking.Location
	require.NotNil(t, loc)
	assert.Equal(t, "1 Main St", loc.Address)
	assert.Nil(t, loc.Coordinates)
	assert.Equal(t, "1 Main St, Springfield", loc.FormattedAddress)
	assert.Empty(t, result.Booking.MeetingLink)
}

func TestCreateRejectsPastStart(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), "u-1", onlineRequest(testNow.Add(-time.Hour)))
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestCreateRejectsUnalignedStart(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), "u-1",
		onlineRequest(time.Date(2025, 6, 16, 10, 15, 0, 0, time.UTC)))
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestCreateRejectsOutsideWorkWindow(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), "u-1",
		onlineRequest(time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)))
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestCreateRejectsUnsupportedPlatform(t *testing.T) {
	f := newFixture(t)
	req := onlineRequest(time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))
	req.MeetingPlatform = "webex"
	_, err := f.svc.Create(context.Background(), "u-1", req)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestCreateConflictWithExistingBooking(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), "u-2", onlineRequest(start))
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeSlotUnavailable, svcErr.Code)
}

func TestCreateConflictWithCalendarEvent(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	f.cal.busy = []models.TimeInterval{{Start: start, End: start.Add(time.Hour)}}

	_, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeSlotUnavailable, svcErr.Code)
}

func TestCreateCompensatesAdminEventWhenUserEventFails(t *testing.T) {
	f := newFixture(t)
	f.cal.failCalendars["primary"] = errors.New("user calendar rejected the event")

	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeExternalFailure, svcErr.Code)
	require.Len(t, f.cal.deleted, 1)
	assert.Contains(t, f.cal.deleted[0], "admin-cal/")

	// The slot must be bookable again afterwards.
	delete(f.cal.failCalendars, "primary")
	_, err = f.svc.Create(context.Background(), "u-2", onlineRequest(start))
	require.NoError(t, err)
}

func TestCreateCompensatesBothEventsWhenInsertFails(t *testing.T) {
	f := newFixture(t)
	f.repo.insertErr = errors.New("write concern failed")

	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeExternalFailure, svcErr.Code)
	assert.Len(t, f.cal.deleted, 2)
}

func TestCreateRecordsPartialEmailFailure(t *testing.T) {
	f := newFixture(t)
	f.mailer.results = []notification.SendResult{
		{Email: "guest@example.com", Sent: true},
		{Email: "other@example.com", Error: "mailbox full"},
	}

	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	result, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))
	require.NoError(t, err)

	assert.False(t, result.Booking.EmailSent)
	stored, _ := f.repo.GetByID(result.Booking.ID)
	assert.False(t, stored.EmailSent)
}

func TestConcurrentCreatesOnlyOneWins(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Create(context.Background(), "u-1", onlineRequest(start))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, CodeSlotUnavailable, svcErr.Code)
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, f.repo.bookings, 1)
}

// --- retry ---

func TestCreateEventRetriesTransientFailures(t *testing.T) {
	f := newFixture(t)
	attempts := 0
	flaky := &flakyCalendar{fakeCalendar: f.cal, failuresLeft: 2, attempts: &attempts}
	f.svc.Calendar = flaky

	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	result, err := f.svc.Create(context.Background(), "u-1", onlineRequest(start))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Booking.AdminCalendarEventID)
	assert.GreaterOrEqual(t, attempts, 3)
}

type flakyCalendar struct {
	*fakeCalendar
	failuresLeft int
	attempts     *int
}

func (c *flakyCalendar) CreateEvent(ctx context.Context, creds calendar.Credentials, details calendar.EventDetails, calendarID string) (string, error) {
	*c.attempts++
	if c.failuresLeft > 0 {
		c.failuresLeft--
		return "", errors.New("temporary backend error")
	}
	return c.fakeCalendar.CreateEvent(ctx, creds, details, calendarID)
}

// --- cancel and manage ---

func createdBooking(t *testing.T, f *fixture, userID string, start time.Time) *models.Booking {
	t.Helper()
	result, err := f.svc.Create(context.Background(), userID, onlineRequest(start))
	require.NoError(t, err)
	return result.Booking
}

func TestCancelByOwner(t *testing.T) {
	f := newFixture(t)
	b := createdBooking(t, f, "u-1", time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	owner := &models.User{ID: "u-1"}
	updated, err := f.svc.Cancel(context.Background(), owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Len(t, f.cal.deleted, 2)
	assert.Equal(t, 1, f.mailer.cancellations)
}

func TestCancelByStrangerForbidden(t *testing.T) {
	f := newFixture(t)
	b := createdBooking(t, f, "u-1", time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	stranger := &models.User{ID: "u-2"}
	_, err := f.svc.Cancel(context.Background(), stranger, b.ID)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeForbidden, svcErr.Code)
}

func TestCancelByAdmin(t *testing.T) {
	f := newFixture(t)
	b := createdBooking(t, f, "u-1", time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	adminActor := &models.User{ID: "adm", IsAdmin: true}
	updated, err := f.svc.Cancel(context.Background(), adminActor, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

func TestCancelTwiceRejected(t *testing.T) {
	f := newFixture(t)
	b := createdBooking(t, f, "u-1", time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	owner := &models.User{ID: "u-1"}
	_, err := f.svc.Cancel(context.Background(), owner, b.ID)
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), owner, b.ID)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestCancelledSlotIsBookableAgain(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	b := createdBooking(t, f, "u-1", start)

	_, err := f.svc.Cancel(context.Background(), &models.User{ID: "u-1"}, b.ID)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), "u-2", onlineRequest(start))
	require.NoError(t, err)
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	f := newFixture(t)
	b := createdBooking(t, f, "u-1", time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	_, err := f.svc.GetByID(context.Background(), &models.User{ID: "u-2"}, b.ID)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeForbidden, svcErr.Code)

	got, err := f.svc.GetByID(context.Background(), &models.User{ID: "u-2", IsAdmin: true}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestUpdateStatusGuardsTransitions(t *testing.T) {
	f := newFixture(t)
	b := createdBooking(t, f, "u-1", time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	_, err := f.svc.UpdateStatus(context.Background(), b.ID, "archived")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)

	updated, err := f.svc.UpdateStatus(context.Background(), b.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	_, err = f.svc.Cancel(context.Background(), &models.User{ID: "u-1"}, b.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), b.ID, models.StatusConfirmed)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdateStatus(context.Background(), "missing", models.StatusConfirmed)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeNotFound, svcErr.Code)
}
