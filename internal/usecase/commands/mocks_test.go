//go:build unit

package commands

import (
	"context"
	"time"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/contact"
	"party-rental/internal/domain/settings"
	"party-rental/internal/domain/user"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/usecase/queries"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs every transaction body once against the same mocks and
// counts the bodies that would have committed.
type fakeUoW struct {
	tx      *fakeTx
	commits int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		bookings:      new(MockBookingRepository),
		blackouts:     new(MockBlackoutRepository),
		settings:      new(MockSettingsRepository),
		notifications: new(MockNotificationRepository),
		users:         new(MockUserRepository),
		reads:         new(MockCommandReads),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := fn(ctx, u.tx); err != nil {
		return err
	}
	u.commits++
	return nil
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	bookings      *MockBookingRepository
	blackouts     *MockBlackoutRepository
	settings      *MockSettingsRepository
	notifications *MockNotificationRepository
	users         *MockUserRepository
	reads         *MockCommandReads
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Blackouts() shared.BlackoutRepository         { return t.blackouts }
func (t *fakeTx) Settings() shared.SettingsRepository          { return t.settings }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() sqlstore.DBTX                            { return nil }

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type MockBlackoutRepository struct {
	mock.Mock
}

func (m *MockBlackoutRepository) Create(ctx context.Context, b *availability.BlackoutPeriod) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBlackoutRepository) Update(ctx context.Context, b *availability.BlackoutPeriod) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBlackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	return m.Called(ctx, s).Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	return m.Called(ctx, kind, topic, payload, runAt).Error(0)
}

func (m *MockNotificationRepository) Lease(ctx context.Context, jobID uuid.UUID, until time.Time) error {
	return m.Called(ctx, jobID, until).Error(0)
}

func (m *MockNotificationRepository) MarkSent(ctx context.Context, job shared.NotificationJob) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockNotificationRepository) MarkFailed(ctx context.Context, job shared.NotificationJob, lastError string, retryAt *time.Time) error {
	return m.Called(ctx, job, lastError, retryAt).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockCommandReads struct {
	mock.Mock
}

func (m *MockCommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockCommandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockCommandReads) BookingByIdempotencyKey(ctx context.Context, key string) (*booking.Booking, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockCommandReads) ActiveReservations(ctx context.Context, machineType catalog.MachineType, capacity catalog.Capacity, from, to calendar.Date) ([]availability.Reservation, error) {
	args := m.Called(ctx, machineType, capacity, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.Reservation), args.Error(1)
}

func (m *MockCommandReads) OverdueBookings(ctx context.Context, today calendar.Date, limit int) ([]*booking.Booking, error) {
	args := m.Called(ctx, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockCommandReads) BlackoutByID(ctx context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.BlackoutPeriod), args.Error(1)
}

func (m *MockCommandReads) BlackoutsCovering(ctx context.Context, from, to calendar.Date) ([]*availability.BlackoutPeriod, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*availability.BlackoutPeriod), args.Error(1)
}

func (m *MockCommandReads) Settings(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}

func (m *MockCommandReads) DueNotificationJobs(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shared.NotificationJob), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Contact), args.Error(1)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, c *contact.Contact) error {
	return m.Called(ctx, c).Error(0)
}

type MockSettingsCache struct {
	mock.Mock
}

func (m *MockSettingsCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg shared.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.Error(1)
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.String(1), args.Error(2)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) TokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}
