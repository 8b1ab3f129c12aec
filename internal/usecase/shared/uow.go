package shared

import (
	"context"
	"time"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/settings"
	"party-rental/internal/domain/user"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/calendar"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read committed transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: check-then-write flows such as booking creation
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Blackouts() BlackoutRepository
	Settings() SettingsRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlstore.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingByIdempotencyKey(ctx context.Context, key string) (*booking.Booking, error)
	ActiveReservations(ctx context.Context, machineType catalog.MachineType, capacity catalog.Capacity, from, to calendar.Date) ([]availability.Reservation, error)
	OverdueBookings(ctx context.Context, today calendar.Date, limit int) ([]*booking.Booking, error)
	BlackoutByID(ctx context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error)
	BlackoutsCovering(ctx context.Context, from, to calendar.Date) ([]*availability.BlackoutPeriod, error)
	Settings(ctx context.Context) (*settings.Settings, error)
	DueNotificationJobs(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type BlackoutRepository interface {
	Create(ctx context.Context, b *availability.BlackoutPeriod) error
	Update(ctx context.Context, b *availability.BlackoutPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettingsRepository interface {
	Save(ctx context.Context, s *settings.Settings) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// Lease pushes run_at to until so other dispatch runs skip the job
	// while it is being sent.
	Lease(ctx context.Context, jobID uuid.UUID, until time.Time) error
	MarkSent(ctx context.Context, job NotificationJob) error
	MarkFailed(ctx context.Context, job NotificationJob, lastError string, retryAt *time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}
