package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	LastLogin    pgtype.Timestamptz
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Bookings struct {
	ID               uuid.UUID
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	MachineType      string
	Capacity         int32
	Mixers           []string
	RentalDate       pgtype.Date
	ReturnDate       pgtype.Date
	EventAddress     string
	Status           string
	BasePrice        float64
	MixerPrice       float64
	DeliveryFee      float64
	SalesTax         float64
	ProcessingFee    float64
	Total            float64
	Notes            string
	PaymentReference pgtype.Text
	IdempotencyKey   pgtype.Text
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type BlackoutPeriods struct {
	ID        uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Type      string
	StartTime pgtype.Text
	EndTime   pgtype.Text
	Reason    string
	CreatedBy uuid.UUID
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Settings struct {
	ID                  int16
	Pricing             []byte
	DeliveryWindowStart pgtype.Text
	DeliveryWindowEnd   pgtype.Text
	UpdatedBy           pgtype.UUID
	UpdatedAt           pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
