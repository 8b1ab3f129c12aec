package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationKindEmail = "email"

	NotificationTopicBookingConfirmation = "booking.confirmation"
	NotificationTopicBookingStatus       = "booking.status"
	NotificationTopicContactReceived     = "contact.received"
)

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusDead   = "dead"
)

// NotificationJob is an outbox row claimed by the dispatcher. Attempts counts
// the delivery tries made before this one.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

// BookingNotification is the outbox payload for booking emails.
type BookingNotification struct {
	BookingID     uuid.UUID `json:"bookingId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	MachineType   string    `json:"machineType"`
	Capacity      int       `json:"capacity"`
	Mixers        []string  `json:"mixers"`
	RentalDate    string    `json:"rentalDate"`
	ReturnDate    string    `json:"returnDate"`
	EventAddress  string    `json:"eventAddress"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
}

// ContactNotification is the outbox payload sent to the business inbox.
type ContactNotification struct {
	ContactID uuid.UUID `json:"contactId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
}

type EmailMessage struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}
