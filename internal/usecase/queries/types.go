package queries

import (
	"time"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/contact"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
	"party-rental/internal/domain/user"
	"party-rental/internal/pkg/calendar"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     user.Role
	IsActive bool
}

type PriceView struct {
	BasePrice     float64
	MixerPrice    float64
	DeliveryFee   float64
	SalesTax      float64
	ProcessingFee float64
	Total         float64
}

func NewPriceView(b pricing.Breakdown) PriceView {
	return PriceView{
		BasePrice:     b.BasePrice,
		MixerPrice:    b.MixerPrice,
		DeliveryFee:   b.DeliveryFee,
		SalesTax:      b.SalesTax,
		ProcessingFee: b.ProcessingFee,
		Total:         b.Total,
	}
}

type BookingView struct {
	ID               uuid.UUID
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	MachineType      string
	Capacity         int
	Mixers           []string
	RentalDate       calendar.Date
	ReturnDate       calendar.Date
	EventAddress     string
	Status           string
	Price            PriceView
	Notes            string
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewBookingView(b *booking.Booking) *BookingView {
	customer := b.Customer()
	return &BookingView{
		ID:               b.ID(),
		CustomerName:     customer.Name(),
		CustomerEmail:    customer.Email(),
		CustomerPhone:    customer.Phone(),
		MachineType:      b.MachineType().String(),
		Capacity:         b.Capacity().Int(),
		Mixers:           b.Mixers(),
		RentalDate:       b.RentalDate(),
		ReturnDate:       b.ReturnDate(),
		EventAddress:     b.EventAddress().String(),
		Status:           b.Status().String(),
		Price:            NewPriceView(b.Price()),
		Notes:            b.Notes().String(),
		PaymentReference: b.PaymentReference(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

type BlackoutView struct {
	ID        uuid.UUID
	StartDate calendar.Date
	EndDate   *calendar.Date
	Type      string
	StartTime *string
	EndTime   *string
	Reason    string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBlackoutView(b *availability.BlackoutPeriod) *BlackoutView {
	v := &BlackoutView{
		ID:        b.ID(),
		StartDate: b.StartDate(),
		EndDate:   b.EndDate(),
		Type:      b.Type().String(),
		Reason:    b.Reason(),
		CreatedBy: b.CreatedBy(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
	if t := b.StartTime(); t != nil {
		s := t.String()
		v.StartTime = &s
	}
	if t := b.EndTime(); t != nil {
		s := t.String()
		v.EndTime = &s
	}
	return v
}

type SettingsView struct {
	Pricing             pricing.Overrides
	DeliveryWindowStart *string
	DeliveryWindowEnd   *string
	UpdatedBy           *uuid.UUID
	UpdatedAt           time.Time
}

func NewSettingsView(s *settings.Settings) *SettingsView {
	v := &SettingsView{
		Pricing:   s.Pricing,
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
	if t := s.DeliveryWindow.Start; t != nil {
		str := t.String()
		v.DeliveryWindowStart = &str
	}
	if t := s.DeliveryWindow.End; t != nil {
		str := t.String()
		v.DeliveryWindowEnd = &str
	}
	return v
}

type ContactView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewContactView(c *contact.Contact) *ContactView {
	return &ContactView{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Message:   c.Message(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
