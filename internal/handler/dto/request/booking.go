package request

import (
	"strings"

	"party-rental/internal/domain/booking"
)

type CreateBookingRequest struct {
	CustomerName     string   `json:"customerName" binding:"required"`
	CustomerEmail    string   `json:"customerEmail" binding:"required"`
	CustomerPhone    string   `json:"customerPhone" binding:"required"`
	MachineType      string   `json:"machineType" binding:"required"`
	Capacity         int      `json:"capacity" binding:"required"`
	Mixers           []string `json:"mixers"`
	RentalDate       string   `json:"rentalDate" binding:"required"`
	ReturnDate       string   `json:"returnDate" binding:"required"`
	EventAddress     string   `json:"eventAddress" binding:"required"`
	Notes            string   `json:"notes"`
	PaymentReference *string  `json:"paymentReference,omitempty"`
}

// ToDomain carries the Idempotency-Key header along with the body.
func (r CreateBookingRequest) ToDomain(idempotencyKey string) booking.Request {
	req := booking.Request{
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		MachineType:      r.MachineType,
		Capacity:         r.Capacity,
		Mixers:           r.Mixers,
		RentalDate:       r.RentalDate,
		ReturnDate:       r.ReturnDate,
		EventAddress:     r.EventAddress,
		Notes:            r.Notes,
		PaymentReference: r.GetPaymentReference(),
	}
	if key := strings.TrimSpace(idempotencyKey); key != "" {
		req.IdempotencyKey = &key
	}
	return req
}

func (r CreateBookingRequest) GetPaymentReference() *string {
	if r.PaymentReference == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PaymentReference)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"`
}
