package response

import (
	"time"

	"party-rental/internal/usecase/queries"
)

type BookingResponse struct {
	ID               string        `json:"id"`
	CustomerName     string        `json:"customerName"`
	CustomerEmail    string        `json:"customerEmail"`
	CustomerPhone    string        `json:"customerPhone"`
	MachineType      string        `json:"machineType"`
	Capacity         int           `json:"capacity"`
	Mixers           []string      `json:"mixers"`
	RentalDate       string        `json:"rentalDate"`
	ReturnDate       string        `json:"returnDate"`
	EventAddress     string        `json:"eventAddress"`
	Status           string        `json:"status"`
	Price            PriceResponse `json:"price"`
	Notes            string        `json:"notes,omitempty"`
	PaymentReference *string       `json:"paymentReference,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	mixers := v.Mixers
	if mixers == nil {
		mixers = []string{}
	}
	return BookingResponse{
		ID:               v.ID.String(),
		CustomerName:     v.CustomerName,
		CustomerEmail:    v.CustomerEmail,
		CustomerPhone:    v.CustomerPhone,
		MachineType:      v.MachineType,
		Capacity:         v.Capacity,
		Mixers:           mixers,
		RentalDate:       v.RentalDate.String(),
		ReturnDate:       v.ReturnDate.String(),
		EventAddress:     v.EventAddress,
		Status:           v.Status,
		Price:            FromPriceView(v.Price),
		Notes:            v.Notes,
		PaymentReference: v.PaymentReference,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromBookingPage(p *queries.BookingPage) BookingListResponse {
	items := make([]BookingResponse, 0, len(p.Items))
	for _, v := range p.Items {
		items = append(items, FromBookingView(v))
	}
	return BookingListResponse{Items: items, NextCursor: p.NextCursor}
}
