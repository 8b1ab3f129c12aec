package request

type QuoteRequest struct {
	MachineType string   `json:"machineType" binding:"required"`
	Mixers      []string `json:"mixers"`
}

type AvailabilityQuery struct {
	MachineType string `form:"machineType" binding:"required"`
	Capacity    int    `form:"capacity" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

type RecommendationRequest struct {
	GuestCount int    `json:"guestCount"`
	RentalDate string `json:"rentalDate"`
}
