package request

import "party-rental/internal/domain/availability"

type BlackoutRequest struct {
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   *string `json:"endDate,omitempty"`
	Type      string  `json:"type"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    string  `json:"reason"`
}

func (r BlackoutRequest) ToDomain() availability.BlackoutInput {
	return availability.BlackoutInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Type:      r.Type,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
	}
}

type ListBlackoutsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
