package response

import (
	"time"

	"party-rental/internal/usecase/queries"
)

type BlackoutResponse struct {
	ID        string    `json:"id"`
	StartDate string    `json:"startDate"`
	EndDate   *string   `json:"endDate,omitempty"`
	Type      string    `json:"type"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBlackoutView(v *queries.BlackoutView) BlackoutResponse {
	resp := BlackoutResponse{
		ID:        v.ID.String(),
		StartDate: v.StartDate.String(),
		Type:      v.Type,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Reason:    v.Reason,
		CreatedBy: v.CreatedBy.String(),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.EndDate != nil {
		end := v.EndDate.String()
		resp.EndDate = &end
	}
	return resp
}

func FromBlackoutViews(vs []*queries.BlackoutView) []BlackoutResponse {
	out := make([]BlackoutResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBlackoutView(v))
	}
	return out
}
