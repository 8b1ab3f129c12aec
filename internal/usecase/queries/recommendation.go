package queries

import (
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/recommendation"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
)

type RecommendationView struct {
	MachineType     string
	Capacity        int
	Reason          string
	Confidence      string
	SuggestedMixers []string
}

type RecommendationQueries interface {
	Recommend(guestCount int, eventDate string) (*RecommendationView, error)
}

type recommendationQueriesImpl struct{}

func NewRecommendationQueries() RecommendationQueries {
	return &recommendationQueriesImpl{}
}

// Recommend returns nil without error for a non-positive guest count.
func (q *recommendationQueriesImpl) Recommend(guestCount int, eventDate string) (*RecommendationView, error) {
	if guestCount <= 0 {
		return nil, nil
	}

	date, err := calendar.Parse(eventDate)
	if err != nil {
		return nil, errs.Invalid(err)
	}

	rec := recommendation.Recommend(guestCount, date)
	if rec == nil {
		return nil, nil
	}

	return &RecommendationView{
		MachineType:     rec.MachineType.String(),
		Capacity:        catalog.CapacityFor(rec.MachineType).Int(),
		Reason:          rec.Reason,
		Confidence:      string(rec.Confidence),
		SuggestedMixers: rec.SuggestedMixers,
	}, nil
}
