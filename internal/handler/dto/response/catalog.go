package response

import (
	"party-rental/internal/usecase/queries"
)

type CatalogResponse struct {
	Packages    []PackageResponse `json:"packages"`
	Mixers      []MixerResponse   `json:"mixers"`
	Extras      []ExtraResponse   `json:"extras"`
	DeliveryFee float64           `json:"deliveryFee"`
}

type PackageResponse struct {
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"basePrice"`
	MaxMixers   int      `json:"maxMixers"`
	Features    []string `json:"features"`
}

type MixerResponse struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ExtraResponse struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type AvailabilityResponse struct {
	Available   bool    `json:"available"`
	MachineType string  `json:"machineType"`
	Capacity    int     `json:"capacity"`
	Date        string  `json:"date"`
	Reason      *string `json:"reason,omitempty"`
}

type RecommendationResponse struct {
	MachineType     string   `json:"machineType"`
	Capacity        int      `json:"capacity"`
	Reason          string   `json:"reason"`
	Confidence      string   `json:"confidence"`
	SuggestedMixers []string `json:"suggestedMixers"`
}

func FromCatalogView(v *queries.CatalogView) CatalogResponse {
	resp := CatalogResponse{
		Packages:    make([]PackageResponse, 0, len(v.Packages)),
		Mixers:      make([]MixerResponse, 0, len(v.Mixers)),
		Extras:      make([]ExtraResponse, 0, len(v.Extras)),
		DeliveryFee: v.DeliveryFee,
	}
	for _, p := range v.Packages {
		resp.Packages = append(resp.Packages, PackageResponse{
			Type:        p.Type.String(),
			Capacity:    p.Capacity.Int(),
			Name:        p.Name,
			Description: p.Description,
			BasePrice:   p.BasePrice,
			MaxMixers:   p.MaxMixers,
			Features:    p.Features,
		})
	}
	for _, m := range v.Mixers {
		resp.Mixers = append(resp.Mixers, MixerResponse{
			Key:         m.Key,
			Label:       m.Label,
			Description: m.Description,
			Price:       m.Price,
		})
	}
	for _, e := range v.Extras {
		resp.Extras = append(resp.Extras, ExtraResponse{
			Key:         e.Key,
			Name:        e.Name,
			Description: e.Description,
			Price:       e.Price,
		})
	}
	return resp
}

func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	return AvailabilityResponse{
		Available:   v.Available,
		MachineType: v.MachineType,
		Capacity:    v.Capacity,
		Date:        v.Date.String(),
		Reason:      v.Reason,
	}
}

// FromRecommendationView returns nil for a nil view so the body encodes as null.
func FromRecommendationView(v *queries.RecommendationView) *RecommendationResponse {
	if v == nil {
		return nil
	}
	return &RecommendationResponse{
		MachineType:     v.MachineType,
		Capacity:        v.Capacity,
		Reason:          v.Reason,
		Confidence:      v.Confidence,
		SuggestedMixers: v.SuggestedMixers,
	}
}
