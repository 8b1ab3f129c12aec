package response

import "party-rental/internal/usecase/queries"

type PriceResponse struct {
	BasePrice     float64 `json:"basePrice"`
	MixerPrice    float64 `json:"mixerPrice"`
	DeliveryFee   float64 `json:"deliveryFee"`
	SalesTax      float64 `json:"salesTax"`
	ProcessingFee float64 `json:"processingFee"`
	Total         float64 `json:"total"`
}

func FromPriceView(v queries.PriceView) PriceResponse {
	return PriceResponse{
		BasePrice:     v.BasePrice,
		MixerPrice:    v.MixerPrice,
		DeliveryFee:   v.DeliveryFee,
		SalesTax:      v.SalesTax,
		ProcessingFee: v.ProcessingFee,
		Total:         v.Total,
	}
}
