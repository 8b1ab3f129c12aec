// Package recommendation suggests a machine tier for an event.
package recommendation

import (
	"fmt"
	"math"
	"time"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/pkg/calendar"
)

type Confidence string

// Only ConfidenceHigh is produced today.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	summerMultiplier  = 1.25
	weekendMultiplier = 1.1

	singleMaxGuests = 30
	doubleMaxGuests = 60
)

type Recommendation struct {
	MachineType     catalog.MachineType
	Reason          string
	Confidence      Confidence
	SuggestedMixers []string
}

// Recommend returns nil when guestCount is not positive.
func Recommend(guestCount int, eventDate calendar.Date) *Recommendation {
	if guestCount <= 0 {
		return nil
	}

	adjusted := AdjustedGuestCount(guestCount, eventDate)

	switch {
	case adjusted <= singleMaxGuests:
		return &Recommendation{
			MachineType:     catalog.MachineSingle,
			Reason:          fmt.Sprintf("Perfect for %d guests. A single tank keeps a smaller party well stocked.", guestCount),
			Confidence:      ConfidenceHigh,
			SuggestedMixers: []string{catalog.MixerMargarita.String()},
		}
	case adjusted <= doubleMaxGuests:
		return &Recommendation{
			MachineType: catalog.MachineDouble,
			Reason:      fmt.Sprintf("Perfect for %d guests. Two tanks let you serve two flavors at once.", guestCount),
			Confidence:  ConfidenceHigh,
			SuggestedMixers: []string{
				catalog.MixerMargarita.String(),
				catalog.MixerPinaColada.String(),
			},
		}
	default:
		return &Recommendation{
			MachineType: catalog.MachineTriple,
			Reason:      fmt.Sprintf("Perfect for %d guests. Three tanks keep a big crowd served all night.", guestCount),
			Confidence:  ConfidenceHigh,
			SuggestedMixers: []string{
				catalog.MixerMargarita.String(),
				catalog.MixerPinaColada.String(),
				catalog.MixerStrawberryDaiquiri.String(),
			},
		}
	}
}

// AdjustedGuestCount scales guests by the summer and weekend demand factors.
func AdjustedGuestCount(guestCount int, eventDate calendar.Date) int {
	s, w := 1.0, 1.0
	if isSummer(eventDate) {
		s = summerMultiplier
	}
	if eventDate.IsWeekend() {
		w = weekendMultiplier
	}
	return int(math.Ceil(float64(guestCount) * s * w))
}

func isSummer(d calendar.Date) bool {
	return d.Month >= time.June && d.Month <= time.September
}
