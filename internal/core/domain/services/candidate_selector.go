package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/model/vendor"
)

// maxCandidates caps how many partners a single matching round notifies.
const maxCandidates = 5

// Candidate is a delivery partner eligible for an order, with the distance
// from the partner's last reported location to the vendor.
type Candidate struct {
	Partner    *courier.DeliveryPartner
	DistanceKm float64
}

// CandidateSelector is a pure domain service that picks the delivery
// partners eligible to be notified about an order.
//
// A partner is eligible when all of the following hold:
//   - status is Available with a known location,
//   - assigned to the vendor's service area,
//   - last reported location lies inside the area's boundary,
//   - distance to the vendor does not exceed the threshold.
//
// Candidates are returned sorted by distance ascending, capped at five per
// round. An empty result is a normal outcome, not an error.
type CandidateSelector struct{}

// NewCandidateSelector creates a new CandidateSelector instance.
func NewCandidateSelector() CandidateSelector {
	return CandidateSelector{}
}

// Select filters and ranks the given partners for a pickup at the vendor.
func (s CandidateSelector) Select(
	v *vendor.Vendor,
	partners []*courier.DeliveryPartner,
	area *servicearea.ServiceArea,
	thresholdKm float64,
) ([]Candidate, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(partners))
	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsMatchable() {
			continue
		}
		if !p.ServiceAreaID().IsEqual(area.ID()) {
			continue
		}

		location := p.Location()
		if !area.Contains(*location) {
			continue
		}

		distance, err := location.DistanceKm(v.Location())
		if err != nil {
			return nil, err
		}
		if distance > thresholdKm {
			continue
		}

		candidates = append(candidates, Candidate{Partner: p, DistanceKm: distance})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return candidates, nil
}
