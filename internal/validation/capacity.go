package validation

import "scenario-validation-service/internal/domain"

// checkCapacity verifies the vehicle can still absorb the candidate
// shipment's demands at its pickup instant.
//
// The check only runs when the shipment's (or its pickup request's) demand
// types intersect the vehicle's configured load limits; with no overlap
// there is nothing meaningful to report. Remaining capacity starts from the
// vehicle's limits and is adjusted by every other route-shipment whose
// pickup (subtract) or delivery (add back) happens strictly before the
// candidate pickup time. Any demand type left over capacity is reported with
// its signed excess.
func checkCapacity(
	v *VisitViolations,
	ix *index,
	vehicle *domain.Vehicle,
	shipment *domain.Shipment,
	targetRequest *domain.VisitRequest,
	others []*routeShipment,
	pickupTime *int64,
) {
	pickupRequestDemands := targetRequest.LoadDemands
	if !targetRequest.Pickup {
		pickupRequestDemands = ix.pickupDemands(shipment)
	}
	demands := mergeDemands(shipment.LoadDemands, pickupRequestDemands)

	overlaps := false
	for demandType := range demands {
		if _, ok := vehicle.LoadLimits[demandType]; ok {
			overlaps = true
			break
		}
	}
	if !overlaps || pickupTime == nil {
		return
	}

	available := make(map[string]int64, len(vehicle.LoadLimits))
	for demandType, limit := range vehicle.LoadLimits {
		available[demandType] = limit
	}
	// Absent capacity entries count as zero.
	for demandType := range demands {
		if _, ok := available[demandType]; !ok {
			available[demandType] = 0
		}
	}

	for _, other := range others {
		if other.pickupTime != nil && *other.pickupTime < *pickupTime {
			for demandType, quantity := range other.demands {
				if _, ok := available[demandType]; ok {
					available[demandType] -= quantity
				}
			}
		}
		if other.deliveryTime != nil && *other.deliveryTime < *pickupTime {
			for demandType, quantity := range other.demands {
				if _, ok := available[demandType]; ok {
					available[demandType] += quantity
				}
			}
		}
	}

	for demandType, quantity := range demands {
		if quantity > available[demandType] {
			if v.ExcessDemand == nil {
				v.ExcessDemand = make(map[string]int64)
			}
			v.ExcessDemand[demandType] = quantity - available[demandType]
		}
	}
}
