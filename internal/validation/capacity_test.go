package validation

import (
	"testing"

	"scenario-validation-service/internal/domain"
)

func TestCapacityDeliveredLoadFreesSpace(t *testing.T) {
	s := baseScenario()

	// B's 6 units are delivered at 2000, before the candidate pickup at
	// 2500, so the full 10-unit limit is available for A's 5 units.
	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v != nil && len(v.ExcessDemand) != 0 {
		t.Errorf("ExcessDemand = %v, want none", v.ExcessDemand)
	}
}

func TestCapacityInVehicleLoadCounts(t *testing.T) {
	s := baseScenario()
	// Push B's delivery past the candidate pickup: 6 of the 10 units are
	// still in the vehicle at 2500, leaving 4 for A's 5-unit demand.
	s.Visits[1].StartTime = 3000

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ExcessDemand["weight"]; got != 1 {
		t.Errorf("ExcessDemand[weight] = %d, want 1", got)
	}
}

func TestCapacityUndeliveredLoadNeverFrees(t *testing.T) {
	s := baseScenario()
	// No delivery visit for B at all: its load stays in the vehicle.
	s.Visits = s.Visits[:1]
	s.Routes[0].VisitIDs = []int64{103}

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ExcessDemand["weight"]; got != 1 {
		t.Errorf("ExcessDemand[weight] = %d, want 1", got)
	}
}

func TestCapacitySkippedWithoutTypeOverlap(t *testing.T) {
	s := baseScenario()
	// The vehicle declares no limit for any of A's demand types.
	s.Vehicles[0].LoadLimits = map[string]int64{"volume": 1}
	s.Visits[1].StartTime = 3000

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v != nil && len(v.ExcessDemand) != 0 {
		t.Errorf("ExcessDemand = %v, want none without a shared demand type", v.ExcessDemand)
	}
}

func TestCapacityUnlistedTypeHasZeroCapacity(t *testing.T) {
	s := baseScenario()
	// One demand type overlaps the limits, so the check runs; the other
	// has no declared limit and counts as zero capacity.
	s.Shipments[0].LoadDemands = map[string]int64{"weight": 5, "pallets": 2}

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ExcessDemand["pallets"]; got != 2 {
		t.Errorf("ExcessDemand[pallets] = %d, want 2", got)
	}
	if got, ok := v.ExcessDemand["weight"]; ok {
		t.Errorf("ExcessDemand[weight] = %d, want absent", got)
	}
}

func TestCapacitySkippedWithoutPickupTime(t *testing.T) {
	s := baseScenario()
	s.Visits[1].StartTime = 3000

	// Only the delivery side is being validated and A has no recorded
	// pickup, so there is no load instant to check against.
	v := ValidateVisit(s, candidateDelivery(2800), nil)
	if v != nil && len(v.ExcessDemand) != 0 {
		t.Errorf("ExcessDemand = %v, want none without a pickup time", v.ExcessDemand)
	}
}

func TestCapacityRequestDemandsAddToShipmentDemands(t *testing.T) {
	s := baseScenario()
	s.Visits[1].StartTime = 3000
	// The pickup request's own demands stack on top of the shipment's:
	// 5 + 2 = 7 against 4 remaining units.
	s.VisitRequests[0].LoadDemands = map[string]int64{"weight": 2}

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ExcessDemand["weight"]; got != 3 {
		t.Errorf("ExcessDemand[weight] = %d, want 3", got)
	}
}

func TestCapacityConcurrentLoadAcrossShipments(t *testing.T) {
	s := baseScenario()
	s.Visits[1].StartTime = 3000
	s.Shipments = append(s.Shipments, &domain.Shipment{
		ID:           3,
		ShipmentType: "C",
		LoadDemands:  map[string]int64{"weight": 3},
		Pickups:      []int64{105},
		Deliveries:   []int64{106},
	})
	s.VisitRequests = append(s.VisitRequests,
		&domain.VisitRequest{ID: 105, ShipmentID: 3, Pickup: true, Duration: 60},
		&domain.VisitRequest{ID: 106, ShipmentID: 3, Duration: 60},
	)
	s.Visits = append(s.Visits,
		&domain.Visit{ID: 105, VisitRequestID: 105, ShipmentRouteID: 1, StartTime: 1200, IsPickup: true},
		&domain.Visit{ID: 106, VisitRequestID: 106, ShipmentRouteID: 1, StartTime: 4000},
	)
	s.Routes[0].VisitIDs = append(s.Routes[0].VisitIDs, 105, 106)

	// At 2500 both B (6) and C (3) are in the vehicle: 9 of 10 used,
	// leaving 1 for A's 5-unit demand.
	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ExcessDemand["weight"]; got != 4 {
		t.Errorf("ExcessDemand[weight] = %d, want 4", got)
	}
}
