package validation

import (
	"reflect"
	"testing"

	"scenario-validation-service/internal/domain"
)

func i64(v int64) *int64 { return &v }

// baseScenario is a two-vehicle, two-shipment snapshot used across visit
// validation tests. Shipment 1 ("A") is the shipment under test; shipment 2
// ("B") is already on vehicle 1's route with pickup at 1500 and delivery at
// 2000.
func baseScenario() *domain.Scenario {
	return &domain.Scenario{
		GlobalStartTime: 1000,
		GlobalEndTime:   10000,
		Shipments: []*domain.Shipment{
			{
				ID:           1,
				ShipmentType: "A",
				LoadDemands:  map[string]int64{"weight": 5},
				Pickups:      []int64{101},
				Deliveries:   []int64{102},
			},
			{
				ID:           2,
				ShipmentType: "B",
				LoadDemands:  map[string]int64{"weight": 6},
				Pickups:      []int64{103},
				Deliveries:   []int64{104},
			},
		},
		Vehicles: []*domain.Vehicle{
			{
				ID:               1,
				LoadLimits:       map[string]int64{"weight": 10},
				StartTimeWindows: []domain.TimeWindow{{StartTime: i64(1000)}},
				EndTimeWindows:   []domain.TimeWindow{{EndTime: i64(9000)}},
			},
			{ID: 2},
		},
		VisitRequests: []*domain.VisitRequest{
			{ID: 101, ShipmentID: 1, Pickup: true, Duration: 60,
				TimeWindows: []domain.TimeWindow{{StartTime: i64(2000), EndTime: i64(5000)}}},
			{ID: 102, ShipmentID: 1, Duration: 60},
			{ID: 103, ShipmentID: 2, Pickup: true, Duration: 60},
			{ID: 104, ShipmentID: 2, Duration: 60},
		},
		Visits: []*domain.Visit{
			{ID: 103, VisitRequestID: 103, ShipmentRouteID: 1, StartTime: 1500, IsPickup: true},
			{ID: 104, VisitRequestID: 104, ShipmentRouteID: 1, StartTime: 2000},
		},
		Routes: []*domain.ShipmentRoute{
			{ID: 1, VisitIDs: []int64{103, 104}},
		},
	}
}

func candidatePickup(start int64) *domain.Visit {
	return &domain.Visit{ID: 101, VisitRequestID: 101, ShipmentRouteID: 1, StartTime: start, IsPickup: true}
}

func candidateDelivery(start int64) *domain.Visit {
	return &domain.Visit{ID: 102, VisitRequestID: 102, ShipmentRouteID: 1, StartTime: start}
}

func TestValidateVisitCleanPlacement(t *testing.T) {
	s := baseScenario()

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v != nil {
		t.Fatalf("expected no violations, got %+v", v)
	}
}

func TestValidateVisitDeliveryBeforePickup(t *testing.T) {
	s := baseScenario()

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2100))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if !v.DeliveryOutOfRange {
		t.Errorf("DeliveryOutOfRange = false, want true")
	}
}

func TestValidateVisitGlobalOutOfRange(t *testing.T) {
	s := baseScenario()

	v := ValidateVisit(s, candidatePickup(500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if !v.GlobalOutOfRange {
		t.Errorf("GlobalOutOfRange = false, want true")
	}
}

func TestValidateVisitRequestOutOfRange(t *testing.T) {
	s := baseScenario()

	// 6000 is inside the global range but outside the request's [2000,5000].
	v := ValidateVisit(s, candidatePickup(6000), candidateDelivery(6500))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if !v.VisitRequestOutOfRange {
		t.Errorf("VisitRequestOutOfRange = false, want true")
	}
	if v.GlobalOutOfRange {
		t.Errorf("GlobalOutOfRange = true, want false")
	}
}

func TestValidateVisitNoWindowsMeansNoRestriction(t *testing.T) {
	s := baseScenario()

	// The delivery request declares no windows; any in-range time is fine.
	v := ValidateVisit(s, candidateDelivery(8000), candidatePickup(2500))
	if v != nil && v.VisitRequestOutOfRange {
		t.Errorf("VisitRequestOutOfRange = true, want false for windowless request")
	}
}

func TestValidateVisitVehicleOutOfRange(t *testing.T) {
	s := baseScenario()
	// Vehicle 1 is available [1000, 9000]; delivery at 9500 escapes it but
	// stays inside the global range.
	s.VisitRequests[1].TimeWindows = nil

	v := ValidateVisit(s, candidateDelivery(9500), candidatePickup(2500))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if !v.VehicleOutOfRange {
		t.Errorf("VehicleOutOfRange = false, want true")
	}
	if v.GlobalOutOfRange {
		t.Errorf("GlobalOutOfRange = true, want false")
	}
}

func TestValidateVisitMissingRouteReturnsNil(t *testing.T) {
	s := baseScenario()

	target := candidatePickup(500)
	target.ShipmentRouteID = 99

	// Edit-in-progress visits not yet attached to a route are benign even
	// when their times are out of range.
	if v := ValidateVisit(s, target, nil); v != nil {
		t.Fatalf("expected nil for unknown route, got %+v", v)
	}
}

func TestValidateVisitMissingEntitiesReturnNil(t *testing.T) {
	s := baseScenario()

	target := candidatePickup(2500)
	target.VisitRequestID = 999
	if v := ValidateVisit(s, target, nil); v != nil {
		t.Fatalf("expected nil for unknown visit request, got %+v", v)
	}

	if v := ValidateVisit(s, nil, nil); v != nil {
		t.Fatalf("expected nil for nil target, got %+v", v)
	}
	if v := ValidateVisit(nil, candidatePickup(2500), nil); v != nil {
		t.Fatalf("expected nil for nil scenario, got %+v", v)
	}
}

func TestValidateVisitIdempotent(t *testing.T) {
	s := baseScenario()
	s.ShipmentTypeIncompatibilities = []domain.ShipmentTypeIncompatibility{
		{Types: []string{"A", "B"}, IncompatibilityMode: domain.NotInSameVehicleSimultaneously},
	}

	target := candidatePickup(2500)
	companion := candidateDelivery(2100)

	first := ValidateVisit(s, target, companion)
	second := ValidateVisit(s, target, companion)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}
