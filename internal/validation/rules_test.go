package validation

import (
	"testing"

	"scenario-validation-service/internal/domain"
)

func TestIncompatibilitySameVehicleMode(t *testing.T) {
	s := baseScenario()
	s.ShipmentTypeIncompatibilities = []domain.ShipmentTypeIncompatibility{
		{Types: []string{"A", "B"}, IncompatibilityMode: domain.NotPerformedBySameVehicle},
	}

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ShipmentTypeCannotBePerformedBySameVehicle; len(got) != 1 || got[0] != "B" {
		t.Errorf("ShipmentTypeCannotBePerformedBySameVehicle = %v, want [B]", got)
	}
}

func TestIncompatibilitySimultaneousMode(t *testing.T) {
	tests := []struct {
		name          string
		otherDelivery int64
		wantViolation bool
	}{
		// B occupies [1500, 2000); A occupies [2500, 2800): disjoint.
		{name: "intervals disjoint", otherDelivery: 2000, wantViolation: false},
		// B occupies [1500, 3000); A occupies [2500, 2800): overlap.
		{name: "intervals overlap", otherDelivery: 3000, wantViolation: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := baseScenario()
			s.Visits[1].StartTime = tc.otherDelivery
			s.ShipmentTypeIncompatibilities = []domain.ShipmentTypeIncompatibility{
				{Types: []string{"A", "B"}, IncompatibilityMode: domain.NotInSameVehicleSimultaneously},
			}

			v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))

			var got []string
			if v != nil {
				got = v.ShipmentTypeCannotBeInSameVehicleSimultaneously
			}
			if tc.wantViolation {
				if len(got) != 1 || got[0] != "B" {
					t.Errorf("ShipmentTypeCannotBeInSameVehicleSimultaneously = %v, want [B]", got)
				}
			} else if len(got) != 0 {
				t.Errorf("ShipmentTypeCannotBeInSameVehicleSimultaneously = %v, want none", got)
			}
		})
	}
}

func TestIncompatibilityOpenEndedInterval(t *testing.T) {
	s := baseScenario()
	// B's delivery is not on the route: its interval is open-ended at
	// +infinity and overlaps everything after its pickup.
	s.Visits = s.Visits[:1]
	s.Routes[0].VisitIDs = []int64{103}
	s.ShipmentTypeIncompatibilities = []domain.ShipmentTypeIncompatibility{
		{Types: []string{"A", "B"}, IncompatibilityMode: domain.NotInSameVehicleSimultaneously},
	}

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ShipmentTypeCannotBeInSameVehicleSimultaneously; len(got) != 1 || got[0] != "B" {
		t.Errorf("ShipmentTypeCannotBeInSameVehicleSimultaneously = %v, want [B]", got)
	}
}

func TestIncompatibilityIgnoresUnlistedTypes(t *testing.T) {
	s := baseScenario()
	s.ShipmentTypeIncompatibilities = []domain.ShipmentTypeIncompatibility{
		{Types: []string{"A", "C"}, IncompatibilityMode: domain.NotPerformedBySameVehicle},
	}

	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v != nil && len(v.ShipmentTypeCannotBePerformedBySameVehicle) != 0 {
		t.Errorf("unexpected incompatibility violation: %v", v.ShipmentTypeCannotBePerformedBySameVehicle)
	}
}

func TestRequirementSameVehicleMode(t *testing.T) {
	s := baseScenario()
	s.ShipmentTypeRequirements = []domain.ShipmentTypeRequirement{
		{
			RequiredShipmentTypeAlternatives: []string{"B"},
			DependentShipmentTypes:           []string{"A"},
			RequirementMode:                  domain.PerformedBySameVehicle,
		},
	}

	// B shares the vehicle: requirement satisfied.
	v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v != nil && len(v.ShipmentTypeMustBePerformedBySameVehicle) != 0 {
		t.Errorf("unexpected requirement violation: %v", v.ShipmentTypeMustBePerformedBySameVehicle)
	}

	// Remove B from the route: requirement unmet.
	s.Visits = nil
	s.Routes[0].VisitIDs = nil
	v = ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ShipmentTypeMustBePerformedBySameVehicle; len(got) != 1 || got[0] != "B" {
		t.Errorf("ShipmentTypeMustBePerformedBySameVehicle = %v, want [B]", got)
	}
}

func TestRequirementAtPickupTimeMode(t *testing.T) {
	tests := []struct {
		name          string
		otherDelivery int64
		wantViolation bool
	}{
		// B is in the vehicle over [1500, 3000], covering A's pickup at 2500.
		{name: "concurrently present", otherDelivery: 3000, wantViolation: false},
		// B left the vehicle at 2000, before A's pickup at 2500.
		{name: "already delivered", otherDelivery: 2000, wantViolation: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := baseScenario()
			s.Visits[1].StartTime = tc.otherDelivery
			s.ShipmentTypeRequirements = []domain.ShipmentTypeRequirement{
				{
					RequiredShipmentTypeAlternatives: []string{"B"},
					DependentShipmentTypes:           []string{"A"},
					RequirementMode:                  domain.InSameVehicleAtPickupTime,
				},
			}

			v := ValidateVisit(s, candidatePickup(2500), candidateDelivery(2800))

			var got []string
			if v != nil {
				got = v.ShipmentTypeMustBePerformedBySameVehicleAtPickupTime
			}
			if tc.wantViolation {
				if len(got) != 1 || got[0] != "B" {
					t.Errorf("ShipmentTypeMustBePerformedBySameVehicleAtPickupTime = %v, want [B]", got)
				}
			} else if len(got) != 0 {
				t.Errorf("ShipmentTypeMustBePerformedBySameVehicleAtPickupTime = %v, want none", got)
			}
		})
	}
}

func TestRequirementAtDeliveryTimeMode(t *testing.T) {
	s := baseScenario()
	// B leaves the vehicle at 2000; A's delivery at 2800 has no B present.
	s.ShipmentTypeRequirements = []domain.ShipmentTypeRequirement{
		{
			RequiredShipmentTypeAlternatives: []string{"B"},
			DependentShipmentTypes:           []string{"A"},
			RequirementMode:                  domain.InSameVehicleAtDeliveryTime,
		},
	}

	v := ValidateVisit(s, candidatePickup(1600), candidateDelivery(2800))
	if v == nil {
		t.Fatal("expected violations, got nil")
	}
	if got := v.ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime; len(got) != 1 || got[0] != "B" {
		t.Errorf("ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime = %v, want [B]", got)
	}

	// A delivery at 1800 is covered by B's [1500, 2000] presence.
	v = ValidateVisit(s, candidatePickup(1600), candidateDelivery(1800))
	if v != nil && len(v.ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime) != 0 {
		t.Errorf("unexpected requirement violation: %v", v.ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime)
	}
}
