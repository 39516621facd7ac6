package domain

import "fmt"

// Scenario is an immutable snapshot of a routing problem and any current
// solution state. The global start/end times bound the entire planning
// horizon; every entity time window is interpreted against them. Validation
// and solving never mutate a scenario.
type Scenario struct {
	GlobalStartTime int64 `json:"globalStartTime"`
	GlobalEndTime   int64 `json:"globalEndTime"`

	Shipments     []*Shipment      `json:"shipments,omitempty"`
	Vehicles      []*Vehicle       `json:"vehicles,omitempty"`
	VisitRequests []*VisitRequest  `json:"visitRequests,omitempty"`
	Visits        []*Visit         `json:"visits,omitempty"`
	Routes        []*ShipmentRoute `json:"routes,omitempty"`

	ShipmentTypeIncompatibilities []ShipmentTypeIncompatibility `json:"shipmentTypeIncompatibilities,omitempty"`
	ShipmentTypeRequirements      []ShipmentTypeRequirement     `json:"shipmentTypeRequirements,omitempty"`
}

// CheckReferences verifies the scenario's internal id invariants: every
// pickup/delivery id on a shipment resolves to a visit request owned by that
// shipment, and the global range is well-formed.
func (s *Scenario) CheckReferences() error {
	if s.GlobalEndTime < s.GlobalStartTime {
		return fmt.Errorf("check scenario: global end %d precedes global start %d", s.GlobalEndTime, s.GlobalStartTime)
	}

	requests := make(map[int64]*VisitRequest, len(s.VisitRequests))
	for _, vr := range s.VisitRequests {
		requests[vr.ID] = vr
	}

	for _, shipment := range s.Shipments {
		for _, id := range shipment.Pickups {
			vr, ok := requests[id]
			if !ok {
				return fmt.Errorf("check scenario: shipment %d pickup references unknown visit request %d", shipment.ID, id)
			}
			if vr.ShipmentID != shipment.ID {
				return fmt.Errorf("check scenario: visit request %d belongs to shipment %d, not %d", id, vr.ShipmentID, shipment.ID)
			}
		}
		for _, id := range shipment.Deliveries {
			vr, ok := requests[id]
			if !ok {
				return fmt.Errorf("check scenario: shipment %d delivery references unknown visit request %d", shipment.ID, id)
			}
			if vr.ShipmentID != shipment.ID {
				return fmt.Errorf("check scenario: visit request %d belongs to shipment %d, not %d", id, vr.ShipmentID, shipment.ID)
			}
		}

		for _, idx := range shipment.AllowedVehicleIndices {
			if idx < 0 || idx >= len(s.Vehicles) {
				return fmt.Errorf("check scenario: shipment %d allowed vehicle index %d out of range", shipment.ID, idx)
			}
		}
	}

	return nil
}
