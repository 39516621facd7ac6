// Package validation re-derives the feasibility checks a remote solver
// enforces — time windows, vehicle capacity, shipment-type rules,
// pickup/delivery precedence — for instant feedback while an operator edits
// a scenario. Every function is a pure, synchronous computation over an
// immutable scenario snapshot: violations are data, never errors, and a
// partially absent input means "nothing to validate yet", not a failure.
package validation

import "scenario-validation-service/internal/domain"

// ValidateRequest computes advisory violations for every non-ignored
// shipment and vehicle in the scenario. Only checks that need no route
// context run at this granularity: declared time windows against the global
// horizon, and allowed-vehicle exhaustion. Demand and type-rule checks need
// full route context and live in ValidateVisit.
func ValidateRequest(s *domain.Scenario, ignoredShipmentIDs, ignoredVehicleIDs map[int64]bool) RequestViolations {
	out := RequestViolations{
		Shipments: make(map[int64]ShipmentViolations),
		Vehicles:  make(map[int64]VehicleViolations),
	}
	if s == nil {
		return out
	}

	ix := newIndex(s)
	validateShipments(ix, ignoredShipmentIDs, ignoredVehicleIDs, &out)
	validateVehicles(s, ignoredVehicleIDs, &out)
	return out
}

func validateShipments(ix *index, ignoredShipmentIDs, ignoredVehicleIDs map[int64]bool, out *RequestViolations) {
	s := ix.s

	for _, shipment := range s.Shipments {
		if ignoredShipmentIDs[shipment.ID] {
			continue
		}

		var sv ShipmentViolations

		for _, requestIDs := range [][]int64{shipment.Pickups, shipment.Deliveries} {
			for _, id := range requestIDs {
				vr := ix.visitRequests[id]
				if vr == nil {
					continue
				}
				if anyWindowOutOfRange(vr.TimeWindows, s.GlobalStartTime, s.GlobalEndTime) {
					sv.TimeWindowOutOfRange = true
				}
			}
		}

		if noVehicleRemains(shipment, s.Vehicles, ignoredVehicleIDs) {
			sv.AllowedVehicleIndices = true
		}

		if sv != (ShipmentViolations{}) {
			out.Shipments[shipment.ID] = sv
		}
	}
}

func validateVehicles(s *domain.Scenario, ignoredVehicleIDs map[int64]bool, out *RequestViolations) {
	for _, vehicle := range s.Vehicles {
		if ignoredVehicleIDs[vehicle.ID] {
			continue
		}

		if anyWindowOutOfRange(vehicle.StartTimeWindows, s.GlobalStartTime, s.GlobalEndTime) ||
			anyWindowOutOfRange(vehicle.EndTimeWindows, s.GlobalStartTime, s.GlobalEndTime) {
			out.Vehicles[vehicle.ID] = VehicleViolations{TimeWindowOutOfRange: true}
		}
	}
}

// anyWindowOutOfRange reports whether any declared window bound escapes the
// global planning horizon. Open bounds default to the horizon itself, so a
// missing window is never a violation.
func anyWindowOutOfRange(windows []domain.TimeWindow, globalStart, globalEnd int64) bool {
	for _, w := range windows {
		if w.StartOr(globalStart) < globalStart || w.EndOr(globalEnd) > globalEnd {
			return true
		}
	}
	return false
}

// noVehicleRemains reports whether excluding ignored vehicles leaves the
// shipment with no vehicle able to serve it. An empty allowed list means any
// vehicle; out-of-range indices never count.
func noVehicleRemains(shipment *domain.Shipment, vehicles []*domain.Vehicle, ignoredVehicleIDs map[int64]bool) bool {
	allowed := shipment.AllowedVehicleIndices
	if len(allowed) == 0 {
		for i := range vehicles {
			if !ignoredVehicleIDs[vehicles[i].ID] {
				return false
			}
		}
		return true
	}

	for _, idx := range allowed {
		if idx < 0 || idx >= len(vehicles) {
			continue
		}
		if !ignoredVehicleIDs[vehicles[idx].ID] {
			return false
		}
	}
	return true
}
