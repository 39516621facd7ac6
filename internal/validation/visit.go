package validation

import (
	"math"

	"scenario-validation-service/internal/domain"
)

// ValidateVisit checks a candidate visit placement (and, for pickup/delivery
// pairs, its companion visit) against the scenario without invoking a
// solver. The checks are advisory: they surface warnings while the operator
// edits a route, they never block anything.
//
// It returns nil when there is nothing to validate — missing visit request,
// shipment, route, or vehicle — or when no check produced a violation. An
// edit-in-progress visit that is not yet attached to a route is benign, not
// an error.
func ValidateVisit(s *domain.Scenario, target *domain.Visit, companion *domain.Visit) *VisitViolations {
	if s == nil || target == nil {
		return nil
	}

	ix := newIndex(s)

	vr := ix.visitRequests[target.VisitRequestID]
	if vr == nil {
		return nil
	}
	shipment := ix.shipments[vr.ShipmentID]
	if shipment == nil {
		return nil
	}
	route := ix.routes[target.ShipmentRouteID]
	if route == nil {
		return nil
	}
	vehicle := ix.vehicles[route.ID]
	if vehicle == nil {
		return nil
	}

	others := ix.routeShipments(route, shipment.ID)
	pickupTime, deliveryTime := ix.effectiveTimes(shipment, route, target, companion)

	v := &VisitViolations{}

	if pickupTime != nil && deliveryTime != nil && *deliveryTime < *pickupTime {
		v.DeliveryOutOfRange = true
	}

	if target.StartTime < s.GlobalStartTime || target.StartTime > s.GlobalEndTime {
		v.GlobalOutOfRange = true
	}

	// A request that declares no windows imposes no restriction beyond the
	// global range.
	if len(vr.TimeWindows) > 0 {
		inAny := false
		for _, w := range vr.TimeWindows {
			if w.Contains(target.StartTime, s.GlobalStartTime, s.GlobalEndTime) {
				inAny = true
				break
			}
		}
		if !inAny {
			v.VisitRequestOutOfRange = true
		}
	}

	availStart, availEnd := vehicleAvailability(vehicle, s.GlobalStartTime, s.GlobalEndTime)
	if target.StartTime < availStart || target.StartTime > availEnd {
		v.VehicleOutOfRange = true
	}

	checkIncompatibilities(v, s, shipment, others, pickupTime, deliveryTime)
	checkRequirements(v, s, shipment, others, pickupTime, deliveryTime)
	checkCapacity(v, ix, vehicle, shipment, vr, others, pickupTime)

	if v.Empty() {
		return nil
	}
	return v
}

// effectiveTimes derives the pickup and delivery instants of the shipment
// under test: the candidate's own time for the visit being moved, the
// companion's time for its pair, and the shipment's recorded time on the
// route for whichever side is not part of this edit.
func (ix *index) effectiveTimes(
	shipment *domain.Shipment,
	route *domain.ShipmentRoute,
	target *domain.Visit,
	companion *domain.Visit,
) (pickupTime, deliveryTime *int64) {
	t := target.StartTime
	if target.IsPickup {
		pickupTime = &t
	} else {
		deliveryTime = &t
	}

	if companion != nil {
		c := companion.StartTime
		if companion.IsPickup {
			pickupTime = &c
		} else {
			deliveryTime = &c
		}
	}

	if pickupTime == nil {
		pickupTime = ix.recordedTime(shipment, route, true)
	}
	if deliveryTime == nil {
		deliveryTime = ix.recordedTime(shipment, route, false)
	}
	return pickupTime, deliveryTime
}

// vehicleAvailability derives the vehicle's combined availability window:
// the earliest configured start through the latest configured end,
// intersected with the global range. Missing window lists impose no
// additional restriction.
func vehicleAvailability(v *domain.Vehicle, globalStart, globalEnd int64) (int64, int64) {
	start, end := globalStart, globalEnd

	if len(v.StartTimeWindows) > 0 {
		earliest := int64(math.MaxInt64)
		for _, w := range v.StartTimeWindows {
			if t := w.StartOr(globalStart); t < earliest {
				earliest = t
			}
		}
		if earliest > start {
			start = earliest
		}
	}

	if len(v.EndTimeWindows) > 0 {
		latest := int64(math.MinInt64)
		for _, w := range v.EndTimeWindows {
			if t := w.EndOr(globalEnd); t > latest {
				latest = t
			}
		}
		if latest < end {
			end = latest
		}
	}

	return start, end
}

func checkIncompatibilities(
	v *VisitViolations,
	s *domain.Scenario,
	shipment *domain.Shipment,
	others []*routeShipment,
	pickupTime, deliveryTime *int64,
) {
	for _, rule := range s.ShipmentTypeIncompatibilities {
		if !containsType(rule.Types, shipment.ShipmentType) {
			continue
		}

		for _, other := range others {
			otherType := other.shipment.ShipmentType
			if otherType == shipment.ShipmentType || !containsType(rule.Types, otherType) {
				continue
			}

			switch rule.IncompatibilityMode {
			case domain.NotPerformedBySameVehicle:
				v.ShipmentTypeCannotBePerformedBySameVehicle =
					appendUnique(v.ShipmentTypeCannotBePerformedBySameVehicle, otherType)
			case domain.NotInSameVehicleSimultaneously:
				if intervalsOverlap(pickupTime, deliveryTime, other.pickupTime, other.deliveryTime) {
					v.ShipmentTypeCannotBeInSameVehicleSimultaneously =
						appendUnique(v.ShipmentTypeCannotBeInSameVehicleSimultaneously, otherType)
				}
			}
		}
	}
}

func checkRequirements(
	v *VisitViolations,
	s *domain.Scenario,
	shipment *domain.Shipment,
	others []*routeShipment,
	pickupTime, deliveryTime *int64,
) {
	for _, rule := range s.ShipmentTypeRequirements {
		if !containsType(rule.DependentShipmentTypes, shipment.ShipmentType) {
			continue
		}

		// A timed requirement with no reference instant cannot be evaluated
		// (e.g. a delivery-only shipment has no pickup time).
		refTime := pickupTime
		if rule.RequirementMode == domain.InSameVehicleAtDeliveryTime {
			refTime = deliveryTime
		}
		if rule.RequirementMode != domain.PerformedBySameVehicle && refTime == nil {
			continue
		}

		satisfied := false
		for _, other := range others {
			if !containsType(rule.RequiredShipmentTypeAlternatives, other.shipment.ShipmentType) {
				continue
			}

			switch rule.RequirementMode {
			case domain.PerformedBySameVehicle:
				satisfied = true
			case domain.InSameVehicleAtPickupTime, domain.InSameVehicleAtDeliveryTime:
				satisfied = presentAt(other, *refTime)
			}
			if satisfied {
				break
			}
		}

		if !satisfied {
			switch rule.RequirementMode {
			case domain.PerformedBySameVehicle:
				v.ShipmentTypeMustBePerformedBySameVehicle =
					appendAllUnique(v.ShipmentTypeMustBePerformedBySameVehicle, rule.RequiredShipmentTypeAlternatives)
			case domain.InSameVehicleAtPickupTime:
				v.ShipmentTypeMustBePerformedBySameVehicleAtPickupTime =
					appendAllUnique(v.ShipmentTypeMustBePerformedBySameVehicleAtPickupTime, rule.RequiredShipmentTypeAlternatives)
			case domain.InSameVehicleAtDeliveryTime:
				v.ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime =
					appendAllUnique(v.ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime, rule.RequiredShipmentTypeAlternatives)
			}
		}
	}
}

// presentAt reports whether the route-shipment is in the vehicle at instant
// t: picked up at or before t and not delivered strictly before it. A nil
// delivery means it stays in the vehicle.
func presentAt(rs *routeShipment, t int64) bool {
	if rs.pickupTime == nil || *rs.pickupTime > t {
		return false
	}
	return rs.deliveryTime == nil || *rs.deliveryTime >= t
}

// intervalsOverlap reports whether two half-open in-vehicle intervals
// [pickup, delivery) intersect. An unknown bound is open-ended at ±infinity.
func intervalsOverlap(aStart, aEnd, bStart, bEnd *int64) bool {
	as := orElse(aStart, math.MinInt64)
	ae := orElse(aEnd, math.MaxInt64)
	bs := orElse(bStart, math.MinInt64)
	be := orElse(bEnd, math.MaxInt64)
	return as < be && bs < ae
}

func orElse(p *int64, def int64) int64 {
	if p != nil {
		return *p
	}
	return def
}

func containsType(types []string, t string) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func appendUnique(list []string, t string) []string {
	if containsType(list, t) {
		return list
	}
	return append(list, t)
}

func appendAllUnique(list []string, types []string) []string {
	for _, t := range types {
		list = appendUnique(list, t)
	}
	return list
}
