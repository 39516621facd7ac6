package validation

import "scenario-validation-service/internal/domain"

// index gives id-keyed access to a scenario snapshot. One is built per
// validation call; nothing survives between calls.
type index struct {
	s             *domain.Scenario
	shipments     map[int64]*domain.Shipment
	vehicles      map[int64]*domain.Vehicle
	visitRequests map[int64]*domain.VisitRequest
	visits        map[int64]*domain.Visit
	routes        map[int64]*domain.ShipmentRoute
}

func newIndex(s *domain.Scenario) *index {
	ix := &index{
		s:             s,
		shipments:     make(map[int64]*domain.Shipment, len(s.Shipments)),
		vehicles:      make(map[int64]*domain.Vehicle, len(s.Vehicles)),
		visitRequests: make(map[int64]*domain.VisitRequest, len(s.VisitRequests)),
		visits:        make(map[int64]*domain.Visit, len(s.Visits)),
		routes:        make(map[int64]*domain.ShipmentRoute, len(s.Routes)),
	}
	for _, sh := range s.Shipments {
		ix.shipments[sh.ID] = sh
	}
	for _, v := range s.Vehicles {
		ix.vehicles[v.ID] = v
	}
	for _, vr := range s.VisitRequests {
		ix.visitRequests[vr.ID] = vr
	}
	for _, visit := range s.Visits {
		ix.visits[visit.ID] = visit
	}
	for _, r := range s.Routes {
		ix.routes[r.ID] = r
	}
	return ix
}

// routeShipment aggregates one shipment's pickup/delivery times and demands
// as they appear on a single candidate route. A shipment whose delivery is
// not on the route has a nil delivery time (still in the vehicle); nil
// pickup time means it never enters the vehicle on this route.
type routeShipment struct {
	shipment     *domain.Shipment
	pickupTime   *int64
	deliveryTime *int64
	demands      map[string]int64
}

// routeShipments reconstructs the lightweight per-shipment records for every
// shipment already on the route, excluding the shipment under test. Order is
// first appearance on the route, which keeps results deterministic.
func (ix *index) routeShipments(route *domain.ShipmentRoute, excludeShipmentID int64) []*routeShipment {
	byShipment := make(map[int64]*routeShipment)
	var ordered []*routeShipment

	for _, visitID := range route.VisitIDs {
		visit := ix.visits[visitID]
		if visit == nil {
			continue
		}
		vr := ix.visitRequests[visit.VisitRequestID]
		if vr == nil {
			continue
		}
		shipment := ix.shipments[vr.ShipmentID]
		if shipment == nil || shipment.ID == excludeShipmentID {
			continue
		}

		rs := byShipment[shipment.ID]
		if rs == nil {
			rs = &routeShipment{shipment: shipment}
			byShipment[shipment.ID] = rs
			ordered = append(ordered, rs)
		}

		t := visit.StartTime
		if visit.IsPickup {
			rs.pickupTime = &t
			rs.demands = mergeDemands(shipment.LoadDemands, vr.LoadDemands)
		} else {
			rs.deliveryTime = &t
			if rs.demands == nil {
				rs.demands = mergeDemands(shipment.LoadDemands, ix.pickupDemands(shipment))
			}
		}
	}

	return ordered
}

// pickupDemands returns the demands of the shipment's first pickup request.
func (ix *index) pickupDemands(shipment *domain.Shipment) map[string]int64 {
	for _, id := range shipment.Pickups {
		if vr := ix.visitRequests[id]; vr != nil {
			return vr.LoadDemands
		}
	}
	return nil
}

// recordedTime returns the shipment's actual scheduled pickup (or delivery)
// time on the route, if one exists.
func (ix *index) recordedTime(shipment *domain.Shipment, route *domain.ShipmentRoute, pickup bool) *int64 {
	for _, visitID := range route.VisitIDs {
		visit := ix.visits[visitID]
		if visit == nil || visit.IsPickup != pickup {
			continue
		}
		vr := ix.visitRequests[visit.VisitRequestID]
		if vr == nil || vr.ShipmentID != shipment.ID {
			continue
		}
		t := visit.StartTime
		return &t
	}
	return nil
}

// mergeDemands sums two demand maps; a type absent from both is absent from
// the result (absent means zero).
func mergeDemands(a, b map[string]int64) map[string]int64 {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]int64, len(a)+len(b))
	for k, q := range a {
		out[k] += q
	}
	for k, q := range b {
		out[k] += q
	}
	return out
}
