package solver

import (
	"context"
	"errors"
	"math"

	"scenario-validation-service/internal/domain"
)

// GreedySolver produces a feasible (not optimal) solution locally using a
// greedy nearest-neighbor heuristic. It stands in for the remote optimizer
// when no endpoint is configured.
//
// The algorithm minimizes immediate travel duration at each step and never
// schedules a delivery before its pickup. It does not attempt global route
// optimization; the design prioritizes determinism and simplicity over
// optimality.
type GreedySolver struct {
	// Average travel speed used to turn haversine distance into duration.
	SpeedMetersPerSecond float64
}

func NewGreedySolver() *GreedySolver {
	return &GreedySolver{SpeedMetersPerSecond: 10}
}

func (g *GreedySolver) Solve(ctx context.Context, s *domain.Scenario) (*domain.Solution, error) {
	if s == nil {
		return nil, errors.New("greedy solve: scenario is nil")
	}

	requests := make(map[int64]*domain.VisitRequest, len(s.VisitRequests))
	for _, vr := range s.VisitRequests {
		requests[vr.ID] = vr
	}

	assigned, skipped := assignShipments(s)

	sol := &domain.Solution{
		Routes:             make([]*domain.ShipmentRoute, 0, len(s.Vehicles)),
		Visits:             []*domain.Visit{},
		SkippedShipmentIDs: skipped,
	}

	for vi, vehicle := range s.Vehicles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		visits, meters, seconds := g.routeVehicle(s, vehicle, assigned[vi], requests)

		route := &domain.ShipmentRoute{ID: vehicle.ID, VisitIDs: make([]int64, 0, len(visits))}
		for _, visit := range visits {
			route.VisitIDs = append(route.VisitIDs, visit.ID)
		}

		sol.Routes = append(sol.Routes, route)
		sol.Visits = append(sol.Visits, visits...)
		sol.TotalDistanceMeters += meters
		sol.TotalDurationSeconds += seconds
	}

	return sol, nil
}

// assignShipments distributes shipments across vehicle indices, respecting
// allowed-vehicle lists and balancing by assignment count. Ties break toward
// the lowest vehicle index so the distribution is deterministic. Shipments
// no vehicle may serve are skipped rather than failing the whole solve.
func assignShipments(s *domain.Scenario) (map[int][]*domain.Shipment, []int64) {
	assigned := make(map[int][]*domain.Shipment, len(s.Vehicles))
	var skipped []int64

	for _, shipment := range s.Shipments {
		allowed := shipment.AllowedVehicleIndices
		if len(allowed) == 0 {
			allowed = make([]int, 0, len(s.Vehicles))
			for i := range s.Vehicles {
				allowed = append(allowed, i)
			}
		}

		best := -1
		for _, idx := range allowed {
			if idx < 0 || idx >= len(s.Vehicles) {
				continue
			}
			if best == -1 || len(assigned[idx]) < len(assigned[best]) {
				best = idx
			}
		}

		if best == -1 {
			skipped = append(skipped, shipment.ID)
			continue
		}
		assigned[best] = append(assigned[best], shipment)
	}

	return assigned, skipped
}

// candidate is one schedulable visit request together with its precedence
// state on the route under construction.
type candidate struct {
	vr       *domain.VisitRequest
	shipment *domain.Shipment
}

// routeVehicle orders the vehicle's visits nearest-neighbor, unlocking each
// delivery only after its shipment's pickup has been scheduled.
func (g *GreedySolver) routeVehicle(
	s *domain.Scenario,
	vehicle *domain.Vehicle,
	shipments []*domain.Shipment,
	requests map[int64]*domain.VisitRequest,
) ([]*domain.Visit, int64, int64) {
	pickups := make(map[int64]*candidate)
	deliveries := make(map[int64]*candidate)
	available := make([]*candidate, 0, len(shipments))

	for _, shipment := range shipments {
		if vr := firstRequest(shipment.Pickups, requests); vr != nil {
			c := &candidate{vr: vr, shipment: shipment}
			pickups[shipment.ID] = c
			available = append(available, c)
		}
		if vr := firstRequest(shipment.Deliveries, requests); vr != nil {
			c := &candidate{vr: vr, shipment: shipment}
			deliveries[shipment.ID] = c
			if pickups[shipment.ID] == nil {
				available = append(available, c)
			}
		}
	}

	currentTime := departureTime(vehicle, s.GlobalStartTime)
	position := vehicle.StartWaypoint

	visits := make([]*domain.Visit, 0, len(available))
	var totalMeters, totalSeconds int64

	for len(available) > 0 {
		bestIdx := -1
		var bestTravel int64

		// Select next stop by minimum travel duration (greedy step).
		for i, c := range available {
			travel := g.travelSeconds(position, c.vr.ArrivalWaypoint)
			// Tie-breaker ensures deterministic ordering when durations are equal.
			if bestIdx == -1 || travel < bestTravel ||
				(travel == bestTravel && c.vr.ID < available[bestIdx].vr.ID) {
				bestIdx = i
				bestTravel = travel
			}
		}

		c := available[bestIdx]
		available = append(available[:bestIdx], available[bestIdx+1:]...)

		arrival := currentTime + bestTravel
		// Wait for the request's first window rather than arriving early.
		if len(c.vr.TimeWindows) > 0 {
			if ws := c.vr.TimeWindows[0].StartOr(s.GlobalStartTime); arrival < ws {
				arrival = ws
			}
		}

		visits = append(visits, &domain.Visit{
			ID:              c.vr.ID,
			VisitRequestID:  c.vr.ID,
			ShipmentRouteID: vehicle.ID,
			StartTime:       arrival,
			IsPickup:        c.vr.Pickup,
		})

		totalMeters += int64(haversineMeters(position, c.vr.ArrivalWaypoint))
		totalSeconds += bestTravel + c.vr.Duration
		currentTime = arrival + c.vr.Duration

		if c.vr.DepartureWaypoint != nil {
			position = c.vr.DepartureWaypoint
		} else if c.vr.ArrivalWaypoint != nil {
			position = c.vr.ArrivalWaypoint
		}

		// A scheduled pickup unlocks its shipment's delivery.
		if c.vr.Pickup {
			if d := deliveries[c.shipment.ID]; d != nil {
				available = append(available, d)
			}
		}
	}

	return visits, totalMeters, totalSeconds
}

func firstRequest(ids []int64, requests map[int64]*domain.VisitRequest) *domain.VisitRequest {
	for _, id := range ids {
		if vr := requests[id]; vr != nil {
			return vr
		}
	}
	return nil
}

// departureTime is the earliest configured start window start, defaulting to
// the global start.
func departureTime(vehicle *domain.Vehicle, globalStart int64) int64 {
	if len(vehicle.StartTimeWindows) == 0 {
		return globalStart
	}
	earliest := int64(math.MaxInt64)
	for _, w := range vehicle.StartTimeWindows {
		if t := w.StartOr(globalStart); t < earliest {
			earliest = t
		}
	}
	if earliest < globalStart {
		return globalStart
	}
	return earliest
}

func (g *GreedySolver) travelSeconds(from, to *domain.Waypoint) int64 {
	speed := g.SpeedMetersPerSecond
	if speed <= 0 {
		speed = 10
	}
	return int64(haversineMeters(from, to) / speed)
}

const earthRadiusMeters = 6371000

// haversineMeters is the great-circle distance between two waypoints. A
// missing waypoint contributes zero distance.
func haversineMeters(from, to *domain.Waypoint) float64 {
	if from == nil || to == nil {
		return 0
	}

	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
