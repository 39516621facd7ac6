package domain

// Solution is the routing result produced by a solver: one route per vehicle
// plus the scheduled visits it realizes. It is immutable planning data and
// contains no side effects.
type Solution struct {
	Routes               []*ShipmentRoute `json:"routes"`
	Visits               []*Visit         `json:"visits"`
	TotalDurationSeconds int64            `json:"totalDurationSeconds"`
	TotalDistanceMeters  int64            `json:"totalDistanceMeters"`
	SkippedShipmentIDs   []int64          `json:"skippedShipments,omitempty"`
}
