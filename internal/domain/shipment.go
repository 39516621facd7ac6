package domain

// Shipment is a pickup+delivery unit to be routed. Pickups and Deliveries
// reference VisitRequest ids; every referenced id must resolve within the
// owning scenario. AllowedVehicleIndices index into the scenario's vehicle
// list; an empty list means any vehicle may serve the shipment.
type Shipment struct {
	ID                    int64             `json:"id"`
	Label                 string            `json:"label,omitempty"`
	ShipmentType          string            `json:"shipmentType,omitempty"`
	LoadDemands           map[string]int64  `json:"loadDemands,omitempty"`
	Pickups               []int64           `json:"pickups,omitempty"`
	Deliveries            []int64           `json:"deliveries,omitempty"`
	AllowedVehicleIndices []int             `json:"allowedVehicleIndices,omitempty"`
	CostsPerVehicle       map[int64]float64 `json:"costsPerVehicle,omitempty"`
}

// VisitRequest is a single pickup or delivery location/time-window
// specification belonging to a shipment.
type VisitRequest struct {
	ID                int64            `json:"id"`
	ShipmentID        int64            `json:"shipmentId"`
	Pickup            bool             `json:"pickup,omitempty"`
	TimeWindows       []TimeWindow     `json:"timeWindows,omitempty"`
	Duration          int64            `json:"duration,omitempty"`
	LoadDemands       map[string]int64 `json:"loadDemands,omitempty"`
	ArrivalWaypoint   *Waypoint        `json:"arrivalWaypoint,omitempty"`
	DepartureWaypoint *Waypoint        `json:"departureWaypoint,omitempty"`
}

// Visit is a realized, scheduled instance of a visit request on a specific
// route. StartTime is epoch seconds.
type Visit struct {
	ID              int64 `json:"id"`
	VisitRequestID  int64 `json:"visitRequestId"`
	ShipmentRouteID int64 `json:"shipmentRouteId"`
	StartTime       int64 `json:"startTime"`
	IsPickup        bool  `json:"isPickup,omitempty"`
}
