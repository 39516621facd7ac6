package domain

// Vehicle describes one fleet member: when it is available to start and
// finish, what it can carry per demand type, and where it departs from and
// returns to.
type Vehicle struct {
	ID               int64            `json:"id"`
	Label            string           `json:"label,omitempty"`
	StartTimeWindows []TimeWindow     `json:"startTimeWindows,omitempty"`
	EndTimeWindows   []TimeWindow     `json:"endTimeWindows,omitempty"`
	LoadLimits       map[string]int64 `json:"loadLimits,omitempty"`
	StartWaypoint    *Waypoint        `json:"startWaypoint,omitempty"`
	EndWaypoint      *Waypoint        `json:"endWaypoint,omitempty"`
}

// ShipmentRoute is the ordered sequence of visits assigned to one vehicle.
// Its id shares the vehicle id space: route N is driven by vehicle N.
type ShipmentRoute struct {
	ID       int64   `json:"id"`
	VisitIDs []int64 `json:"visitIds,omitempty"`
}
