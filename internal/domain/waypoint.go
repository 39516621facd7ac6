package domain

// Immutable geographic coordinates (latitude, longitude).
type Waypoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
