package domain

// IncompatibilityMode selects how strictly two shipment types exclude each
// other on a vehicle.
type IncompatibilityMode int32

const (
	IncompatibilityModeUnspecified IncompatibilityMode = iota
	// The listed types may never share a vehicle.
	NotPerformedBySameVehicle
	// The listed types may share a vehicle as long as their in-vehicle
	// [pickup, delivery) intervals do not overlap.
	NotInSameVehicleSimultaneously
)

// ShipmentTypeIncompatibility forbids combinations of shipment types on the
// same vehicle.
type ShipmentTypeIncompatibility struct {
	Types               []string            `json:"types"`
	IncompatibilityMode IncompatibilityMode `json:"incompatibilityMode"`
}

// RequirementMode selects when a required shipment type must accompany a
// dependent one.
type RequirementMode int32

const (
	RequirementModeUnspecified RequirementMode = iota
	// A required-type shipment must be served by the same vehicle.
	PerformedBySameVehicle
	// A required-type shipment must be in the vehicle at the dependent
	// shipment's pickup instant.
	InSameVehicleAtPickupTime
	// A required-type shipment must be in the vehicle at the dependent
	// shipment's delivery instant.
	InSameVehicleAtDeliveryTime
)

// ShipmentTypeRequirement demands that shipments of the dependent types
// travel with at least one shipment of a required alternative type.
type ShipmentTypeRequirement struct {
	RequiredShipmentTypeAlternatives []string        `json:"requiredShipmentTypeAlternatives"`
	DependentShipmentTypes           []string        `json:"dependentShipmentTypes"`
	RequirementMode                  RequirementMode `json:"requirementMode"`
}
