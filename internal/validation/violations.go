package validation

// VisitViolations flags every advisory constraint a candidate visit
// placement breaks. Field names mirror the warning badges shown to the
// operator. A nil *VisitViolations means the placement is clean.
type VisitViolations struct {
	DeliveryOutOfRange     bool `json:"deliveryOutOfRange,omitempty"`
	GlobalOutOfRange       bool `json:"globalOutOfRange,omitempty"`
	VisitRequestOutOfRange bool `json:"visitRequestOutOfRange,omitempty"`
	VehicleOutOfRange      bool `json:"vehicleOutOfRange,omitempty"`

	// Offending or missing shipment types per type rule, deduplicated.
	ShipmentTypeCannotBePerformedBySameVehicle             []string `json:"shipmentTypeCannotBePerformedBySameVehicle,omitempty"`
	ShipmentTypeCannotBeInSameVehicleSimultaneously        []string `json:"shipmentTypeCannotBeInSameVehicleSimultaneously,omitempty"`
	ShipmentTypeMustBePerformedBySameVehicle               []string `json:"shipmentTypeMustBePerformedBySameVehicle,omitempty"`
	ShipmentTypeMustBePerformedBySameVehicleAtPickupTime   []string `json:"shipmentTypeMustBePerformedBySameVehicleAtPickupTime,omitempty"`
	ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime []string `json:"shipmentTypeMustBePerformedBySameVehicleAtDeliveryTime,omitempty"`

	// Signed overrun per demand type when the vehicle's remaining capacity
	// goes negative at the candidate pickup instant.
	ExcessDemand map[string]int64 `json:"excessDemand,omitempty"`
}

// Empty reports whether no check produced a violation.
func (v *VisitViolations) Empty() bool {
	return !v.DeliveryOutOfRange &&
		!v.GlobalOutOfRange &&
		!v.VisitRequestOutOfRange &&
		!v.VehicleOutOfRange &&
		len(v.ShipmentTypeCannotBePerformedBySameVehicle) == 0 &&
		len(v.ShipmentTypeCannotBeInSameVehicleSimultaneously) == 0 &&
		len(v.ShipmentTypeMustBePerformedBySameVehicle) == 0 &&
		len(v.ShipmentTypeMustBePerformedBySameVehicleAtPickupTime) == 0 &&
		len(v.ShipmentTypeMustBePerformedBySameVehicleAtDeliveryTime) == 0 &&
		len(v.ExcessDemand) == 0
}

// ShipmentViolations carries the request-level checks for one shipment.
type ShipmentViolations struct {
	// A declared time window falls outside the global planning horizon.
	TimeWindowOutOfRange bool `json:"timeWindowOutOfRange,omitempty"`
	// No allowed vehicle remains once ignored vehicles are excluded.
	AllowedVehicleIndices bool `json:"allowedVehicleIndices,omitempty"`
}

// VehicleViolations carries the request-level checks for one vehicle.
type VehicleViolations struct {
	TimeWindowOutOfRange bool `json:"timeWindowOutOfRange,omitempty"`
}

// RequestViolations pairs per-shipment and per-vehicle violations for a
// whole-scenario validation pass. Entities with no violations are absent
// from the maps.
type RequestViolations struct {
	Shipments map[int64]ShipmentViolations `json:"shipments"`
	Vehicles  map[int64]VehicleViolations  `json:"vehicles"`
}
