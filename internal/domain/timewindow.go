package domain

// TimeWindow bounds when a visit may start or a vehicle may operate.
// Bounds are epoch seconds. A nil hard bound means the window is open on
// that side and defaults to the scenario's global range. Soft bounds and
// their cost coefficients are carried for model completeness; advisory
// validation only looks at the hard bounds.
type TimeWindow struct {
	StartTime                      *int64  `json:"startTime,omitempty"`
	EndTime                        *int64  `json:"endTime,omitempty"`
	SoftStartTime                  *int64  `json:"softStartTime,omitempty"`
	SoftEndTime                    *int64  `json:"softEndTime,omitempty"`
	CostPerHourBeforeSoftStartTime float64 `json:"costPerHourBeforeSoftStartTime,omitempty"`
	CostPerHourAfterSoftEndTime    float64 `json:"costPerHourAfterSoftEndTime,omitempty"`
}

// StartOr returns the hard start bound, or def when the window is open-ended.
func (w TimeWindow) StartOr(def int64) int64 {
	if w.StartTime != nil {
		return *w.StartTime
	}
	return def
}

// EndOr returns the hard end bound, or def when the window is open-ended.
func (w TimeWindow) EndOr(def int64) int64 {
	if w.EndTime != nil {
		return *w.EndTime
	}
	return def
}

// Contains reports whether t falls inside the window after substituting the
// given defaults for open bounds.
func (w TimeWindow) Contains(t, defStart, defEnd int64) bool {
	return t >= w.StartOr(defStart) && t <= w.EndOr(defEnd)
}
