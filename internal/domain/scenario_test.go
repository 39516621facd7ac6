package domain

import (
	"strings"
	"testing"
)

func i64(v int64) *int64 { return &v }

func validScenario() *Scenario {
	return &Scenario{
		GlobalStartTime: 1000,
		GlobalEndTime:   5000,
		Shipments: []*Shipment{
			{ID: 1, Pickups: []int64{10}, Deliveries: []int64{11}, AllowedVehicleIndices: []int{0}},
		},
		Vehicles: []*Vehicle{{ID: 1}},
		VisitRequests: []*VisitRequest{
			{ID: 10, ShipmentID: 1, Pickup: true},
			{ID: 11, ShipmentID: 1},
		},
	}
}

func TestCheckReferencesValid(t *testing.T) {
	if err := validScenario().CheckReferences(); err != nil {
		t.Fatalf("CheckReferences() = %v, want nil", err)
	}
}

func TestCheckReferencesInvertedGlobalRange(t *testing.T) {
	s := validScenario()
	s.GlobalStartTime, s.GlobalEndTime = 5000, 1000

	err := s.CheckReferences()
	if err == nil {
		t.Fatal("CheckReferences() = nil, want error")
	}
	if !strings.Contains(err.Error(), "precedes") {
		t.Errorf("error = %q, want mention of inverted range", err)
	}
}

func TestCheckReferencesUnknownVisitRequest(t *testing.T) {
	s := validScenario()
	s.Shipments[0].Deliveries = []int64{99}

	err := s.CheckReferences()
	if err == nil {
		t.Fatal("CheckReferences() = nil, want error")
	}
	if !strings.Contains(err.Error(), "unknown visit request 99") {
		t.Errorf("error = %q, want unknown visit request", err)
	}
}

func TestCheckReferencesWrongOwner(t *testing.T) {
	s := validScenario()
	s.VisitRequests[1].ShipmentID = 2

	err := s.CheckReferences()
	if err == nil {
		t.Fatal("CheckReferences() = nil, want error")
	}
	if !strings.Contains(err.Error(), "belongs to shipment 2") {
		t.Errorf("error = %q, want ownership mismatch", err)
	}
}

func TestCheckReferencesAllowedIndexOutOfRange(t *testing.T) {
	s := validScenario()
	s.Shipments[0].AllowedVehicleIndices = []int{1}

	err := s.CheckReferences()
	if err == nil {
		t.Fatal("CheckReferences() = nil, want error")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error = %q, want index out of range", err)
	}
}

func TestTimeWindowOpenBounds(t *testing.T) {
	w := TimeWindow{}
	if got := w.StartOr(100); got != 100 {
		t.Errorf("StartOr(100) = %d, want 100", got)
	}
	if got := w.EndOr(900); got != 900 {
		t.Errorf("EndOr(900) = %d, want 900", got)
	}
	if !w.Contains(500, 100, 900) {
		t.Error("Contains(500) = false, want true for open window")
	}
}

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{StartTime: i64(200), EndTime: i64(400)}

	tests := []struct {
		t    int64
		want bool
	}{
		{199, false},
		{200, true},
		{400, true},
		{401, false},
	}
	for _, tc := range tests {
		if got := w.Contains(tc.t, 0, 1000); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestTimeWindowHalfOpen(t *testing.T) {
	w := TimeWindow{EndTime: i64(400)}
	if !w.Contains(100, 100, 1000) {
		t.Error("Contains(100) = false, want true at default start")
	}
	if w.Contains(500, 100, 1000) {
		t.Error("Contains(500) = true, want false past hard end")
	}
}
