package pricing

import (
	"math"
	"testing"

	"safaribackend/internal/catalog"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTourSubtotalAcrossRanges(t *testing.T) {
	tour := &catalog.TourPackage{ID: "t1", Price: 500, Duration: 5}

	for adults := MinAdults; adults <= MaxAdults; adults++ {
		for children := MinChildren; children <= MaxChildren; children++ {
			q := Calculate(Selection{Tour: tour, Adults: adults, Children: children})
			want := tour.Price * (float64(adults) + float64(children)*ChildRateFactor)
			if !almostEqual(q.TourSubtotal, want) {
				t.Errorf("adults=%d children=%d: tour subtotal = %v, want %v", adults, children, q.TourSubtotal, want)
			}
			if !almostEqual(q.Total, want) {
				t.Errorf("adults=%d children=%d: total = %v, want %v (no vehicle)", adults, children, q.Total, want)
			}
		}
	}
}

func TestVehicleRentalSpansTourDuration(t *testing.T) {
	tour := &catalog.TourPackage{ID: "t1", Price: 500, Duration: 5}
	vehicle := &catalog.Vehicle{ID: "v1", PricePerDay: 100}

	q := Calculate(Selection{Tour: tour, Vehicle: vehicle, Adults: 2, Children: 1})

	if q.RentalDays != 5 {
		t.Errorf("rental days = %d, want tour duration 5", q.RentalDays)
	}
	if !almostEqual(q.TourSubtotal, 1350) {
		t.Errorf("tour subtotal = %v, want 1350", q.TourSubtotal)
	}
	if !almostEqual(q.VehicleSubtotal, 500) {
		t.Errorf("vehicle subtotal = %v, want 500", q.VehicleSubtotal)
	}
	if !almostEqual(q.Total, 1850) {
		t.Errorf("total = %v, want 1850", q.Total)
	}
}

func TestVehicleOnlyDefaultsToOneDay(t *testing.T) {
	vehicle := &catalog.Vehicle{ID: "v1", PricePerDay: 80}

	q := Calculate(Selection{Vehicle: vehicle, Adults: 4})

	if q.RentalDays != 1 {
		t.Errorf("rental days = %d, want 1 when no tour is selected", q.RentalDays)
	}
	if !almostEqual(q.VehicleSubtotal, 80) {
		t.Errorf("vehicle subtotal = %v, want 80", q.VehicleSubtotal)
	}
	if !almostEqual(q.Total, 80) {
		t.Errorf("total = %v, want 80", q.Total)
	}
	if !almostEqual(q.TourSubtotal, 0) {
		t.Errorf("tour subtotal = %v, want 0", q.TourSubtotal)
	}
}

func TestEmptySelectionIsFree(t *testing.T) {
	q := Calculate(Selection{Adults: 2, Children: 3})

	if q.Total != 0 || q.TourSubtotal != 0 || q.VehicleSubtotal != 0 {
		t.Errorf("empty selection: got %+v, want all zero", q)
	}
}

func TestCalculateIsPure(t *testing.T) {
	tour := &catalog.TourPackage{ID: "t1", Price: 1200, Duration: 7}
	vehicle := &catalog.Vehicle{ID: "v1", PricePerDay: 150}
	sel := Selection{Tour: tour, Vehicle: vehicle, Adults: 3, Children: 2}

	first := Calculate(sel)
	second := Calculate(sel)

	if first != second {
		t.Errorf("repeated calculation differs: %+v vs %+v", first, second)
	}
	if tour.Price != 1200 || vehicle.PricePerDay != 150 {
		t.Errorf("calculate mutated its inputs")
	}
}

func TestClamping(t *testing.T) {
	tests := []struct {
		name string
		fn   func(int) int
		in   int
		want int
	}{
		{"adults below min", ClampAdults, 0, 1},
		{"adults negative", ClampAdults, -3, 1},
		{"adults above max", ClampAdults, 15, 10},
		{"adults in range", ClampAdults, 4, 4},
		{"children below min", ClampChildren, -1, 0},
		{"children above max", ClampChildren, 11, 10},
		{"children in range", ClampChildren, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRoundDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1349.999, 1350},
		{123.4567, 123.46},
		{0, 0},
		{19.994, 19.99},
	}

	for _, tt := range tests {
		if got := RoundDisplay(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("RoundDisplay(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
