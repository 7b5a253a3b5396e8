// Package pricing computes booking totals. Everything here is a pure
// function over the selected catalog records; nothing is read from or
// written to shared state.
package pricing

import "safaribackend/internal/catalog"

// ChildRateFactor prices a child at 70% of an adult. It is fixed; there is
// no configuration point for it.
const ChildRateFactor = 0.7

// Traveler count bounds enforced by the booking form controls. The
// calculator itself does not validate; callers clamp before quoting.
const (
	MinAdults   = 1
	MaxAdults   = 10
	MinChildren = 0
	MaxChildren = 10
)

// Selection is one booking choice. Tour and Vehicle are nil when nothing
// was selected; a nil selection simply contributes nothing to the total.
type Selection struct {
	Tour     *catalog.TourPackage
	Vehicle  *catalog.Vehicle
	Adults   int
	Children int
}

// Quote is the price breakdown for a selection.
type Quote struct {
	TourSubtotal    float64 `json:"tour_subtotal"`
	VehicleSubtotal float64 `json:"vehicle_subtotal"`
	RentalDays      int     `json:"rental_days"`
	Total           float64 `json:"total"`
}

// Calculate produces the total for a selection.
//
// The vehicle rental is assumed to span the selected tour, so the vehicle
// subtotal is priced over the tour's duration, not the booking's own date
// range. With no tour selected the rental is priced for a single day.
func Calculate(sel Selection) Quote {
	var q Quote

	if sel.Tour != nil {
		q.TourSubtotal = sel.Tour.Price * (float64(sel.Adults) + float64(sel.Children)*ChildRateFactor)
	}

	q.RentalDays = 1
	if sel.Tour != nil {
		q.RentalDays = sel.Tour.Duration
	}

	if sel.Vehicle != nil {
		q.VehicleSubtotal = sel.Vehicle.PricePerDay * float64(q.RentalDays)
	}

	q.Total = q.TourSubtotal + q.VehicleSubtotal
	return q
}

// ClampAdults forces an adult count into the form's allowed range.
func ClampAdults(n int) int {
	if n < MinAdults {
		return MinAdults
	}
	if n > MaxAdults {
		return MaxAdults
	}
	return n
}

// ClampChildren forces a child count into the form's allowed range.
func ClampChildren(n int) int {
	if n < MinChildren {
		return MinChildren
	}
	if n > MaxChildren {
		return MaxChildren
	}
	return n
}

// RoundDisplay rounds to 2 decimal places for presentation. Stored totals
// keep full precision.
func RoundDisplay(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
