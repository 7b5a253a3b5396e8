package booking

import (
	"time"

	"github.com/go-playground/validator/v10"

	"safaribackend/internal/catalog"
	"safaribackend/internal/logger"
	"safaribackend/internal/pricing"
)

// Booking is a customer's request to reserve a tour and/or vehicle for a
// date range at a price computed once, at submission time. Reference fields
// are nil exactly when no corresponding selection was made.
type Booking struct {
	ID            string    `json:"id"`
	TourPackageID *string   `json:"tour_package_id"`
	VehicleID     *string   `json:"vehicle_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	NumPeople     int       `json:"num_people"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitRequest is the booking form payload. Date ordering is deliberately
// not validated: the form never checked it either, and a stay entered
// backwards is a data-entry problem, not a rejection case.
type SubmitRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	TourID     string `json:"tour_id"`
	VehicleID  string `json:"vehicle_id"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Notes      string `json:"notes"`
	AgreeTerms bool   `json:"agree_terms" validate:"eq=true"`
}

var validate = validator.New()

// ValidateRequest runs the struct validation rules on a submission.
func ValidateRequest(req SubmitRequest) error {
	return validate.Struct(req)
}

// Build assembles a Booking from a validated request. Traveler counts are
// clamped to the form ranges, the total is computed from whatever the
// catalog currently holds, and status always starts out pending. The
// record is not appended here; the caller owns the store write.
func Build(req SubmitRequest, cat *catalog.Service) (Booking, pricing.Quote) {
	adults := pricing.ClampAdults(req.Adults)
	children := pricing.ClampChildren(req.Children)

	sel := pricing.Selection{Adults: adults, Children: children}
	if req.TourID != "" {
		if tour, exists := cat.Tour(req.TourID); exists {
			sel.Tour = &tour
		} else {
			// Unknown ids are kept on the record but price as zero, the
			// same fallback the catalog views use for missing entries.
			logger.LogWarn("Booking references unknown tour id %q", req.TourID)
		}
	}
	if req.VehicleID != "" {
		if vehicle, exists := cat.Vehicle(req.VehicleID); exists {
			sel.Vehicle = &vehicle
		} else {
			logger.LogWarn("Booking references unknown vehicle id %q", req.VehicleID)
		}
	}

	quote := pricing.Calculate(sel)

	b := Booking{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Adults:        adults,
		Children:      children,
		NumPeople:     adults + children,
		TotalPrice:    quote.Total,
		Status:        StatusPending,
		CustomerName:  req.FirstName + " " + req.LastName,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Notes:         req.Notes,
		CreatedAt:     logger.Now(),
	}
	if req.TourID != "" {
		tourID := req.TourID
		b.TourPackageID = &tourID
	}
	if req.VehicleID != "" {
		vehicleID := req.VehicleID
		b.VehicleID = &vehicleID
	}

	return b, quote
}
