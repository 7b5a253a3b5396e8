package booking

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"safaribackend/internal/catalog"
	"safaribackend/internal/logger"
	"safaribackend/internal/middleware"
	"safaribackend/internal/pricing"
)

var (
	catalogService *catalog.Service
	store          *Store

	rateLimiter       = make(map[string]time.Time)
	rateLimitDuration = time.Minute
	rateLimiterMu     sync.Mutex
)

var (
	statsMu               sync.Mutex
	totalSubmissions      int
	successfulSubmissions int
	validationFailures    int
	rateLimitBlocks       int
)

// SetServices injects the catalog service and booking store
func SetServices(cat *catalog.Service, s *Store) {
	catalogService = cat
	store = s
}

func logAndIncrement(stat *int, label string) {
	statsMu.Lock()
	*stat++
	count := *stat
	statsMu.Unlock()
	logger.LogInfo("Stat update: %s = %d", label, count)
}

// quoteRequest carries a price preview request. Ids may be empty or
// unknown; both simply contribute zero.
type quoteRequest struct {
	TourID    string `json:"tour_id"`
	VehicleID string `json:"vehicle_id"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
}

// QuoteHandler serves POST /api/quote: the live price preview shown in the
// booking summary panel.
func QuoteHandler(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := middleware.ParseJSONRequest(r, &req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_request", "Invalid quote request", err.Error())
		return
	}

	quote := buildQuote(req.TourID, req.VehicleID, req.Adults, req.Children)
	middleware.WriteAPISuccess(w, r, quote)
}

func buildQuote(tourID, vehicleID string, adults, children int) pricing.Quote {
	sel := pricing.Selection{
		Adults:   pricing.ClampAdults(adults),
		Children: pricing.ClampChildren(children),
	}
	if tourID != "" {
		if tour, exists := catalogService.Tour(tourID); exists {
			sel.Tour = &tour
		}
	}
	if vehicleID != "" {
		if vehicle, exists := catalogService.Vehicle(vehicleID); exists {
			sel.Vehicle = &vehicle
		}
	}
	return pricing.Calculate(sel)
}

// PrefillHandler serves GET /api/bookings/new. The query contract matches
// the links the catalog pages produce: tour, vehicle, startDate, endDate,
// people.
func PrefillHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	adults := 1
	if peopleStr := q.Get("people"); peopleStr != "" {
		if people, err := strconv.Atoi(peopleStr); err == nil {
			adults = pricing.ClampAdults(people)
		}
	}

	prefill := map[string]interface{}{
		"tour":       nil,
		"vehicle":    nil,
		"start_date": q.Get("startDate"),
		"end_date":   q.Get("endDate"),
		"adults":     adults,
		"children":   0,
	}

	if tourID := q.Get("tour"); tourID != "" {
		if tour, exists := catalogService.Tour(tourID); exists {
			prefill["tour"] = tour
		}
	}
	if vehicleID := q.Get("vehicle"); vehicleID != "" {
		if vehicle, exists := catalogService.Vehicle(vehicleID); exists {
			prefill["vehicle"] = vehicle
		}
	}

	// The vehicle dropdown only offers available units with enough seats.
	prefill["vehicle_options"] = catalogService.ListVehicles(catalog.VehicleFilter{People: adults})
	prefill["quote"] = buildQuote(q.Get("tour"), q.Get("vehicle"), adults, 0)

	middleware.WriteAPISuccess(w, r, prefill)
}

// SubmitHandler serves POST /api/bookings: validates the form, computes the
// total, appends the record and answers with the confirmation message.
func SubmitHandler(w http.ResponseWriter, r *http.Request) {
	logger.LogHTTPRequest(r)
	logAndIncrement(&totalSubmissions, "total_submissions")

	clientIP := logger.GetClientIP(r)
	if isRateLimited(clientIP) {
		err := fmt.Errorf("rate limit exceeded for %s", clientIP)
		logger.LogHTTPError(r, http.StatusTooManyRequests, err)
		logAndIncrement(&rateLimitBlocks, "rate_limit_blocks")
		middleware.WriteAPIError(w, r, http.StatusTooManyRequests, "rate_limit_exceeded",
			"Too many requests. Please wait before submitting again.", "")
		return
	}

	var req SubmitRequest
	if err := middleware.ParseJSONRequest(r, &req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_request", "Invalid booking submission", err.Error())
		return
	}

	if err := ValidateRequest(req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		logAndIncrement(&validationFailures, "validation_failures")
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "validation_failed", "Booking form is incomplete or invalid", err.Error())
		return
	}

	setRateLimit(clientIP)

	record, quote := Build(req, catalogService)
	record = store.Append(record)

	logger.LogInfo("Booking %s created: customer=%s, total=%.2f", record.ID, record.CustomerName, record.TotalPrice)
	logAndIncrement(&successfulSubmissions, "successful_submissions")

	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"booking": record,
		"quote":   quote,
		"message": fmt.Sprintf("Booking confirmed! Total price: $%.2f", record.TotalPrice),
	})
}

func isRateLimited(ip string) bool {
	rateLimiterMu.Lock()
	defer rateLimiterMu.Unlock()
	last, ok := rateLimiter[ip]
	return ok && time.Since(last) < rateLimitDuration
}

func setRateLimit(ip string) {
	rateLimiterMu.Lock()
	defer rateLimiterMu.Unlock()
	rateLimiter[ip] = time.Now()
}
