// internal/admin/handlers.go
package admin

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"safaribackend/internal/booking"
	"safaribackend/internal/catalog"
	"safaribackend/internal/config"
	"safaribackend/internal/enquiry"
	"safaribackend/internal/logger"
	"safaribackend/internal/middleware"
)

var (
	catalogService *catalog.Service
	bookingStore   *booking.Store
	enquiryStore   *enquiry.Store
)

// SetServices injects the stores the admin surface operates on
func SetServices(cat *catalog.Service, bookings *booking.Store, enquiries *enquiry.Store) {
	catalogService = cat
	bookingStore = bookings
	enquiryStore = enquiries
}

type loginRequest struct {
	Password string `json:"password"`
}

// LoginHandler serves POST /api/admin/login.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	logger.LogHTTPRequest(r)

	var req loginRequest
	if err := middleware.ParseJSONRequest(r, &req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_request", "Invalid login request", err.Error())
		return
	}

	expected := config.AdminPassword()
	if expected == "" || subtle.ConstantTimeCompare([]byte(req.Password), []byte(expected)) != 1 {
		logger.LogWarn("Failed admin login attempt from %s", logger.GetClientIP(r))
		middleware.WriteAPIError(w, r, http.StatusUnauthorized, "invalid_credentials", "Invalid password", "")
		return
	}

	token := IssueToken()
	logger.LogInfo("Admin login from %s", logger.GetClientIP(r))
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"token":      token,
		"expires_in": int(config.AdminSessionTTL.Seconds()),
	})
}

// LogoutHandler serves POST /api/admin/logout.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get("X-Admin-Token"); token != "" {
		RevokeToken(token)
	}
	middleware.WriteAPISuccess(w, r, map[string]string{"message": "Logged out"})
}

type priceUpdateRequest struct {
	Price float64 `json:"price"`
}

// UpdateTourPriceHandler serves PUT /api/admin/tours/{id}/price. A body
// that is not a positive number leaves the stored price untouched.
func UpdateTourPriceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req priceUpdateRequest
	if err := middleware.ParseJSONRequest(r, &req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_price", "Price must be a number", err.Error())
		return
	}

	if err := catalogService.SetTourPrice(id, req.Price); err != nil {
		writePriceUpdateError(w, r, err)
		return
	}

	tour, _ := catalogService.Tour(id)
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"tour":    tour,
		"message": "Tour price updated successfully. This change will be reflected throughout the site.",
	})
}

// UpdateVehiclePriceHandler serves PUT /api/admin/vehicles/{id}/price.
func UpdateVehiclePriceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req priceUpdateRequest
	if err := middleware.ParseJSONRequest(r, &req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_price", "Price must be a number", err.Error())
		return
	}

	if err := catalogService.SetVehiclePrice(id, req.Price); err != nil {
		writePriceUpdateError(w, r, err)
		return
	}

	vehicle, _ := catalogService.Vehicle(id)
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"vehicle": vehicle,
		"message": "Vehicle price updated successfully. This change will be reflected throughout the site.",
	})
}

func writePriceUpdateError(w http.ResponseWriter, r *http.Request, err error) {
	logger.LogHTTPError(r, http.StatusBadRequest, err)
	switch {
	case errors.Is(err, catalog.ErrInvalidPrice):
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_price", "Price must be a positive number", "")
	case errors.Is(err, catalog.ErrNotFound):
		middleware.WriteAPIError(w, r, http.StatusNotFound, "not_found", "Catalog entry not found", "")
	default:
		middleware.WriteAPIError(w, r, http.StatusInternalServerError, "internal_error", "Price update failed", "")
	}
}

// ListBookingsHandler serves GET /api/admin/bookings with the status filter
// and free-text search the dashboard table uses.
func ListBookingsHandler(w http.ResponseWriter, r *http.Request) {
	filter := booking.ListFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	bookings := bookingStore.List(filter)
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// ConfirmBookingHandler serves POST /api/admin/bookings/{id}/confirm. Only
// pending bookings can be confirmed.
func ConfirmBookingHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := bookingStore.Confirm(id)
	switch {
	case errors.Is(err, booking.ErrNotFound):
		middleware.WriteAPIError(w, r, http.StatusNotFound, "not_found", "Booking not found", "")
		return
	case errors.Is(err, booking.ErrNotPending):
		middleware.WriteAPIError(w, r, http.StatusConflict, "not_pending", "Only pending bookings can be confirmed", "")
		return
	case err != nil:
		middleware.WriteAPIError(w, r, http.StatusInternalServerError, "internal_error", "Confirmation failed", "")
		return
	}

	logger.LogInfo("Booking %s confirmed", id)
	middleware.WriteAPISuccess(w, r, record)
}

// ListEnquiriesHandler serves GET /api/admin/enquiries.
func ListEnquiriesHandler(w http.ResponseWriter, r *http.Request) {
	enquiries := enquiryStore.List()
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"enquiries": enquiries,
		"count":     len(enquiries),
	})
}

// DashboardHandler serves GET /api/admin/dashboard: the counters shown on
// the admin landing page.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats := catalogService.Stats()
	stats["bookings_total"] = bookingStore.Count("")
	stats["bookings_pending"] = bookingStore.Count(booking.StatusPending)
	stats["bookings_confirmed"] = bookingStore.Count(booking.StatusConfirmed)
	stats["enquiries_count"] = enquiryStore.Count()

	middleware.WriteAPISuccess(w, r, stats)
}
