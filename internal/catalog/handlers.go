package catalog

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"safaribackend/internal/logger"
	"safaribackend/internal/middleware"
)

// Global catalog service for the public handlers
var service *Service

// SetService injects the catalog service
func SetService(s *Service) {
	service = s
}

// ListToursHandler serves GET /api/tours with search/duration/sort params.
func ListToursHandler(w http.ResponseWriter, r *http.Request) {
	filter := TourFilter{
		Search:   r.URL.Query().Get("search"),
		Duration: r.URL.Query().Get("duration"),
		SortBy:   r.URL.Query().Get("sort"),
	}

	tours := service.ListTours(filter)
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"tours": tours,
		"count": len(tours),
	})
}

// GetTourHandler serves GET /api/tours/{id}.
func GetTourHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tour, exists := service.Tour(id)
	if !exists {
		logger.LogWarn("Tour not found: %s", id)
		middleware.WriteAPIError(w, r, http.StatusNotFound, "tour_not_found", "Tour not found", "")
		return
	}

	middleware.WriteAPISuccess(w, r, tour)
}

// ListVehiclesHandler serves GET /api/vehicles. The booking form passes
// people=N to get only available vehicles with enough seats.
func ListVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	filter := VehicleFilter{
		Type:   r.URL.Query().Get("type"),
		SortBy: r.URL.Query().Get("sort"),
	}
	if peopleStr := r.URL.Query().Get("people"); peopleStr != "" {
		people, err := strconv.Atoi(peopleStr)
		if err != nil || people < 1 {
			middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_people", "people must be a positive integer", "")
			return
		}
		filter.People = people
	}

	vehicles := service.ListVehicles(filter)
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"vehicles": vehicles,
		"types":    service.VehicleTypes(),
		"count":    len(vehicles),
	})
}

// GetVehicleHandler serves GET /api/vehicles/{id}.
func GetVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	vehicle, exists := service.Vehicle(id)
	if !exists {
		logger.LogWarn("Vehicle not found: %s", id)
		middleware.WriteAPIError(w, r, http.StatusNotFound, "vehicle_not_found", "Vehicle not found", "")
		return
	}

	middleware.WriteAPISuccess(w, r, vehicle)
}

// ListReviewsHandler serves GET /api/reviews.
func ListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews := service.Reviews()
	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
