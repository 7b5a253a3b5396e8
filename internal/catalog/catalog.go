package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"safaribackend/internal/logger"
)

var (
	ErrNotFound     = errors.New("catalog entry not found")
	ErrInvalidPrice = errors.New("price must be a positive number")
)

// Service is the catalog store: the single source of truth for tour and
// vehicle records. It is seeded once at startup and mutated in place by the
// admin price editor; nothing is ever persisted or deleted.
type Service struct {
	tours    map[string]TourPackage
	vehicles map[string]Vehicle
	reviews  []Review

	// Insertion order, so listings are stable across calls
	tourOrder    []string
	vehicleOrder []string

	lastLoaded time.Time
	mutex      sync.RWMutex
}

// NewService returns a catalog seeded from the compiled-in fixtures.
func NewService() *Service {
	s := &Service{
		tours:    make(map[string]TourPackage),
		vehicles: make(map[string]Vehicle),
	}
	s.populate(defaultCatalog())
	return s
}

// LoadFromFile replaces the catalog contents with a unified JSON file.
func (s *Service) LoadFromFile(path string) error {
	logger.LogInfo("Loading catalog from file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	s.populate(c)

	logger.LogInfo("Successfully loaded catalog: %d tours, %d vehicles, %d reviews",
		len(c.Tours), len(c.Vehicles), len(c.Reviews))
	return nil
}

func (s *Service) populate(c Catalog) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tours = make(map[string]TourPackage)
	s.vehicles = make(map[string]Vehicle)
	s.tourOrder = s.tourOrder[:0]
	s.vehicleOrder = s.vehicleOrder[:0]

	for _, tour := range c.Tours {
		if tour.Price <= 0 || tour.Duration <= 0 {
			logger.LogWarn("Skipping tour %q: price and duration must be positive", tour.ID)
			continue
		}
		s.tours[tour.ID] = tour
		s.tourOrder = append(s.tourOrder, tour.ID)
	}

	for _, vehicle := range c.Vehicles {
		if vehicle.PricePerDay <= 0 || vehicle.Capacity <= 0 {
			logger.LogWarn("Skipping vehicle %q: price and capacity must be positive", vehicle.ID)
			continue
		}
		s.vehicles[vehicle.ID] = vehicle
		s.vehicleOrder = append(s.vehicleOrder, vehicle.ID)
	}

	s.reviews = c.Reviews
	s.lastLoaded = time.Now()
}

// Tour returns a tour package by id.
func (s *Service) Tour(id string) (TourPackage, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tour, exists := s.tours[id]
	return tour, exists
}

// Vehicle returns a vehicle by id.
func (s *Service) Vehicle(id string) (Vehicle, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	vehicle, exists := s.vehicles[id]
	return vehicle, exists
}

// Reviews returns the fixed review records.
func (s *Service) Reviews() []Review {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// SetTourPrice overwrites the price of a single tour. All other fields stay
// untouched. Last write wins; there is no audit trail.
func (s *Service) SetTourPrice(id string, price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tour, exists := s.tours[id]
	if !exists {
		return ErrNotFound
	}
	tour.Price = price
	s.tours[id] = tour

	logger.LogInfo("Tour %s price updated to %.2f", id, price)
	return nil
}

// SetVehiclePrice overwrites the daily rate of a single vehicle.
func (s *Service) SetVehiclePrice(id string, price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	vehicle, exists := s.vehicles[id]
	if !exists {
		return ErrNotFound
	}
	vehicle.PricePerDay = price
	s.vehicles[id] = vehicle

	logger.LogInfo("Vehicle %s daily rate updated to %.2f", id, price)
	return nil
}

// =============================================================================
// LISTING, FILTERING AND SORTING
// =============================================================================

// TourFilter mirrors the tour listing page controls: free-text search,
// duration buckets and price/duration sorts.
type TourFilter struct {
	Search   string
	Duration string // all | short (<=5) | medium (6-8) | long (>8)
	SortBy   string // price-low | price-high | duration-low | duration-high
}

// ListTours returns tours matching the filter, in listing order unless a
// sort is requested.
func (s *Service) ListTours(f TourFilter) []TourPackage {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var tours []TourPackage
	search := strings.ToLower(f.Search)
	for _, id := range s.tourOrder {
		tour := s.tours[id]
		if search != "" && !tourMatchesSearch(tour, search) {
			continue
		}
		if !durationInBucket(tour.Duration, f.Duration) {
			continue
		}
		tours = append(tours, tour)
	}

	switch f.SortBy {
	case "price-low":
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price < tours[j].Price })
	case "price-high":
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price > tours[j].Price })
	case "duration-low":
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Duration < tours[j].Duration })
	case "duration-high":
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Duration > tours[j].Duration })
	}

	return tours
}

func tourMatchesSearch(tour TourPackage, search string) bool {
	if strings.Contains(strings.ToLower(tour.Title), search) ||
		strings.Contains(strings.ToLower(tour.Description), search) {
		return true
	}
	for _, attraction := range tour.Attractions {
		if strings.Contains(strings.ToLower(attraction), search) {
			return true
		}
	}
	return false
}

func durationInBucket(days int, bucket string) bool {
	switch bucket {
	case "", "all":
		return true
	case "short":
		return days <= 5
	case "medium":
		return days > 5 && days <= 8
	case "long":
		return days > 8
	default:
		return false
	}
}

// VehicleFilter mirrors the vehicle listing and booking-form controls. When
// People > 0 only available vehicles with enough capacity are returned.
type VehicleFilter struct {
	Type   string
	People int
	SortBy string // price-low | price-high | capacity-low | capacity-high
}

// ListVehicles returns vehicles matching the filter.
func (s *Service) ListVehicles(f VehicleFilter) []Vehicle {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var vehicles []Vehicle
	for _, id := range s.vehicleOrder {
		vehicle := s.vehicles[id]
		if f.Type != "" && f.Type != "all" && !strings.EqualFold(vehicle.Type, f.Type) {
			continue
		}
		if f.People > 0 && (!vehicle.Available || vehicle.Capacity < f.People) {
			continue
		}
		vehicles = append(vehicles, vehicle)
	}

	switch f.SortBy {
	case "price-low":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].PricePerDay < vehicles[j].PricePerDay })
	case "price-high":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].PricePerDay > vehicles[j].PricePerDay })
	case "capacity-low":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Capacity < vehicles[j].Capacity })
	case "capacity-high":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Capacity > vehicles[j].Capacity })
	}

	return vehicles
}

// VehicleTypes returns the distinct vehicle type labels, sorted.
func (s *Service) VehicleTypes() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seen := make(map[string]bool)
	var types []string
	for _, vehicle := range s.vehicles {
		if !seen[vehicle.Type] {
			seen[vehicle.Type] = true
			types = append(types, vehicle.Type)
		}
	}
	sort.Strings(types)
	return types
}

// Attractions returns the distinct attraction labels across all tours,
// sorted. The enquiry form offers these as checkboxes.
func (s *Service) Attractions() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seen := make(map[string]bool)
	var attractions []string
	for _, tour := range s.tours {
		for _, attraction := range tour.Attractions {
			if !seen[attraction] {
				seen[attraction] = true
				attractions = append(attractions, attraction)
			}
		}
	}
	sort.Strings(attractions)
	return attractions
}

// Stats returns catalog statistics for the admin dashboard.
func (s *Service) Stats() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	availableVehicles := 0
	for _, vehicle := range s.vehicles {
		if vehicle.Available {
			availableVehicles++
		}
	}

	return map[string]interface{}{
		"tours_count":        len(s.tours),
		"vehicles_count":     len(s.vehicles),
		"vehicles_available": availableVehicles,
		"reviews_count":      len(s.reviews),
		"last_loaded":        s.lastLoaded,
	}
}
