// Package enquiry handles the free-form customer enquiry form. Enquiries
// never touch the catalog or booking collections; accepted ones are kept in
// a process-local list so the admin panel can show them.
package enquiry

import (
	"errors"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"safaribackend/internal/logger"
	"safaribackend/internal/middleware"
)

// Enquiry statuses. Only "new" is assigned by this backend; the rest exist
// for the admin workflow.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
	StatusClosed    = "closed"
)

type Enquiry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	NumPeople     int       `json:"num_people"`
	StartDate     *string   `json:"start_date"`
	EndDate       *string   `json:"end_date"`
	TourPackageID *string   `json:"tour_package_id"`
	Attractions   []string  `json:"attractions"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitRequest is the enquiry form payload.
type SubmitRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	NumPeople   int      `json:"num_people"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	TourID      string   `json:"tour_id"`
	Attractions []string `json:"attractions"`
	Message     string   `json:"message"`
}

// The same loose pattern the enquiry form always used: local part, @, and a
// dot somewhere in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrMissingFields = errors.New("Please fill in all required fields")
	ErrInvalidEmail  = errors.New("Please enter a valid email address")
)

// Validate applies the form rules in order; the first failing rule wins and
// later rules are not evaluated.
func Validate(req SubmitRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Store is the process-local enquiry list.
type Store struct {
	mu        sync.RWMutex
	enquiries []Enquiry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(e Enquiry) Enquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enquiries = append(s.enquiries, e)
	return e
}

func (s *Store) List() []Enquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Enquiry, len(s.enquiries))
	copy(out, s.enquiries)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.enquiries)
}

// Global store for the handlers
var store *Store

// SetStore injects the enquiry store
func SetStore(s *Store) {
	store = s
}

// SubmitHandler serves POST /api/enquiries.
func SubmitHandler(w http.ResponseWriter, r *http.Request) {
	logger.LogHTTPRequest(r)

	var req SubmitRequest
	if err := middleware.ParseJSONRequest(r, &req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "invalid_request", "Invalid enquiry submission", err.Error())
		return
	}

	if err := Validate(req); err != nil {
		logger.LogHTTPError(r, http.StatusBadRequest, err)
		middleware.WriteAPIError(w, r, http.StatusBadRequest, "validation_failed", err.Error(), "")
		return
	}

	e := Enquiry{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		NumPeople:   req.NumPeople,
		Attractions: req.Attractions,
		Message:     req.Message,
		Status:      StatusNew,
		CreatedAt:   logger.Now(),
	}
	if req.StartDate != "" {
		startDate := req.StartDate
		e.StartDate = &startDate
	}
	if req.EndDate != "" {
		endDate := req.EndDate
		e.EndDate = &endDate
	}
	if req.TourID != "" {
		tourID := req.TourID
		e.TourPackageID = &tourID
	}

	store.Append(e)
	logger.LogInfo("Enquiry %s received from %s <%s>", e.ID, e.Name, e.Email)

	middleware.WriteAPISuccess(w, r, map[string]interface{}{
		"enquiry_id": e.ID,
		"message":    "Thank you for your enquiry! We will get back to you within 24 hours.",
	})
}
