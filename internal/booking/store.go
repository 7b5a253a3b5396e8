package booking

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrNotFound     = errors.New("booking not found")
	ErrNotPending   = errors.New("only pending bookings can be confirmed")
	ErrInvalidState = errors.New("invalid booking status")
)

// Booking statuses. Nothing in the current flows ever moves a booking to
// cancelled, but the status is part of the record's contract.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Store holds the booking collection in memory. IDs are sequential strings
// issued by a counter under the store lock, so concurrent submissions can
// never collide the way length-derived ids would.
type Store struct {
	mu       sync.RWMutex
	bookings []Booking
	nextID   int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next id and adds the record to the collection. The
// returned copy carries the assigned id.
func (s *Store) Append(b Booking) Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.bookings = append(s.bookings, b)
	return b
}

// Get returns a booking by id.
func (s *Store) Get(id string) (Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}

// Confirm moves a pending booking to confirmed. Any other starting status
// is an error; confirmed and cancelled records never change again.
func (s *Store) Confirm(id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if s.bookings[i].Status != StatusPending {
			return Booking{}, ErrNotPending
		}
		s.bookings[i].Status = StatusConfirmed
		return s.bookings[i], nil
	}
	return Booking{}, ErrNotFound
}

// ListFilter mirrors the admin booking table controls.
type ListFilter struct {
	Status string // all | pending | confirmed | cancelled
	Search string // matches id, customer name or email
}

// List returns bookings matching the filter, oldest first.
func (s *Store) List(f ListFilter) []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	var out []Booking
	for _, b := range s.bookings {
		if f.Status != "" && f.Status != "all" && b.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), search) &&
			!strings.Contains(strings.ToLower(b.CustomerEmail), search) &&
			b.ID != f.Search {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Count returns how many bookings are in the given status ("" for all).
func (s *Store) Count(status string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if status == "" {
		return len(s.bookings)
	}
	n := 0
	for _, b := range s.bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}
