package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"safaribackend/internal/catalog"
)

var testIPCounter int

// nextTestIP hands each request its own client address so the per-IP
// submission limiter never trips across tests.
func nextTestIP() string {
	testIPCounter++
	return fmt.Sprintf("10.0.%d.%d", testIPCounter/250, testIPCounter%250)
}

func setupHandlers(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	SetServices(catalog.NewService(), s)
	return s
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", nextTestIP())
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestQuoteHandler(t *testing.T) {
	setupHandlers(t)

	rec := postJSON(t, QuoteHandler, "/api/quote", map[string]interface{}{
		"tour_id":    "1",
		"vehicle_id": "1",
		"adults":     2,
		"children":   1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	var quote struct {
		TourSubtotal    float64 `json:"tour_subtotal"`
		VehicleSubtotal float64 `json:"vehicle_subtotal"`
		RentalDays      int     `json:"rental_days"`
		Total           float64 `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &quote); err != nil {
		t.Fatal(err)
	}

	// Tour 1 is $1200 over 5 days, vehicle 1 is $120/day
	if quote.TourSubtotal != 1200*(2+0.7) {
		t.Errorf("tour subtotal = %v", quote.TourSubtotal)
	}
	if quote.VehicleSubtotal != 600 {
		t.Errorf("vehicle subtotal = %v, want 600", quote.VehicleSubtotal)
	}
	if quote.RentalDays != 5 {
		t.Errorf("rental days = %d, want 5", quote.RentalDays)
	}
	if quote.Total != quote.TourSubtotal+quote.VehicleSubtotal {
		t.Errorf("total = %v, want sum of subtotals", quote.Total)
	}
}

func TestQuoteHandlerRejectsBadJSON(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	QuoteHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPrefillHandler(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/new?tour=1&startDate=2026-09-10&endDate=2026-09-15&people=4", nil)
	rec := httptest.NewRecorder()
	PrefillHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	var prefill struct {
		Tour           *catalog.TourPackage `json:"tour"`
		Vehicle        *catalog.Vehicle     `json:"vehicle"`
		StartDate      string               `json:"start_date"`
		EndDate        string               `json:"end_date"`
		Adults         int                  `json:"adults"`
		VehicleOptions []catalog.Vehicle    `json:"vehicle_options"`
	}
	if err := json.Unmarshal(env.Data, &prefill); err != nil {
		t.Fatal(err)
	}

	if prefill.Tour == nil || prefill.Tour.ID != "1" {
		t.Errorf("prefill tour = %+v, want tour 1", prefill.Tour)
	}
	if prefill.Vehicle != nil {
		t.Errorf("no vehicle requested, got %+v", prefill.Vehicle)
	}
	if prefill.StartDate != "2026-09-10" || prefill.EndDate != "2026-09-15" {
		t.Errorf("dates not carried through: %s / %s", prefill.StartDate, prefill.EndDate)
	}
	if prefill.Adults != 4 {
		t.Errorf("adults = %d, want 4", prefill.Adults)
	}
	for _, v := range prefill.VehicleOptions {
		if !v.Available || v.Capacity < 4 {
			t.Errorf("vehicle option %s does not fit 4 people", v.ID)
		}
	}
}

func TestPrefillHandlerDefaults(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/new", nil)
	rec := httptest.NewRecorder()
	PrefillHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	var prefill struct {
		Tour   interface{} `json:"tour"`
		Adults int         `json:"adults"`
		Quote  struct {
			Total float64 `json:"total"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(env.Data, &prefill); err != nil {
		t.Fatal(err)
	}

	if prefill.Tour != nil {
		t.Errorf("empty query should prefill no tour, got %v", prefill.Tour)
	}
	if prefill.Adults != 1 {
		t.Errorf("default adults = %d, want 1", prefill.Adults)
	}
	if prefill.Quote.Total != 0 {
		t.Errorf("empty quote total = %v, want 0", prefill.Quote.Total)
	}
}

func TestSubmitHandler(t *testing.T) {
	s := setupHandlers(t)

	req := validSubmitRequest()
	rec := postJSON(t, SubmitHandler, "/api/bookings", req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	var resp struct {
		Booking Booking `json:"booking"`
		Message string  `json:"message"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Booking.ID == "" {
		t.Error("response booking has no id")
	}
	if resp.Booking.Status != StatusPending {
		t.Errorf("status = %q, want pending", resp.Booking.Status)
	}
	wantMessage := fmt.Sprintf("Booking confirmed! Total price: $%.2f", resp.Booking.TotalPrice)
	if resp.Message != wantMessage {
		t.Errorf("message = %q, want %q", resp.Message, wantMessage)
	}

	if _, ok := s.Get(resp.Booking.ID); !ok {
		t.Error("submitted booking not in the store")
	}
}

func TestSubmitHandlerValidationFailure(t *testing.T) {
	s := setupHandlers(t)

	req := validSubmitRequest()
	req.Email = "broken"
	rec := postJSON(t, SubmitHandler, "/api/bookings", req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if s.Count("") != 0 {
		t.Error("rejected submission must not be stored")
	}
}

func TestSubmitHandlerRateLimitsRepeats(t *testing.T) {
	setupHandlers(t)
	ip := nextTestIP()

	submit := func() *httptest.ResponseRecorder {
		payload, _ := json.Marshal(validSubmitRequest())
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		SubmitHandler(rec, req)
		return rec
	}

	if rec := submit(); rec.Code != http.StatusOK {
		t.Fatalf("first submission: status = %d", rec.Code)
	}
	if rec := submit(); rec.Code != http.StatusTooManyRequests {
		t.Errorf("repeat submission: status = %d, want 429", rec.Code)
	}
}
