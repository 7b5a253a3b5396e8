package enquiry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:      "Anna Shikongo",
		Email:     "anna@example.com",
		Phone:     "+264 81 123 4567",
		NumPeople: 2,
		StartDate: "2026-09-10",
		EndDate:   "2026-09-15",
		TourID:    "1",
		Message:   "Interested in a desert tour for two.",
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(validRequest()); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
		want   error
	}{
		{"missing name", func(r *SubmitRequest) { r.Name = "" }, ErrMissingFields},
		{"missing email", func(r *SubmitRequest) { r.Email = "" }, ErrMissingFields},
		{"missing message", func(r *SubmitRequest) { r.Message = "" }, ErrMissingFields},
		{"bad email", func(r *SubmitRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"email without dot", func(r *SubmitRequest) { r.Email = "anna@example" }, ErrInvalidEmail},
		{"email with space", func(r *SubmitRequest) { r.Email = "anna smith@example.com" }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		req := validRequest()
		tt.mutate(&req)
		if err := Validate(req); err != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	// Name missing AND email malformed: the missing-fields rule runs first
	req := validRequest()
	req.Name = ""
	req.Email = "broken"

	if err := Validate(req); err != ErrMissingFields {
		t.Errorf("got %v, want ErrMissingFields", err)
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	if s.Count() != 0 {
		t.Fatal("new store should be empty")
	}

	s.Append(Enquiry{ID: "a", Name: "First"})
	s.Append(Enquiry{ID: "b", Name: "Second"})

	list := s.List()
	if len(list) != 2 || s.Count() != 2 {
		t.Fatalf("got %d enquiries, want 2", len(list))
	}
	if list[0].ID != "a" || list[1].ID != "b" {
		t.Error("list order should be submission order")
	}

	// The returned slice is a copy
	list[0].Name = "Mutated"
	if s.List()[0].Name != "First" {
		t.Error("mutating the listed slice changed the store")
	}
}

func submitJSON(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	SubmitHandler(rec, req)
	return rec
}

func TestSubmitHandler(t *testing.T) {
	s := NewStore()
	SetStore(s)

	rec := submitJSON(t, validRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			EnquiryID string `json:"enquiry_id"`
			Message   string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if !env.Success {
		t.Error("success flag not set")
	}
	if env.Data.EnquiryID == "" {
		t.Error("no enquiry id in response")
	}
	if env.Data.Message == "" {
		t.Error("no acknowledgement message")
	}

	if s.Count() != 1 {
		t.Fatalf("stored %d enquiries, want 1", s.Count())
	}
	stored := s.List()[0]
	if stored.Status != StatusNew {
		t.Errorf("status = %q, want new", stored.Status)
	}
	if stored.ID != env.Data.EnquiryID {
		t.Error("stored id differs from the id returned")
	}
	if stored.StartDate == nil || *stored.StartDate != "2026-09-10" {
		t.Errorf("start date ref = %v", stored.StartDate)
	}
	if stored.TourPackageID == nil || *stored.TourPackageID != "1" {
		t.Errorf("tour ref = %v", stored.TourPackageID)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestSubmitHandlerOptionalFieldsStayNil(t *testing.T) {
	s := NewStore()
	SetStore(s)

	req := validRequest()
	req.StartDate = ""
	req.EndDate = ""
	req.TourID = ""

	if rec := submitJSON(t, req); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	stored := s.List()[0]
	if stored.StartDate != nil || stored.EndDate != nil || stored.TourPackageID != nil {
		t.Errorf("omitted optional fields must stay nil: %+v", stored)
	}
}

func TestSubmitHandlerRejectsInvalidForm(t *testing.T) {
	s := NewStore()
	SetStore(s)

	req := validRequest()
	req.Email = "broken"
	rec := submitJSON(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if apiErr.Code != "validation_failed" {
		t.Errorf("error code = %q, want validation_failed", apiErr.Code)
	}
	if apiErr.Message != ErrInvalidEmail.Error() {
		t.Errorf("error message = %q, want %q", apiErr.Message, ErrInvalidEmail.Error())
	}

	if s.Count() != 0 {
		t.Error("rejected enquiry must not be stored")
	}
}
