package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

type stubHospitalService struct {
	views      []ports.HospitalView
	registered *ports.HospitalView
	err        error
	calls      int
	lastInput  ports.RegisterHospitalInput
}

func (s *stubHospitalService) List(context.Context) ([]ports.HospitalView, error) {
	return s.views, s.err
}

func (s *stubHospitalService) Register(_ context.Context, input ports.RegisterHospitalInput) (*ports.HospitalView, error) {
	s.calls++
	s.lastInput = input
	return s.registered, s.err
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHospitalHandler_List(t *testing.T) {
	joined := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	stub := &stubHospitalService{views: []ports.HospitalView{
		{ID: "h1", Name: "General Hospital", Location: "New York", IsActive: true, DataPoints: 15000, JoinedAt: joined},
	}}
	handler := NewHospitalHandler(stub)

	c, rec := newGetContext(t, "/api/hospitals")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 hospital, got %d", len(resp))
	}
	got := resp[0]
	if got["id"] != "h1" || got["name"] != "General Hospital" || got["isActive"] != true {
		t.Errorf("unexpected hospital payload: %v", got)
	}
	if got["joinedAt"] != "2026-03-01T09:00:00Z" {
		t.Errorf("expected RFC3339 joinedAt, got %v", got["joinedAt"])
	}
}

func TestHospitalHandler_List_EmptyIsJSONArray(t *testing.T) {
	handler := NewHospitalHandler(&stubHospitalService{})

	c, rec := newGetContext(t, "/api/hospitals")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHospitalHandler_Register(t *testing.T) {
	joined := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	stub := &stubHospitalService{registered: &ports.HospitalView{
		ID: "h1", Name: "Test", Location: "Boston", IsActive: true, DataPoints: 500, JoinedAt: joined,
	}}
	handler := NewHospitalHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/hospitals",
		`{"name":"Test","location":"Boston","dataPoints":500}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.lastInput.Name != "Test" || stub.lastInput.DataPoints != 500 {
		t.Errorf("unexpected service input: %+v", stub.lastInput)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "h1" || resp["isActive"] != true || resp["joinedAt"] != "2026-03-01T09:00:00Z" {
		t.Errorf("unexpected response payload: %v", resp)
	}
}

func TestHospitalHandler_Register_MissingName(t *testing.T) {
	stub := &stubHospitalService{}
	handler := NewHospitalHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/hospitals", `{"location":"Boston"}`)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if stub.calls != 0 {
		t.Error("service must not be called on invalid input")
	}
}

func TestHospitalHandler_Register_MalformedBody(t *testing.T) {
	handler := NewHospitalHandler(&stubHospitalService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/hospitals", `{"name":`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError for malformed body, got %v", err)
	}
}

func TestHospitalHandler_Register_ServiceErrorReturned(t *testing.T) {
	storeErr := errors.New("db unavailable")
	handler := NewHospitalHandler(&stubHospitalService{err: storeErr})

	c, _ := newJSONContext(t, http.MethodPost, "/api/hospitals", `{"name":"Test"}`)
	if err := handler.Register(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected service error to bubble, got %v", err)
	}
}
