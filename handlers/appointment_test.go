package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
	"medibook/services/appointment"
)

type stubAppointmentService struct {
	availability *models.DayAvailability
	availErr     error
	booked       *models.Appointment
	bookErr      error
}

func (s *stubAppointmentService) GetAvailability(ctx context.Context, doctorID, date string) (*models.DayAvailability, error) {
	return s.availability, s.availErr
}

func (s *stubAppointmentService) Book(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error) {
	return s.booked, s.bookErr
}

func (s *stubAppointmentService) Cancel(ctx context.Context, id string) error   { return nil }
func (s *stubAppointmentService) Confirm(ctx context.Context, id string) error  { return nil }
func (s *stubAppointmentService) Complete(ctx context.Context, id string) error { return nil }
func (s *stubAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *stubAppointmentService) ListForDoctor(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentService) ListForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return nil, nil
}

func newTestRouter(svc appointment.AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(svc)
	r.GET("/api/appointments/availability", h.GetAvailabilityHandler)
	r.POST("/api/appointments", h.BookAppointmentHandler)
	return r
}

func TestGetAvailabilityHandler_OK(t *testing.T) {
	svc := &stubAppointmentService{
		availability: &models.DayAvailability{
			DoctorID: "doc-1",
			Date:     "2026-09-03",
			Slots: []models.SlotView{
				{Time: "09:00", Display: "9:00 AM"},
			},
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/appointments/availability?doctorId=doc-1&date=2026-09-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got models.DayAvailability
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got.Slots) != 1 || got.Slots[0].Time != "09:00" {
		t.Fatalf("unexpected slots in response: %+v", got.Slots)
	}
}

func TestGetAvailabilityHandler_BadQuery(t *testing.T) {
	r := newTestRouter(&stubAppointmentService{})

	for _, url := range []string{
		"/api/appointments/availability?date=2026-09-03",
		"/api/appointments/availability?doctorId=doc-1",
		"/api/appointments/availability?doctorId=doc-1&date=03-09-2026",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, url, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", url, w.Code)
		}
	}
}

func TestGetAvailabilityHandler_DoctorNotFound(t *testing.T) {
	r := newTestRouter(&stubAppointmentService{availErr: mongo.ErrNoDocuments})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/appointments/availability?doctorId=doc-404&date=2026-09-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func bookReq(t *testing.T) *http.Request {
	t.Helper()
	body, _ := json.Marshal(models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBookAppointmentHandler_Created(t *testing.T) {
	svc := &stubAppointmentService{
		booked: &models.Appointment{
			ID: "a1", DoctorID: "doc-1", PatientID: "pat-1",
			Date: "2026-09-03", Time: "10:00", Status: models.AppointmentPending,
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, bookReq(t))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBookAppointmentHandler_Conflict(t *testing.T) {
	svc := &stubAppointmentService{
		bookErr: appointment.NewBookingError(appointment.CodeSlotTaken, "slot 10:00 is already booked"),
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, bookReq(t))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["code"] != appointment.CodeSlotTaken {
		t.Fatalf("expected code %s, got %s", appointment.CodeSlotTaken, body["code"])
	}
}

func TestBookAppointmentHandler_PastSlotUnprocessable(t *testing.T) {
	svc := &stubAppointmentService{
		bookErr: appointment.NewBookingError(appointment.CodeSlotInPast, "slot 10:00 has already started"),
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, bookReq(t))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestBookAppointmentHandler_MissingFields(t *testing.T) {
	r := newTestRouter(&stubAppointmentService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader([]byte(`{"doctorId":"doc-1"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
