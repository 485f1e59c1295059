package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careport/apiclient"
	"careport/handlers"
	"careport/models"
	"careport/routes"
	"careport/services/booking"
	"careport/session"
	"careport/utils"
)

type fakeBookingAPI struct {
	doctors []models.Doctor
	slots   []models.TimeSlot
	booked  *models.Appointment
}

func (f *fakeBookingAPI) ListDoctors(context.Context) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeBookingAPI) AvailableSlots(context.Context, int64, string) ([]models.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeBookingAPI) BookAppointment(context.Context, string, models.BookingDraft) (*models.Appointment, error) {
	return f.booked, nil
}

func newBookingRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &fakeBookingAPI{
		doctors: []models.Doctor{{ID: 1, User: models.DoctorUser{FirstName: "Asha", LastName: "Perera"}}},
		slots:   []models.TimeSlot{{StartTime: "09:00", EndTime: "09:30"}},
		booked:  &models.Appointment{ID: 5, Status: models.StatusScheduled},
	}
	flowSvc := &booking.DefaultFlowService{
		API:   api,
		Store: booking.NewMemoryFlowStore(),
		Now:   func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}

	sessions := session.NewMemoryStore()
	if err := sessions.Save(context.Background(), "sid-1", session.Session{Token: "backend-token", Role: "PATIENT"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	token, err := utils.GenerateSessionToken("sid-1", time.Hour)
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	backend := apiclient.New("http://127.0.0.1:1", time.Second, nil)
	hb := handlers.NewHandlerBundle(backend, sessions, flowSvc, nil, nil, time.Hour)

	r := gin.New()
	routes.RegisterBookingRoutes(r, hb, sessions)
	return r, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeFlow(t *testing.T, w *httptest.ResponseRecorder) models.BookingFlow {
	t.Helper()
	var flow models.BookingFlow
	if err := json.Unmarshal(w.Body.Bytes(), &flow); err != nil {
		t.Fatalf("decode flow: %v (body: %s)", err, w.Body.String())
	}
	return flow
}

func TestBookingRoutesRequireSession(t *testing.T) {
	r, _ := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/flow", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/booking/flow", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", w.Code)
	}
}

func TestBookingFlowEndToEnd(t *testing.T) {
	r, token := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/flow", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start flow: %d %s", w.Code, w.Body.String())
	}
	flow := decodeFlow(t, w)
	base := "/api/booking/flow/" + flow.FlowID

	w = doJSON(t, r, http.MethodPut, base+"/doctor", token, gin.H{"doctorId": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("choose doctor: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, base+"/date", token, gin.H{"date": "2025-06-10"})
	if w.Code != http.StatusOK {
		t.Fatalf("choose date: %d %s", w.Code, w.Body.String())
	}
	flow = decodeFlow(t, w)
	if flow.State != models.FlowSlotsLoaded || len(flow.Slots) != 1 {
		t.Fatalf("expected loaded slots, got state=%s slots=%d", flow.State, len(flow.Slots))
	}

	w = doJSON(t, r, http.MethodPut, base+"/slot", token, models.TimeSlot{StartTime: "09:00", EndTime: "09:30"})
	if w.Code != http.StatusOK {
		t.Fatalf("choose slot: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, base+"/submit", token, gin.H{"reasonForVisit": "checkup"})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	flow = decodeFlow(t, w)
	if flow.State != models.FlowSuccess || flow.Booked == nil || flow.Booked.ID != 5 {
		t.Fatalf("expected successful booking, got state=%s booked=%+v", flow.State, flow.Booked)
	}
}

func TestBookingFlowRejectsOutOfHorizonDate(t *testing.T) {
	r, token := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/flow", token, nil)
	flow := decodeFlow(t, w)
	base := "/api/booking/flow/" + flow.FlowID

	w = doJSON(t, r, http.MethodPut, base+"/doctor", token, gin.H{"doctorId": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("choose doctor: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, base+"/date", token, gin.H{"date": "2025-09-01"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-horizon date, got %d %s", w.Code, w.Body.String())
	}
}

func TestBookingFlowSubmitValidation(t *testing.T) {
	r, token := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/flow", token, nil)
	flow := decodeFlow(t, w)
	base := "/api/booking/flow/" + flow.FlowID

	// Nothing selected yet: submission is a 400, not a backend call.
	w = doJSON(t, r, http.MethodPost, base+"/submit", token, gin.H{"reasonForVisit": "checkup"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete draft, got %d %s", w.Code, w.Body.String())
	}
}

func TestGetUnknownFlowIs404(t *testing.T) {
	r, token := newBookingRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking/flow/does-not-exist", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
	}
}
