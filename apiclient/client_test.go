package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careport/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 5*time.Second, nil), srv
}

func TestLoginSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody models.LoginForm
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(models.LoginResult{
			Token: "backend-token", Role: "PATIENT", Username: "jdoe",
		})
	})

	result, err := client.Login(context.Background(), models.LoginForm{Username: "jdoe", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotPath != "/api/auth/login" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "" {
		t.Fatalf("login must not carry a credential, got %q", gotAuth)
	}
	if gotBody.Username != "jdoe" || gotBody.Password != "secret" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
	if result.Token != "backend-token" || result.Role != "PATIENT" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestLoginRejectedMapsToAuthError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid username or password"}`))
	})

	_, err := client.Login(context.Background(), models.LoginForm{Username: "jdoe", Password: "wrong"})
	if !IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Invalid username or password" {
		t.Fatalf("expected backend message preserved, got %q", apiErr.Message)
	}
}

func TestAvailableSlotsRequest(t *testing.T) {
	var gotPath, gotDate string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDate = r.URL.Query().Get("date")
		_ = json.NewEncoder(w).Encode([]models.TimeSlot{
			{StartTime: "09:00", EndTime: "09:30", DurationMinutes: 30, IsAvailable: true},
		})
	})

	slots, err := client.AvailableSlots(context.Background(), 4, "2025-06-10")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if gotPath != "/api/appointments/doctor/4/available-slots" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotDate != "2025-06-10" {
		t.Fatalf("unexpected date query %q", gotDate)
	}
	if len(slots) != 1 || slots[0].StartTime != "09:00" {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}

func TestAuthedCallsRequireCredential(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	checks := map[string]error{}
	_, err := client.BookAppointment(ctx, "", models.BookingDraft{})
	checks["BookAppointment"] = err
	_, err = client.PatientAppointments(ctx, "")
	checks["PatientAppointments"] = err
	_, err = client.UpcomingAppointments(ctx, "")
	checks["UpcomingAppointments"] = err
	_, err = client.DoctorAppointments(ctx, "", 1, "2025-06-10")
	checks["DoctorAppointments"] = err
	checks["CancelAppointment"] = client.CancelAppointment(ctx, "", 1)
	_, err = client.UpdateAppointmentStatus(ctx, "", 1, models.StatusConfirmed)
	checks["UpdateAppointmentStatus"] = err

	for name, err := range checks {
		if !errors.Is(err, ErrNoCredential) {
			t.Errorf("%s: expected ErrNoCredential, got %v", name, err)
		}
	}
	// No call may reach the network without a credential.
	if requests != 0 {
		t.Fatalf("expected zero requests, got %d", requests)
	}
}

func TestBookAppointmentAttachesBearerToken(t *testing.T) {
	var gotAuth string
	var gotDraft models.BookingDraft
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotDraft)
		_ = json.NewEncoder(w).Encode(models.Appointment{ID: 12, Status: models.StatusScheduled})
	})

	draft := models.BookingDraft{
		DoctorID:        4,
		AppointmentDate: "2025-06-10",
		AppointmentTime: "09:00",
		ReasonForVisit:  "checkup",
	}
	appt, err := client.BookAppointment(context.Background(), "tkn", draft)
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if gotAuth != "Bearer tkn" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotDraft != draft {
		t.Fatalf("unexpected draft payload: %+v", gotDraft)
	}
	if appt.ID != 12 {
		t.Fatalf("unexpected appointment: %+v", appt)
	}
}

func TestBookingConflictMapsToConflictError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Slot is no longer available"}`))
	})

	_, err := client.BookAppointment(context.Background(), "tkn", models.BookingDraft{DoctorID: 1})
	if !IsConflictError(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestErrorCodeMapping(t *testing.T) {
	cases := []struct {
		status int
		body   string
		code   string
		msg    string
	}{
		{http.StatusUnauthorized, `{"error":"bad token"}`, "authError", "bad token"},
		{http.StatusForbidden, `{"error":"not allowed"}`, "authError", "not allowed"},
		{http.StatusConflict, `{"error":"taken"}`, "conflictError", "taken"},
		{http.StatusNotFound, `{"message":"no such doctor"}`, "notFound", "no such doctor"},
		{http.StatusBadRequest, `{"error":"bad date"}`, "badRequest", "bad date"},
		{http.StatusInternalServerError, `boom`, "upstreamError", "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := newAPIError(tc.status, []byte(tc.body))
			if err.Code != tc.code {
				t.Fatalf("status %d: code %q, want %q", tc.status, err.Code, tc.code)
			}
			if err.Message != tc.msg {
				t.Fatalf("status %d: message %q, want %q", tc.status, err.Message, tc.msg)
			}
		})
	}
}

func TestUpdateAppointmentStatusQuery(t *testing.T) {
	var gotPath, gotStatus, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStatus = r.URL.Query().Get("status")
		gotMethod = r.Method
		_ = json.NewEncoder(w).Encode(models.Appointment{ID: 9, Status: models.StatusConfirmed})
	})

	appt, err := client.UpdateAppointmentStatus(context.Background(), "tkn", 9, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/appointments/9/status" || gotStatus != "CONFIRMED" {
		t.Fatalf("unexpected request: %s %s?status=%s", gotMethod, gotPath, gotStatus)
	}
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("unexpected appointment: %+v", appt)
	}
}

func TestCancelAppointmentRequest(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})

	if err := client.CancelAppointment(context.Background(), "tkn", 5); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/appointments/5" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}
