package clinical

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncoflow/mobilecore/domain"
	"github.com/oncoflow/mobilecore/internal/transport"
	"github.com/oncoflow/mobilecore/repository/memory"
	"github.com/oncoflow/mobilecore/usecase/session"
)

func newTestService(t *testing.T, fn func(req domain.Request) (*domain.Response, error)) *Service {
	t.Helper()
	store := memory.New()
	require.NoError(t, store.Set(context.Background(), domain.Credentials{
		AccessToken:  "A1",
		RefreshToken: "R1",
	}))
	wire := transport.Func(func(_ context.Context, req domain.Request) (*domain.Response, error) {
		return fn(req)
	})
	sess := session.New(store, wire, session.Config{}, nil)
	return New(sess, nil)
}

func TestAppointmentsDecodeFromWireForm(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		body := `[
			{"id":"a1","patient_id":"p1","appointment_type":"daycare","scheduled_date":"2026-03-02","scheduled_time":"09:00:00","duration_mins":120,"chair_number":4,"status":"scheduled","checked_in_at":null,"created_at":"2026-02-20T08:00:00","updated_at":"2026-02-20T08:00:00"},
			{"id":"a2","patient_id":"p1","appointment_type":"opd","scheduled_date":"2026-03-09","scheduled_time":"11:30:00","duration_mins":30,"status":"scheduled","created_at":"2026-02-21T08:00:00","updated_at":"2026-02-21T08:00:00"}
		]`
		return &domain.Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil
	})

	appts, err := svc.Appointments(context.Background(), AppointmentQuery{PatientID: "p1", Status: "scheduled"})
	require.NoError(t, err)
	require.Len(t, appts, 2)

	assert.Equal(t, "/appointments", captured.Path)
	assert.Equal(t, "p1", captured.Query["patient_id"])
	assert.Equal(t, "scheduled", captured.Query["status"])
	assert.Equal(t, "Bearer A1", captured.Header["Authorization"])

	assert.Equal(t, "daycare", appts[0].AppointmentType)
	assert.Equal(t, 120, appts[0].DurationMins)
	require.NotNil(t, appts[0].ChairNumber)
	assert.Equal(t, 4, *appts[0].ChairNumber)
	assert.Nil(t, appts[0].CheckedInAt)
	assert.Equal(t, "opd", appts[1].AppointmentType)
}

func TestLogMyVitalsSendsWireFormBody(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		return &domain.Response{
			StatusCode: http.StatusCreated,
			Body:       []byte(`{"id":"v1","patient_id":"p1","recorded_at":"2026-03-01T07:15:00","pulse_bpm":88,"temperature_f":99.1}`),
		}, nil
	})

	pulse := 88
	temp := 99.1
	vital, err := svc.LogMyVitals(context.Background(), domain.VitalInput{
		PulseBpm:     &pulse,
		TemperatureF: &temp,
	})
	require.NoError(t, err)

	assert.Equal(t, "/vitals/me", captured.Path)
	raw, ok := captured.Body.(json.RawMessage)
	require.True(t, ok)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(raw, &sent))
	assert.Equal(t, float64(88), sent["pulse_bpm"])
	assert.Equal(t, 99.1, sent["temperature_f"])
	assert.NotContains(t, sent, "pulseBpm")

	require.NotNil(t, vital.PulseBpm)
	assert.Equal(t, 88, *vital.PulseBpm)
	assert.Equal(t, "p1", vital.PatientID)
}

func TestMarkNotificationRead(t *testing.T) {
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/notifications/n1/read", req.Path)
		return &domain.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"id":"n1","user_id":"u1","type":"appointment_reminder","title":"Tomorrow","body":"Cycle 3 at 9am","is_read":true,"read_at":"2026-03-01T10:00:00","created_at":"2026-02-28T10:00:00"}`),
		}, nil
	})

	n, err := svc.MarkNotificationRead(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	require.NotNil(t, n.ReadAt)
	assert.Equal(t, "appointment_reminder", n.Type)
}

func TestTerminalErrorPropagatesToCaller(t *testing.T) {
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		return &domain.Response{
			StatusCode: http.StatusNotFound,
			Body:       []byte(`{"detail":"Appointment not found"}`),
		}, nil
	})

	_, err := svc.Appointment(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeTerminal))
	var dErr *domain.Error
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, http.StatusNotFound, dErr.Status)
	assert.Equal(t, "Appointment not found", dErr.Message)
}
