package protocols

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

func TestCompleteCycleSendsNotesAsQueryParameters(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		return &domain.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"id":"c1","treatment_plan_id":"tp1","cycle_number":3,"scheduled_date":"2026-03-02","status":"completed","discharge_notes":"tolerated well","follow_up_instructions":"labs in one week","created_at":"2026-02-01T08:00:00","updated_at":"2026-03-02T16:00:00"}`),
		}, nil
	})

	cycle, err := svc.CompleteCycle(context.Background(), "c1", "tolerated well", "labs in one week")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/cycles/c1/complete", captured.Path)
	assert.Equal(t, "tolerated well", captured.Query["discharge_notes"])
	assert.Equal(t, "labs in one week", captured.Query["follow_up_instructions"])
	assert.Nil(t, captured.Body)

	assert.Equal(t, "completed", cycle.Status)
	require.NotNil(t, cycle.DischargeNotes)
	assert.Equal(t, "tolerated well", *cycle.DischargeNotes)
	require.NotNil(t, cycle.FollowUpInstructions)
	assert.Equal(t, "labs in one week", *cycle.FollowUpInstructions)
}

func TestCycleDrugsDecodeFromWireForm(t *testing.T) {
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		assert.Equal(t, "/cycles/c1/drugs", req.Path)
		body := `[
			{"id":"d1","cycle_id":"c1","drug_name":"Cisplatin","planned_dose":75,"actual_dose":70,"unit":"mg/m2","route":"IV","planned_duration_mins":120,"status":"completed","iv_site":"left forearm","created_at":"2026-03-02T09:00:00"},
			{"id":"d2","cycle_id":"c1","drug_name":"Etoposide","planned_dose":100,"unit":"mg/m2","route":"IV","status":"pending","created_at":"2026-03-02T09:00:00"}
		]`
		return &domain.Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil
	})

	drugs, err := svc.CycleDrugs(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, drugs, 2)

	assert.Equal(t, "Cisplatin", drugs[0].DrugName)
	assert.Equal(t, 75.0, drugs[0].PlannedDose)
	require.NotNil(t, drugs[0].ActualDose)
	assert.Equal(t, 70.0, *drugs[0].ActualDose)
	require.NotNil(t, drugs[0].IvSite)
	assert.Equal(t, "left forearm", *drugs[0].IvSite)
	assert.Equal(t, "pending", drugs[1].Status)
	assert.Nil(t, drugs[1].ActualDose)
}

func TestUpdateDrugAdministrationSendsWireFormBody(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		return &domain.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"id":"d1","cycle_id":"c1","drug_name":"Cisplatin","planned_dose":75,"actual_dose":70,"unit":"mg/m2","route":"IV","status":"completed","flow_rate":"125 mL/hr","created_at":"2026-03-02T09:00:00"}`),
		}, nil
	})

	dose := 70.0
	status := "completed"
	flowRate := "125 mL/hr"
	admin, err := svc.UpdateDrugAdministration(context.Background(), "d1", domain.DrugAdministrationUpdate{
		ActualDose: &dose,
		Status:     &status,
		FlowRate:   &flowRate,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/drug-admin/d1", captured.Path)
	raw, ok := captured.Body.(json.RawMessage)
	require.True(t, ok)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(raw, &sent))
	assert.Equal(t, 70.0, sent["actual_dose"])
	assert.Equal(t, "125 mL/hr", sent["flow_rate"])
	assert.NotContains(t, sent, "flowRate")

	assert.Equal(t, "completed", admin.Status)
	require.NotNil(t, admin.FlowRate)
	assert.Equal(t, "125 mL/hr", *admin.FlowRate)
}
