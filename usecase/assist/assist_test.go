package assist

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

func TestAnalyzeLabsDecodesVerdict(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		return &domain.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"patient_id":"p1","analysis_results":[{"parameter":"anc","value":1200,"status":"low"}],"fit_for_treatment":false,"critical_flags":["Low anc"],"recommendations":["Consider delaying treatment until values improve"]}`),
		}, nil
	})

	verdict, err := svc.AnalyzeLabs(context.Background(), domain.LabAnalysisInput{
		PatientID: "p1",
		Labs:      map[string]float64{"anc": 1200, "hemoglobin": 13.1},
	})
	require.NoError(t, err)

	assert.Equal(t, "/ai/analyze-labs", captured.Path)
	raw, ok := captured.Body.(json.RawMessage)
	require.True(t, ok)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(raw, &sent))
	assert.Equal(t, "p1", sent["patient_id"])
	labs, ok := sent["labs"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1200), labs["anc"])

	assert.False(t, verdict.FitForTreatment)
	assert.Equal(t, []string{"Low anc"}, verdict.CriticalFlags)
	require.Len(t, verdict.AnalysisResults, 1)
	assert.Equal(t, "anc", verdict.AnalysisResults[0]["parameter"])
}

func TestCheckDrugInteractionsDecodesReport(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		return &domain.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"chemo_drugs":["methotrexate"],"current_medications":["ibuprofen"],"interactions_found":1,"interactions":[{"drugs":["methotrexate","ibuprofen"],"severity":"high"}],"recommendation":"Review with pharmacist"}`),
		}, nil
	})

	report, err := svc.CheckDrugInteractions(context.Background(), domain.DrugInteractionInput{
		ChemoDrugs:         []string{"methotrexate"},
		CurrentMedications: []string{"ibuprofen"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/ai/drug-interactions", captured.Path)
	raw, ok := captured.Body.(json.RawMessage)
	require.True(t, ok)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(raw, &sent))
	assert.Contains(t, sent, "chemo_drugs")
	assert.Contains(t, sent, "current_medications")

	assert.Equal(t, 1, report.InteractionsFound)
	require.Len(t, report.Interactions, 1)
	assert.Equal(t, "high", report.Interactions[0]["severity"])
	assert.Equal(t, "Review with pharmacist", report.Recommendation)
}

func TestAnalyzeSymptomsPassesDocumentThrough(t *testing.T) {
	var captured domain.Request
	svc := newTestService(t, func(req domain.Request) (*domain.Response, error) {
		captured = req
		return &domain.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"severity_score":0.4,"alert_level":"monitor","action_required":false}`),
		}, nil
	})

	out, err := svc.AnalyzeSymptoms(context.Background(), map[string]any{
		"hasFever":    false,
		"nauseaScore": 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "/ai/symptom-analysis", captured.Path)
	raw, ok := captured.Body.(json.RawMessage)
	require.True(t, ok)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(raw, &sent))
	assert.Equal(t, float64(7), sent["nausea_score"])
	assert.NotContains(t, sent, "nauseaScore")

	assert.Equal(t, "monitor", out["alertLevel"])
	assert.Equal(t, false, out["actionRequired"])
}
