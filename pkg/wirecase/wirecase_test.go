package wirecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"created_at", "createdAt"},
		{"blood_pressure_systolic", "bloodPressureSystolic"},
		{"id", "id"},
		{"a_b_c", "aBC"},
		{"token", "token"},
		{"access_token", "accessToken"},
		{"_internal_id", "_internalId"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeToCamel(tt.in))
			// Stable under repeated application to its own output.
			assert.Equal(t, tt.want, SnakeToCamel(tt.want))
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"createdAt", "created_at"},
		{"bloodPressureSystolic", "blood_pressure_systolic"},
		{"id", "id"},
		{"refreshToken", "refresh_token"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelToSnake(tt.in))
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, key := range []string{"created_at", "height_cm", "refresh_token", "notes", "cycle_id"} {
		assert.Equal(t, key, CamelToSnake(SnakeToCamel(key)))
	}
}

func TestToClientFormPreservesStructure(t *testing.T) {
	raw := []byte(`{
		"patient_id": "p1",
		"pain_score": 4,
		"is_read": false,
		"ai_alerts": [
			{"alert_type": "fever", "severity_grade": 2},
			{"alert_type": "dehydration", "severity_grade": null}
		],
		"notes": null,
		"metadata": {"source_app": "mobile", "nested": {"deep_key": [1, 2, 3]}}
	}`)

	var decoded any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	got, err := ToClientForm(decoded)
	require.NoError(t, err)

	m, ok := got.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "p1", m["patientId"])
	assert.Equal(t, float64(4), m["painScore"])
	assert.Equal(t, false, m["isRead"])

	alerts, ok := m["aiAlerts"].([]any)
	require.True(t, ok)
	require.Len(t, alerts, 2)
	first := alerts[0].(map[string]any)
	assert.Equal(t, "fever", first["alertType"])
	assert.Equal(t, float64(2), first["severityGrade"])

	// Array order preserved.
	second := alerts[1].(map[string]any)
	assert.Equal(t, "dehydration", second["alertType"])

	// Null value survives as a present key with a nil value.
	v, present := second["severityGrade"]
	assert.True(t, present)
	assert.Nil(t, v)

	nv, present := m["notes"]
	assert.True(t, present)
	assert.Nil(t, nv)
	_, present = m["cancellationReason"]
	assert.False(t, present)

	meta := m["metadata"].(map[string]any)
	assert.Equal(t, "mobile", meta["sourceApp"])
	nested := meta["nested"].(map[string]any)
	deep, ok := nested["deepKey"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, deep)
}

func TestToClientFormDoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"outer_key": map[string]any{"inner_key": "v"},
	}
	_, err := ToClientForm(in)
	require.NoError(t, err)

	_, stillThere := in["outer_key"]
	assert.True(t, stillThere)
	inner := in["outer_key"].(map[string]any)
	_, stillThere = inner["inner_key"]
	assert.True(t, stillThere)
}

func TestToWireForm(t *testing.T) {
	in := map[string]any{
		"refreshToken": "r1",
		"patientData":  map[string]any{"heightCm": 172.5},
		"labResults":   []any{map[string]any{"testName": "CBC"}},
	}
	got, err := ToWireForm(in)
	require.NoError(t, err)

	m := got.(map[string]any)
	assert.Equal(t, "r1", m["refresh_token"])
	pd := m["patient_data"].(map[string]any)
	assert.Equal(t, 172.5, pd["height_cm"])
	labs := m["lab_results"].([]any)
	assert.Equal(t, "CBC", labs[0].(map[string]any)["test_name"])
}

func TestDepthBound(t *testing.T) {
	// Build input nested one level past the cap.
	v := any("leaf")
	for i := 0; i < maxDepth+1; i++ {
		v = map[string]any{"k": v}
	}
	_, err := ToClientForm(v)
	assert.ErrorIs(t, err, ErrTooDeep)

	// A comfortably nested value still converts.
	v = any("leaf")
	for i := 0; i < 10; i++ {
		v = []any{v}
	}
	_, err = ToClientForm(v)
	assert.NoError(t, err)
}

func TestScalarsPassThrough(t *testing.T) {
	for _, v := range []any{nil, "s", true, 3.14} {
		got, err := ToClientForm(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
