package domain

// ProtocolSuggestion is the server-generated protocol recommendation. The
// client displays it as-is; no clinical logic runs on-device.
type ProtocolSuggestion struct {
	Protocol        map[string]any `json:"protocol,omitempty"`
	Recommendations *string        `json:"recommendations,omitempty"`
	RiskAssessment  map[string]any `json:"riskAssessment,omitempty"`
	ConfidenceScore *float64       `json:"confidenceScore,omitempty"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// ProtocolSuggestionInput describes the patient context for a suggestion.
type ProtocolSuggestionInput struct {
	PatientID    string         `json:"patientId"`
	CancerType   string         `json:"cancerType"`
	CancerStage  *string        `json:"cancerStage,omitempty"`
	PatientData  map[string]any `json:"patientData,omitempty"`
	LabResults   map[string]any `json:"labResults,omitempty"`
	Instructions *string        `json:"instructions,omitempty"`
}

// DoseCalculation is the server-computed dose sheet for one cycle.
type DoseCalculation struct {
	Bsa        *float64         `json:"bsa,omitempty"`
	Doses      []map[string]any `json:"doses,omitempty"`
	Warnings   []string         `json:"warnings,omitempty"`
	References []string         `json:"references,omitempty"`
}

// DoseCalculationInput carries the anthropometrics the backend needs.
type DoseCalculationInput struct {
	PatientID string         `json:"patientId"`
	HeightCm  float64        `json:"heightCm"`
	WeightKg  float64        `json:"weightKg"`
	Protocol  map[string]any `json:"protocol"`
	LabValues map[string]any `json:"labValues,omitempty"`
}

// RiskAssessmentInput asks the backend to score treatment risk.
type RiskAssessmentInput struct {
	PatientID   string         `json:"patientId"`
	PlanID      *string        `json:"planId,omitempty"`
	PatientData map[string]any `json:"patientData,omitempty"`
}

// LabAnalysisInput submits lab values, keyed by parameter name, for a
// treatment-fitness check.
type LabAnalysisInput struct {
	PatientID string             `json:"patientId"`
	Labs      map[string]float64 `json:"labs"`
}

// LabAnalysis is the server's verdict on a set of lab values.
type LabAnalysis struct {
	PatientID       string           `json:"patientId"`
	AnalysisResults []map[string]any `json:"analysisResults,omitempty"`
	FitForTreatment bool             `json:"fitForTreatment"`
	CriticalFlags   []string         `json:"criticalFlags,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// DrugInteractionInput lists the chemo regimen and the patient's current
// medications to screen against each other.
type DrugInteractionInput struct {
	ChemoDrugs         []string `json:"chemoDrugs"`
	CurrentMedications []string `json:"currentMedications"`
}

// DrugInteractionReport is the server's interaction screen.
type DrugInteractionReport struct {
	ChemoDrugs         []string         `json:"chemoDrugs,omitempty"`
	CurrentMedications []string         `json:"currentMedications,omitempty"`
	InteractionsFound  int              `json:"interactionsFound"`
	Interactions       []map[string]any `json:"interactions,omitempty"`
	Recommendation     string           `json:"recommendation,omitempty"`
}
