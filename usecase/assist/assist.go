// Package assist is the typed client for the server-side AI endpoints. The
// suggestions, scores and warnings it returns are computed and owned by the
// backend; the app only displays them.
package assist

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/oncoflow/mobilecore/domain"
	"github.com/oncoflow/mobilecore/usecase/session"
)

type Service struct {
	session *session.Session
	logger  *zap.Logger
}

func New(sess *session.Session, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		session: sess,
		logger:  logger,
	}
}

// GenerateProtocol asks the backend for a protocol suggestion for a patient.
func (s *Service) GenerateProtocol(ctx context.Context, input domain.ProtocolSuggestionInput) (domain.ProtocolSuggestion, error) {
	req := domain.NewRequest(http.MethodPost, "/ai/generate-protocol", input)
	var out domain.ProtocolSuggestion
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// CalculateDoses asks the backend to compute the dose sheet for a cycle.
func (s *Service) CalculateDoses(ctx context.Context, input domain.DoseCalculationInput) (domain.DoseCalculation, error) {
	req := domain.NewRequest(http.MethodPost, "/ai/dose-calculator", input)
	var out domain.DoseCalculation
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// AssessRisk asks the backend for a treatment risk assessment. The response
// shape varies by model version, so it stays a generic document.
func (s *Service) AssessRisk(ctx context.Context, input domain.RiskAssessmentInput) (map[string]any, error) {
	req := domain.NewRequest(http.MethodPost, "/ai/risk-assessment", input)
	var out map[string]any
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// AnalyzeLabs asks the backend whether the lab values permit treatment.
func (s *Service) AnalyzeLabs(ctx context.Context, input domain.LabAnalysisInput) (domain.LabAnalysis, error) {
	req := domain.NewRequest(http.MethodPost, "/ai/analyze-labs", input)
	var out domain.LabAnalysis
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// CheckDrugInteractions screens the chemo regimen against the patient's
// current medications.
func (s *Service) CheckDrugInteractions(ctx context.Context, input domain.DrugInteractionInput) (domain.DrugInteractionReport, error) {
	req := domain.NewRequest(http.MethodPost, "/ai/drug-interactions", input)
	var out domain.DrugInteractionReport
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// AnalyzeSymptoms submits a symptom document for server-side severity scoring.
// The input and the verdict are both free-form documents.
func (s *Service) AnalyzeSymptoms(ctx context.Context, symptoms map[string]any) (map[string]any, error) {
	req := domain.NewRequest(http.MethodPost, "/ai/symptom-analysis", symptoms)
	var out map[string]any
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}
