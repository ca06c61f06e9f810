// Package protocols is the typed client for protocol templates, treatment
// plans and treatment cycles. All clinical math (doses, BSA) stays on the
// backend; this layer only moves records.
package protocols

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

// --- protocol templates ---

func (s *Service) List(ctx context.Context, cancerType string) ([]domain.ProtocolTemplate, error) {
	req := domain.NewRequest(http.MethodGet, "/protocols", nil)
	if cancerType != "" {
		req = req.WithQuery("cancer_type", cancerType)
	}
	var out []domain.ProtocolTemplate
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Get(ctx context.Context, protocolID string) (domain.ProtocolTemplate, error) {
	req := domain.NewRequest(http.MethodGet, "/protocols/"+protocolID, nil)
	var out domain.ProtocolTemplate
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Create(ctx context.Context, input domain.ProtocolTemplate) (domain.ProtocolTemplate, error) {
	req := domain.NewRequest(http.MethodPost, "/protocols", input)
	var out domain.ProtocolTemplate
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// --- treatment plans ---

func (s *Service) CreatePlan(ctx context.Context, input domain.TreatmentPlanInput) (domain.TreatmentPlan, error) {
	req := domain.NewRequest(http.MethodPost, "/treatment-plans", input)
	var out domain.TreatmentPlan
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Plan(ctx context.Context, planID string) (domain.TreatmentPlan, error) {
	req := domain.NewRequest(http.MethodGet, "/treatment-plans/"+planID, nil)
	var out domain.TreatmentPlan
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) UpdatePlan(ctx context.Context, planID string, input domain.TreatmentPlanUpdate) (domain.TreatmentPlan, error) {
	req := domain.NewRequest(http.MethodPut, "/treatment-plans/"+planID, input)
	var out domain.TreatmentPlan
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// ApproveOPD records the outpatient-department approval on a plan.
func (s *Service) ApproveOPD(ctx context.Context, planID string, notes string) (domain.TreatmentPlan, error) {
	var body any
	if notes != "" {
		body = map[string]any{"notes": notes}
	}
	req := domain.NewRequest(http.MethodPost, "/treatment-plans/"+planID+"/approve-opd", body)
	var out domain.TreatmentPlan
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// ApproveDaycare records the daycare approval on a plan.
func (s *Service) ApproveDaycare(ctx context.Context, planID string, notes string) (domain.TreatmentPlan, error) {
	var body any
	if notes != "" {
		body = map[string]any{"notes": notes}
	}
	req := domain.NewRequest(http.MethodPost, "/treatment-plans/"+planID+"/approve-daycare", body)
	var out domain.TreatmentPlan
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// --- treatment cycles ---

func (s *Service) Cycles(ctx context.Context, planID string) ([]domain.TreatmentCycle, error) {
	req := domain.NewRequest(http.MethodGet, "/treatment-plans/"+planID+"/cycles", nil)
	var out []domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CreateCycle(ctx context.Context, planID string, input domain.TreatmentCycleInput) (domain.TreatmentCycle, error) {
	req := domain.NewRequest(http.MethodPost, "/treatment-plans/"+planID+"/cycles", input)
	var out domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Cycle(ctx context.Context, cycleID string) (domain.TreatmentCycle, error) {
	req := domain.NewRequest(http.MethodGet, "/cycles/"+cycleID, nil)
	var out domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) UpdateCycle(ctx context.Context, cycleID string, input domain.TreatmentCycleUpdate) (domain.TreatmentCycle, error) {
	req := domain.NewRequest(http.MethodPut, "/cycles/"+cycleID, input)
	var out domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) ApproveCycle(ctx context.Context, cycleID string, notes string) (domain.TreatmentCycle, error) {
	var body any
	if notes != "" {
		body = map[string]any{"approvalNotes": notes}
	}
	req := domain.NewRequest(http.MethodPost, "/cycles/"+cycleID+"/approve", body)
	var out domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) StartCycle(ctx context.Context, cycleID string) (domain.TreatmentCycle, error) {
	req := domain.NewRequest(http.MethodPost, "/cycles/"+cycleID+"/start", nil)
	var out domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// CompleteCycle closes out an in-progress cycle. Discharge notes and follow-up
// instructions travel as query parameters; the backend takes no body here.
func (s *Service) CompleteCycle(ctx context.Context, cycleID string, dischargeNotes, followUpInstructions string) (domain.TreatmentCycle, error) {
	req := domain.NewRequest(http.MethodPost, "/cycles/"+cycleID+"/complete", nil)
	if dischargeNotes != "" {
		req = req.WithQuery("discharge_notes", dischargeNotes)
	}
	if followUpInstructions != "" {
		req = req.WithQuery("follow_up_instructions", followUpInstructions)
	}
	var out domain.TreatmentCycle
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// --- drug administrations ---

func (s *Service) CycleDrugs(ctx context.Context, cycleID string) ([]domain.DrugAdministration, error) {
	req := domain.NewRequest(http.MethodGet, "/cycles/"+cycleID+"/drugs", nil)
	var out []domain.DrugAdministration
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) UpdateDrugAdministration(ctx context.Context, adminID string, input domain.DrugAdministrationUpdate) (domain.DrugAdministration, error) {
	req := domain.NewRequest(http.MethodPut, "/drug-admin/"+adminID, input)
	var out domain.DrugAdministration
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}
