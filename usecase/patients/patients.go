// Package patients is the typed client for the patient registry endpoints.
package patients

import (
	"context"
	"net/http"
	"strconv"

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

// ListQuery narrows the patient list.
type ListQuery struct {
	Search     string
	CancerType string
	Skip       int
	Limit      int
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.PatientSummary, error) {
	req := domain.NewRequest(http.MethodGet, "/patients/", nil)
	if q.Search != "" {
		req = req.WithQuery("search", q.Search)
	}
	if q.CancerType != "" {
		req = req.WithQuery("cancer_type", q.CancerType)
	}
	if q.Skip > 0 {
		req = req.WithQuery("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		req = req.WithQuery("limit", strconv.Itoa(q.Limit))
	}

	var out []domain.PatientSummary
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Create(ctx context.Context, input domain.Patient) (domain.Patient, error) {
	req := domain.NewRequest(http.MethodPost, "/patients/", input)
	var out domain.Patient
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// Me returns the patient profile linked to the signed-in user.
func (s *Service) Me(ctx context.Context) (domain.Patient, error) {
	req := domain.NewRequest(http.MethodGet, "/patients/me", nil)
	var out domain.Patient
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Get(ctx context.Context, patientID string) (domain.Patient, error) {
	req := domain.NewRequest(http.MethodGet, "/patients/"+patientID, nil)
	var out domain.Patient
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Update(ctx context.Context, patientID string, input domain.PatientUpdate) (domain.Patient, error) {
	req := domain.NewRequest(http.MethodPut, "/patients/"+patientID, input)
	var out domain.Patient
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Delete(ctx context.Context, patientID string) error {
	req := domain.NewRequest(http.MethodDelete, "/patients/"+patientID, nil)
	_, err := s.session.Do(ctx, req)
	return err
}
