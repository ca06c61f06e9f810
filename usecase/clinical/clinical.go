// Package clinical is the typed client for day-to-day care endpoints:
// vitals, appointments, notifications and patient-reported symptoms.
package clinical

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

// --- vitals ---

// CreateVital records vitals for an explicit patient (staff flow).
func (s *Service) CreateVital(ctx context.Context, input domain.VitalInput) (domain.Vital, error) {
	req := domain.NewRequest(http.MethodPost, "/vitals", input)
	var out domain.Vital
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// LogMyVitals records vitals for the signed-in patient; the backend resolves
// the patient from the credential.
func (s *Service) LogMyVitals(ctx context.Context, input domain.VitalInput) (domain.Vital, error) {
	req := domain.NewRequest(http.MethodPost, "/vitals/me", input)
	var out domain.Vital
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) MyVitals(ctx context.Context, limit int) ([]domain.Vital, error) {
	req := domain.NewRequest(http.MethodGet, "/vitals/me", nil)
	if limit > 0 {
		req = req.WithQuery("limit", strconv.Itoa(limit))
	}
	var out []domain.Vital
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) PatientVitals(ctx context.Context, patientID string) ([]domain.Vital, error) {
	req := domain.NewRequest(http.MethodGet, "/vitals/"+patientID, nil)
	var out []domain.Vital
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CycleVitals(ctx context.Context, cycleID string) ([]domain.Vital, error) {
	req := domain.NewRequest(http.MethodGet, "/vitals/cycle/"+cycleID, nil)
	var out []domain.Vital
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

// --- appointments ---

// AppointmentQuery narrows the appointment list.
type AppointmentQuery struct {
	PatientID string
	Date      string
	Status    string
}

func (s *Service) Appointments(ctx context.Context, q AppointmentQuery) ([]domain.Appointment, error) {
	req := domain.NewRequest(http.MethodGet, "/appointments", nil)
	if q.PatientID != "" {
		req = req.WithQuery("patient_id", q.PatientID)
	}
	if q.Date != "" {
		req = req.WithQuery("date", q.Date)
	}
	if q.Status != "" {
		req = req.WithQuery("status", q.Status)
	}
	var out []domain.Appointment
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CreateAppointment(ctx context.Context, input domain.AppointmentInput) (domain.Appointment, error) {
	req := domain.NewRequest(http.MethodPost, "/appointments", input)
	var out domain.Appointment
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) Appointment(ctx context.Context, appointmentID string) (domain.Appointment, error) {
	req := domain.NewRequest(http.MethodGet, "/appointments/"+appointmentID, nil)
	var out domain.Appointment
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) UpdateAppointment(ctx context.Context, appointmentID string, input domain.AppointmentUpdate) (domain.Appointment, error) {
	req := domain.NewRequest(http.MethodPut, "/appointments/"+appointmentID, input)
	var out domain.Appointment
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CheckIn(ctx context.Context, appointmentID string) (domain.Appointment, error) {
	req := domain.NewRequest(http.MethodPost, "/appointments/"+appointmentID+"/checkin", nil)
	var out domain.Appointment
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CheckOut(ctx context.Context, appointmentID string) (domain.Appointment, error) {
	req := domain.NewRequest(http.MethodPost, "/appointments/"+appointmentID+"/checkout", nil)
	var out domain.Appointment
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CancelAppointment(ctx context.Context, appointmentID string) error {
	req := domain.NewRequest(http.MethodDelete, "/appointments/"+appointmentID, nil)
	_, err := s.session.Do(ctx, req)
	return err
}

// --- notifications ---

func (s *Service) Notifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	req := domain.NewRequest(http.MethodGet, "/notifications", nil)
	if unreadOnly {
		req = req.WithQuery("unread_only", "true")
	}
	var out []domain.Notification
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) MarkNotificationRead(ctx context.Context, notificationID string) (domain.Notification, error) {
	req := domain.NewRequest(http.MethodPut, "/notifications/"+notificationID+"/read", nil)
	var out domain.Notification
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	req := domain.NewRequest(http.MethodPut, "/notifications/read-all", nil)
	_, err := s.session.Do(ctx, req)
	return err
}

// --- symptoms ---

// LogMySymptoms records a symptom entry for the signed-in patient. Severity
// grading happens server-side and comes back on the entry.
func (s *Service) LogMySymptoms(ctx context.Context, input domain.SymptomInput) (domain.SymptomEntry, error) {
	req := domain.NewRequest(http.MethodPost, "/symptoms/me", input)
	var out domain.SymptomEntry
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) MySymptoms(ctx context.Context, limit int) ([]domain.SymptomEntry, error) {
	req := domain.NewRequest(http.MethodGet, "/symptoms/me", nil)
	if limit > 0 {
		req = req.WithQuery("limit", strconv.Itoa(limit))
	}
	var out []domain.SymptomEntry
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) CreateSymptomEntry(ctx context.Context, patientID string, input domain.SymptomInput) (domain.SymptomEntry, error) {
	req := domain.NewRequest(http.MethodPost, "/patients/"+patientID+"/symptoms", input)
	var out domain.SymptomEntry
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}

func (s *Service) PatientSymptoms(ctx context.Context, patientID string) ([]domain.SymptomEntry, error) {
	req := domain.NewRequest(http.MethodGet, "/patients/"+patientID+"/symptoms", nil)
	var out []domain.SymptomEntry
	err := s.session.DoInto(ctx, req, &out)
	return out, err
}
