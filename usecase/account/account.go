// Package account covers the auth lifecycle and profile operations of the
// signed-in user.
package account

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

// Login authenticates and stores the credential pair.
func (s *Service) Login(ctx context.Context, email, password string) (domain.TokenGrant, error) {
	return s.session.Login(ctx, email, password)
}

// Logout ends the session; the local credential pair is cleared regardless of
// the wire outcome.
func (s *Service) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

// Register creates a new account. The call is anonymous; the caller logs in
// afterwards.
func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	req := domain.NewAnonymousRequest(http.MethodPost, "/auth/register", input)
	var user domain.User
	err := s.session.DoInto(ctx, req, &user)
	return user, err
}

// Me returns the signed-in user's profile.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	req := domain.NewRequest(http.MethodGet, "/auth/me", nil)
	var user domain.User
	err := s.session.DoInto(ctx, req, &user)
	return user, err
}

// ChangePassword rotates the password of the signed-in user.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	req := domain.NewRequest(http.MethodPost, "/auth/change-password", map[string]any{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	})
	_, err := s.session.Do(ctx, req)
	return err
}

// ForgotPassword requests a reset link. The backend answers uniformly whether
// or not the address exists.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	req := domain.NewAnonymousRequest(http.MethodPost, "/auth/forgot-password", map[string]any{
		"email": email,
	})
	_, err := s.session.Do(ctx, req)
	return err
}

// ResetPassword completes a reset started by ForgotPassword.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := domain.NewAnonymousRequest(http.MethodPost, "/auth/reset-password", map[string]any{
		"token":       token,
		"newPassword": newPassword,
	})
	_, err := s.session.Do(ctx, req)
	return err
}
