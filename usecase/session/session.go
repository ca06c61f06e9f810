// Package session implements the authenticated request pipeline: it attaches
// the stored credential to every outbound call, renews an expired credential
// exactly once per logical request with all concurrent renewals collapsed
// into a single wire call, and normalizes response bodies from the backend's
// snake_case convention into the client's camelCase convention.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oncoflow/mobilecore/domain"
	"github.com/oncoflow/mobilecore/internal/transport"
	"github.com/oncoflow/mobilecore/pkg/logger"
	"github.com/oncoflow/mobilecore/pkg/wirecase"
	"github.com/oncoflow/mobilecore/repository"
)

// Config holds the auth endpoints and the renewal timing bounds.
type Config struct {
	LoginPath   string
	RefreshPath string
	LogoutPath  string
	// RefreshTimeout bounds the renewal wire call. A renewal that never
	// completes settles as a failure instead of blocking waiters forever.
	RefreshTimeout time.Duration
	// WaiterDeadline bounds how long a request joined to an in-flight renewal
	// waits for it to settle.
	WaiterDeadline time.Duration
}

func (c Config) withDefaults() Config {
	if c.LoginPath == "" {
		c.LoginPath = "/auth/login"
	}
	if c.RefreshPath == "" {
		c.RefreshPath = "/auth/refresh"
	}
	if c.LogoutPath == "" {
		c.LogoutPath = "/auth/logout"
	}
	if c.RefreshTimeout <= 0 {
		c.RefreshTimeout = 10 * time.Second
	}
	if c.WaiterDeadline <= 0 {
		c.WaiterDeadline = 15 * time.Second
	}
	return c
}

// Session owns one user's credential lifecycle and request pipeline. It is
// safe for concurrent use; multiple Sessions can coexist in one process, each
// with its own store and renewal state.
type Session struct {
	store  repository.CredentialStore
	wire   transport.Transport
	cfg    Config
	logger *zap.Logger

	// mu guards the renewal ticket slot and the session epoch. The
	// "check ticket / create ticket" step is a single critical section so two
	// tickets can never be live at once.
	mu     sync.Mutex
	ticket *renewalTicket
	epoch  uint64

	terminated   chan error
	onTerminated func(error)
}

// New builds a Session over the given store and transport.
func New(store repository.CredentialStore, wire transport.Transport, cfg Config, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		store:      store,
		wire:       wire,
		cfg:        cfg.withDefaults(),
		logger:     log,
		terminated: make(chan error, 1),
	}
}

// OnTerminated registers a callback fired once per failed renewal, after the
// store has been cleared. Must be set before the session is used.
func (s *Session) OnTerminated(fn func(error)) {
	s.onTerminated = fn
}

// Terminated exposes the session-terminated broadcast. The channel holds at
// most one pending signal.
func (s *Session) Terminated() <-chan error {
	return s.terminated
}

// Do dispatches one logical request and returns the normalized response body
// (decoded JSON with camelCase keys), or a typed *domain.Error.
func (s *Session) Do(ctx context.Context, req domain.Request) (any, error) {
	ctx = logger.ContextWithRequestID(ctx, req.ID)
	log := logger.WithRequestID(ctx, s.logger)

	token := ""
	if !req.Anonymous {
		creds, err := s.store.Get(ctx)
		if err != nil {
			// Absent credential is terminal here; the caller must log in.
			return nil, err
		}
		token = creds.AccessToken
	}

	resp, err := s.transmit(ctx, req, token)
	if err != nil {
		return nil, err
	}

	switch classify(resp.StatusCode, req) {
	case outcomeSuccess:
		return decodeBody(resp)

	case outcomeRetryableAuth:
		log.Debug("credential rejected, joining renewal",
			zap.String("method", req.Method),
			zap.String("path", req.Path))

		renewed, err := s.ensureFresh(ctx)
		if err != nil {
			return nil, err
		}

		retry := req.Retried()
		resp, err = s.transmit(ctx, retry, renewed.AccessToken)
		if err != nil {
			return nil, err
		}
		if classify(resp.StatusCode, retry) == outcomeSuccess {
			return decodeBody(resp)
		}
		// Second rejection after a successful renewal: terminal, never a
		// second renewal.
		return nil, errorFromResponse(resp)

	default:
		return nil, errorFromResponse(resp)
	}
}

// DoInto runs Do and decodes the normalized payload into out, which should be
// a pointer to a struct tagged with camelCase JSON names.
func (s *Session) DoInto(ctx context.Context, req domain.Request, out any) error {
	payload, err := s.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || payload == nil {
		return nil
	}
	return decodeInto(payload, out)
}

// Login exchanges credentials for a token pair and stores it.
func (s *Session) Login(ctx context.Context, email, password string) (domain.TokenGrant, error) {
	req := domain.NewAnonymousRequest(http.MethodPost, s.cfg.LoginPath, map[string]any{
		"email":    email,
		"password": password,
	})

	var grant domain.TokenGrant
	if err := s.DoInto(ctx, req, &grant); err != nil {
		return domain.TokenGrant{}, err
	}
	if !grant.Credentials().Valid() {
		return domain.TokenGrant{}, domain.NewError(domain.ErrCodeInvalid, "login response missing tokens")
	}
	if err := s.store.Set(ctx, grant.Credentials()); err != nil {
		return domain.TokenGrant{}, err
	}

	s.logger.Info("session established")
	return grant, nil
}

// Logout tells the backend best-effort, advances the session epoch so any
// in-flight renewal settles void, and clears the store. The store ends empty
// regardless of the wire outcome.
func (s *Session) Logout(ctx context.Context) error {
	if creds, err := s.store.Get(ctx); err == nil {
		req := domain.NewRequest(http.MethodPost, s.cfg.LogoutPath, nil)
		if prepared, perr := s.prepare(req, creds.AccessToken); perr == nil {
			if _, werr := s.wire.RoundTrip(ctx, prepared); werr != nil {
				s.logger.Warn("logout call failed", zap.Error(werr))
			}
		}
	}

	s.mu.Lock()
	s.epoch++
	s.mu.Unlock()

	s.logger.Info("session closed")
	return s.store.Clear(ctx)
}

// transmit prepares and sends one attempt. A transport-level failure comes
// back as a NETWORK error; it is never retried at this layer.
func (s *Session) transmit(ctx context.Context, req domain.Request, token string) (*domain.Response, error) {
	prepared, err := s.prepare(req, token)
	if err != nil {
		return nil, err
	}
	resp, err := s.wire.RoundTrip(ctx, prepared)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeNetwork, "no response from backend", err)
	}
	return resp, nil
}

// prepare converts the body to wire form, encodes it, and attaches the bearer
// credential. The original descriptor is left untouched.
func (s *Session) prepare(req domain.Request, token string) (domain.Request, error) {
	if req.Body != nil {
		raw, err := encodeWireBody(req.Body)
		if err != nil {
			return domain.Request{}, err
		}
		req = req.WithBody(raw)
	}
	if token != "" && !req.Anonymous {
		req = req.WithHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

func encodeWireBody(body any) (json.RawMessage, error) {
	if raw, ok := body.(json.RawMessage); ok {
		return raw, nil
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "encode request body", err)
	}
	var decoded any
	if err := json.Unmarshal(buf, &decoded); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "re-decode request body", err)
	}
	wire, err := wirecase.ToWireForm(decoded)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "convert request body to wire form", err)
	}
	out, err := json.Marshal(wire)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "encode wire body", err)
	}
	return out, nil
}

func decodeBody(resp *domain.Response) (any, error) {
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "malformed response body", err)
	}
	normalized, err := wirecase.ToClientForm(decoded)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "normalize response body", err)
	}
	return normalized, nil
}

func decodeInto(payload, out any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "re-encode normalized payload", err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "decode normalized payload", err)
	}
	return nil
}

func errorFromResponse(resp *domain.Response) error {
	code := domain.ErrCodeTerminal
	if resp.StatusCode == http.StatusUnauthorized {
		code = domain.ErrCodeUnauthorized
	}
	e := domain.NewError(code, backendDetail(resp.Body))
	e.Status = resp.StatusCode
	return e
}

// backendDetail pulls the human-readable message out of the backend's error
// envelope, falling back to a generic one.
func backendDetail(body []byte) string {
	var payload struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Detail.(string); ok && msg != "" {
			return msg
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "backend rejected request"
}
