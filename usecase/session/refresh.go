package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/oncoflow/mobilecore/domain"
)

// renewalTicket represents one in-flight renewal. Waiters block on done and
// then read the settled outcome; the fields are written exactly once, before
// done is closed.
type renewalTicket struct {
	done  chan struct{}
	creds domain.Credentials
	err   error
}

// ensureFresh returns a credential at least as new as the renewal triggered by
// the caller's auth failure. If a renewal is already in flight the caller
// joins it; otherwise the caller creates the ticket and the renewal runs in
// its own goroutine, detached from any single waiter's context.
func (s *Session) ensureFresh(ctx context.Context) (domain.Credentials, error) {
	s.mu.Lock()
	t := s.ticket
	if t == nil {
		t = &renewalTicket{done: make(chan struct{})}
		s.ticket = t
		go s.renew(t, s.epoch)
	}
	s.mu.Unlock()

	return s.await(ctx, t)
}

func (s *Session) await(ctx context.Context, t *renewalTicket) (domain.Credentials, error) {
	deadline := time.NewTimer(s.cfg.WaiterDeadline)
	defer deadline.Stop()

	select {
	case <-t.done:
		return t.creds, t.err
	case <-ctx.Done():
		return domain.Credentials{}, domain.WrapError(domain.ErrCodeNetwork, "renewal wait abandoned", ctx.Err())
	case <-deadline.C:
		// The ticket keeps settling on its own; this waiter just gives up.
		return domain.Credentials{}, domain.ErrRefreshTimeout
	}
}

// renew performs the single renewal wire call and settles the ticket. The
// epoch captured at ticket creation decides whether the result may touch the
// store: a logout in the meantime voids it.
func (s *Session) renew(t *renewalTicket, epoch uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RefreshTimeout)
	defer cancel()

	creds, err := s.renewCall(ctx)

	// Settle under the same lock that guards logout's epoch bump, so a stale
	// renewal can never repopulate a store a logout just cleared.
	s.mu.Lock()
	stale := s.epoch != epoch
	var setErr error
	if !stale && err == nil {
		setErr = s.store.Set(ctx, creds)
	}
	s.ticket = nil
	s.mu.Unlock()

	var terminated error
	switch {
	case stale:
		t.err = domain.ErrSessionTerminated
	case errors.Is(err, domain.ErrNotAuthenticated):
		// The store was already empty when the renewal started: a logout beat
		// this ticket to it. Nothing failed and nothing to clear, so waiters
		// settle terminal without raising the terminated signal.
		t.err = domain.ErrSessionTerminated
	case err != nil:
		if cerr := s.store.Clear(context.Background()); cerr != nil {
			s.logger.Warn("clearing credentials after failed renewal", zap.Error(cerr))
		}
		t.err = domain.WrapError(domain.ErrCodeSessionTerminated, "credential renewal failed", err)
		terminated = t.err
	case setErr != nil:
		t.err = setErr
	default:
		t.creds = creds
	}
	close(t.done)

	if terminated != nil {
		s.logger.Warn("session terminated", zap.Error(terminated))
		s.notifyTerminated(terminated)
	}
}

// renewCall presents the refresh token and returns the new pair.
func (s *Session) renewCall(ctx context.Context) (domain.Credentials, error) {
	current, err := s.store.Get(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}

	req := domain.NewAnonymousRequest(http.MethodPost, s.cfg.RefreshPath, map[string]any{
		"refreshToken": current.RefreshToken,
	})
	resp, err := s.transmit(ctx, req, "")
	if err != nil {
		return domain.Credentials{}, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Credentials{}, errorFromResponse(resp)
	}

	payload, err := decodeBody(resp)
	if err != nil {
		return domain.Credentials{}, err
	}
	var grant domain.TokenGrant
	if err := decodeInto(payload, &grant); err != nil {
		return domain.Credentials{}, err
	}
	if !grant.Credentials().Valid() {
		return domain.Credentials{}, domain.NewError(domain.ErrCodeInvalid, "refresh response missing tokens")
	}
	return grant.Credentials(), nil
}

// notifyTerminated raises the process-wide signal once per failed renewal.
func (s *Session) notifyTerminated(err error) {
	select {
	case s.terminated <- err:
	default:
	}
	if s.onTerminated != nil {
		s.onTerminated(err)
	}
}
