package domain

import (
	"github.com/google/uuid"
)

// Request is an immutable descriptor of one logical backend call. The With*
// helpers return modified copies so a descriptor handed to the dispatcher is
// never mutated behind the caller's back; the retry state lives in the
// explicit Attempt counter rather than a shared flag.
type Request struct {
	ID     string
	Method string
	Path   string
	// Body is the payload in client form. The dispatcher converts it to the
	// wire convention and encodes it before transmission; an encoded body is
	// carried as json.RawMessage.
	Body   any
	Header map[string]string
	Query  map[string]string
	// Attempt is zero for the first transmission and one after the single
	// allowed auth retry.
	Attempt int
	// Anonymous requests are sent without a credential and never trigger a
	// renewal (login, register, password reset).
	Anonymous bool
}

// NewRequest builds a descriptor for an authenticated call.
func NewRequest(method, path string, body any) Request {
	return Request{
		ID:     uuid.NewString(),
		Method: method,
		Path:   path,
		Body:   body,
	}
}

// NewAnonymousRequest builds a descriptor sent without a credential.
func NewAnonymousRequest(method, path string, body any) Request {
	r := NewRequest(method, path, body)
	r.Anonymous = true
	return r
}

// WithHeader returns a copy with the header set.
func (r Request) WithHeader(key, value string) Request {
	h := make(map[string]string, len(r.Header)+1)
	for k, v := range r.Header {
		h[k] = v
	}
	h[key] = value
	r.Header = h
	return r
}

// WithQuery returns a copy with the query parameter set.
func (r Request) WithQuery(key, value string) Request {
	q := make(map[string]string, len(r.Query)+1)
	for k, v := range r.Query {
		q[k] = v
	}
	q[key] = value
	r.Query = q
	return r
}

// WithBody returns a copy carrying the given body.
func (r Request) WithBody(body any) Request {
	r.Body = body
	return r
}

// Retried returns a copy marked as having consumed its single auth retry.
func (r Request) Retried() Request {
	r.Attempt++
	return r
}

// Response is the raw outcome of one transmission, before normalization.
type Response struct {
	StatusCode int
	Body       []byte
	Header     map[string]string
}
