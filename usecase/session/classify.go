package session

import (
	"net/http"

	"github.com/oncoflow/mobilecore/domain"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeRetryableAuth
	outcomeTerminal
)

// classify maps a received response onto the retry decision for the request
// that produced it. Only a 401 on a request's first attempt is eligible for
// renewal; a 401 after the single retry, and every other non-2xx, is
// terminal. Anonymous requests carry no credential worth renewing.
func classify(status int, req domain.Request) outcome {
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return outcomeSuccess
	case status == http.StatusUnauthorized && !req.Anonymous && req.Attempt == 0:
		return outcomeRetryableAuth
	default:
		return outcomeTerminal
	}
}
