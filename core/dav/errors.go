package dav

import (
	"errors"
	"fmt"
)

// ErrCredentialsMissing indicates that APPLE_ID or APPLE_APP_PASSWORD is unset.
var ErrCredentialsMissing = errors.New("upstream credentials missing: APPLE_ID or APPLE_APP_PASSWORD not set")

// ErrMalformedXML indicates that the upstream returned XML that could not be parsed.
var ErrMalformedXML = errors.New("failed to parse XML from upstream")

// UpstreamError carries a >=400 reply from the CalDAV host so that handlers
// can proxy the upstream status instead of collapsing everything into a 502.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}
