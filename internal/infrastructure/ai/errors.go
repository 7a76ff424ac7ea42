package ai

import "fmt"

// UpstreamError reports a failed AI call with the upstream detail verbatim.
// It is never retried; the caller decides how to surface it.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ai upstream error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("ai upstream error: %s", e.Detail)
}
