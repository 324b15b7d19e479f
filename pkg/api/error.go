package api

import (
	"fmt"
)

// RemoteError is returned by endpoint wrappers when the remote platform
// answers with an error status after the retry policy is exhausted.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote status %d: %s", e.Status, e.Message)
}

// NewRemoteError extracts a human-readable message from an error response.
func NewRemoteError(resp *Response) *RemoteError {
	message := ""
	if body, ok := resp.Body.(JSON); ok {
		for _, field := range []string{"error", "message", "detail"} {
			if s, err := body.GetString(field); err == nil && s != "" {
				message = s
				break
			}
		}
	}

	if message == "" {
		message = string(resp.RawBody)
	}

	return &RemoteError{Status: resp.Code, Message: message}
}
