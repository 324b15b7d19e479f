package highlevel

import (
	"context"
	"errors"
	"net/http"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/api"
)

// Endpoint wraps the HighLevel contacts API. It authenticates with a static
// private token, not with the TeamUp OAuth token. The HTTP client never
// retries: contact forwarding is best-effort and must not delay the webhook
// acknowledgment.
type Endpoint struct {
	PrivateToken string

	apiGenerator api.Generator
}

func New(cfg config.HighLevelConfigs) *Endpoint {
	return &Endpoint{
		PrivateToken: cfg.PrivateToken,
		apiGenerator: api.NewGenerator(
			cfg.APIURL,
			api.WithHTTPClient(api.NewHTTPClientWithoutRetry()),
		),
	}
}

func (e *Endpoint) CreateContact(ctx context.Context, contact Contact) (api.JSON, error) {
	resp, err := e.apiGenerator.New("/contacts").
		Body(api.JSON{
			"firstName": contact.FirstName,
			"lastName":  contact.LastName,
			"email":     contact.Email,
			"phone":     contact.Phone,
		}).
		POST(ctx, api.OAuth2("Bearer", e.PrivateToken))
	if err != nil {
		return nil, err
	}

	if resp.Code >= http.StatusBadRequest {
		return nil, api.NewRemoteError(resp)
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errors.New("invalid body type")
	}

	return body, nil
}
