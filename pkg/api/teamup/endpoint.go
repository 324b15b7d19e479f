package teamup

import (
	"context"
	"errors"
	"net/http"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/api"
)

// Endpoint wraps the TeamUp business REST API. Every call is authenticated
// with the caller's OAuth access token and carries the configured Business-ID.
type Endpoint struct {
	BusinessID string

	apiGenerator api.Generator
}

func New(cfg config.TeamUpConfigs) *Endpoint {
	return &Endpoint{
		BusinessID:   cfg.BusinessID,
		apiGenerator: api.NewGenerator(cfg.APIURL),
	}
}

func (e *Endpoint) CreateCustomer(
	ctx context.Context, accessToken string, customer Customer,
) (api.JSON, error) {
	resp, err := e.apiGenerator.New("/customers").
		Header("Business-ID", e.BusinessID).
		Body(api.JSON{
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"email":      customer.Email,
		}).
		POST(ctx, api.OAuth2("Bearer", accessToken))
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

func (e *Endpoint) FindCustomersByEmail(
	ctx context.Context, accessToken, email string,
) (api.Array, error) {
	resp, err := e.apiGenerator.New("/customers").
		Header("Business-ID", e.BusinessID).
		Query(api.Parameter{"email": email}).
		GET(ctx, api.OAuth2("Bearer", accessToken))
	if err != nil {
		return nil, err
	}

	if resp.Code >= http.StatusBadRequest {
		return nil, api.NewRemoteError(resp)
	}

	body, ok := resp.Body.(api.Array)
	if !ok {
		// An empty body parses as an empty JSON object.
		if _, isJSON := resp.Body.(api.JSON); isJSON && len(resp.RawBody) == 0 {
			return api.Array{}, nil
		}
		return nil, errors.New("invalid body type")
	}

	return body, nil
}

func (e *Endpoint) CreateMembership(
	ctx context.Context, accessToken string, membership Membership,
) (api.JSON, error) {
	resp, err := e.apiGenerator.New("/customer-memberships").
		Header("Business-ID", e.BusinessID).
		Body(api.JSON{
			"customer_id":   membership.CustomerID,
			"membership_id": membership.MembershipID,
			"start_date":    membership.StartDate,
		}).
		POST(ctx, api.OAuth2("Bearer", accessToken))
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
