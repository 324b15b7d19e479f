package teamup

import (
	"context"

	"github.com/strongerfit/teamup-relay/pkg/api"
)

type IEndpoint interface {
	CreateCustomer(ctx context.Context, accessToken string, customer Customer) (api.JSON, error)
	FindCustomersByEmail(ctx context.Context, accessToken, email string) (api.Array, error)
	CreateMembership(ctx context.Context, accessToken string, membership Membership) (api.JSON, error)
}
