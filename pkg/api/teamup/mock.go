package teamup

import (
	"context"

	"github.com/strongerfit/teamup-relay/pkg/api"
)

type MockEndpoint struct {
	CreateCustomerFunc       func(ctx context.Context, accessToken string, customer Customer) (api.JSON, error)
	FindCustomersByEmailFunc func(ctx context.Context, accessToken, email string) (api.Array, error)
	CreateMembershipFunc     func(ctx context.Context, accessToken string, membership Membership) (api.JSON, error)
}

func (m *MockEndpoint) CreateCustomer(
	ctx context.Context, accessToken string, customer Customer,
) (api.JSON, error) {
	if m.CreateCustomerFunc != nil {
		return m.CreateCustomerFunc(ctx, accessToken, customer)
	}

	return api.JSON{}, nil
}

func (m *MockEndpoint) FindCustomersByEmail(
	ctx context.Context, accessToken, email string,
) (api.Array, error) {
	if m.FindCustomersByEmailFunc != nil {
		return m.FindCustomersByEmailFunc(ctx, accessToken, email)
	}

	return api.Array{}, nil
}

func (m *MockEndpoint) CreateMembership(
	ctx context.Context, accessToken string, membership Membership,
) (api.JSON, error) {
	if m.CreateMembershipFunc != nil {
		return m.CreateMembershipFunc(ctx, accessToken, membership)
	}

	return api.JSON{}, nil
}
