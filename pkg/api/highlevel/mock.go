package highlevel

import (
	"context"

	"github.com/strongerfit/teamup-relay/pkg/api"
)

type MockEndpoint struct {
	CreateContactFunc func(ctx context.Context, contact Contact) (api.JSON, error)
}

func (m *MockEndpoint) CreateContact(ctx context.Context, contact Contact) (api.JSON, error) {
	if m.CreateContactFunc != nil {
		return m.CreateContactFunc(ctx, contact)
	}

	return api.JSON{}, nil
}
