package highlevel

import (
	"context"

	"github.com/strongerfit/teamup-relay/pkg/api"
)

type IEndpoint interface {
	CreateContact(ctx context.Context, contact Contact) (api.JSON, error)
}
