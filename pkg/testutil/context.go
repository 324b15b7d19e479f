package testutil

import (
	"context"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/logger"
	"github.com/strongerfit/teamup-relay/pkg/xcontext"
)

// NewMockContext returns a context carrying silent ambient dependencies.
func NewMockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, config.Configs{Env: "testing"})
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	return ctx
}
