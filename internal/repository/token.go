package repository

import (
	"context"
	"errors"

	"github.com/puzpuzpuz/xsync"
	"github.com/redis/go-redis/v9"

	"github.com/strongerfit/teamup-relay/pkg/xredis"
)

// ErrNoToken is returned by Get when the tenant has never completed an
// authorization.
var ErrNoToken = errors.New("no access token for tenant")

const tokenKeyPrefix = "token:"

// TokenRepository holds one TeamUp access token per tenant. Tokens are read
// fresh on every relay call and never cached beyond the store.
type TokenRepository interface {
	Get(ctx context.Context, tenantID string) (string, error)
	Set(ctx context.Context, tenantID, accessToken string) error
}

type inMemoryTokenRepository struct {
	tokens *xsync.MapOf[string, string]
}

func NewInMemoryTokenRepository() *inMemoryTokenRepository {
	return &inMemoryTokenRepository{tokens: xsync.NewMapOf[string]()}
}

func (r *inMemoryTokenRepository) Get(ctx context.Context, tenantID string) (string, error) {
	token, ok := r.tokens.Load(tenantID)
	if !ok {
		return "", ErrNoToken
	}

	return token, nil
}

func (r *inMemoryTokenRepository) Set(ctx context.Context, tenantID, accessToken string) error {
	r.tokens.Store(tenantID, accessToken)
	return nil
}

type redisTokenRepository struct {
	redisClient xredis.Client
}

// NewRedisTokenRepository returns a durable token store with the key layout
// token:<tenantID>.
func NewRedisTokenRepository(redisClient xredis.Client) *redisTokenRepository {
	return &redisTokenRepository{redisClient: redisClient}
}

func (r *redisTokenRepository) Get(ctx context.Context, tenantID string) (string, error) {
	token, err := r.redisClient.Get(ctx, tokenKeyPrefix+tenantID)
	if errors.Is(err, redis.Nil) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

func (r *redisTokenRepository) Set(ctx context.Context, tenantID, accessToken string) error {
	return r.redisClient.Set(ctx, tokenKeyPrefix+tenantID, accessToken)
}
