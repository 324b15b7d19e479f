package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/api"
	"github.com/strongerfit/teamup-relay/pkg/logger"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

type Router struct {
	Inner gin.IRouter

	cfg        config.Configs
	logger     logger.Logger
	httpClient *http.Client
}

func New(cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		Inner:      gin.New(),
		cfg:        cfg,
		logger:     logger,
		httpClient: api.NewHTTPClient(),
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware gin.HandlerFunc) {
	r.Inner.Use(middleware)
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
