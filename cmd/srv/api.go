package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/strongerfit/teamup-relay/internal/domain"
	"github.com/strongerfit/teamup-relay/internal/middleware"
	"github.com/strongerfit/teamup-relay/internal/repository"
	"github.com/strongerfit/teamup-relay/pkg/api/highlevel"
	"github.com/strongerfit/teamup-relay/pkg/api/teamup"
	"github.com/strongerfit/teamup-relay/pkg/authenticator"
	"github.com/strongerfit/teamup-relay/pkg/logger"
	"github.com/strongerfit/teamup-relay/pkg/router"
	"github.com/strongerfit/teamup-relay/pkg/xredis"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadRepos(ct.Context); err != nil {
		return err
	}
	s.loadEndpoints()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.Server.Host, s.configs.Server.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.Server.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	s.logger.Infof("Server stopped")

	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(getEnv("LOG_LEVEL", "INFO")))
}

func (s *srv) loadRepos(ctx context.Context) error {
	// The state registry is always in memory: a pending state only matters
	// to the process that issued the redirect.
	s.stateRepo = repository.NewInMemoryStateRepository()

	if s.configs.Redis.Addr == "" {
		s.tokenRepo = repository.NewInMemoryTokenRepository()
		return nil
	}

	redisClient, err := xredis.NewClient(ctx, s.configs.Redis)
	if err != nil {
		return fmt.Errorf("cannot connect to redis: %w", err)
	}

	s.tokenRepo = repository.NewRedisTokenRepository(redisClient)
	return nil
}

func (s *srv) loadEndpoints() {
	s.oauth2Config = authenticator.NewOAuth2Config(s.configs.TeamUp)
	s.teamupEndpoint = teamup.New(s.configs.TeamUp)
	s.highlevelEndpoint = highlevel.New(s.configs.HighLevel)
}

func (s *srv) loadDomains() {
	s.oauth2Domain = domain.NewOAuth2Domain(s.tokenRepo, s.stateRepo, s.oauth2Config)
	s.customerDomain = domain.NewCustomerDomain(
		s.tokenRepo, s.teamupEndpoint, s.configs.TeamUp.MembershipID)
	s.webhookDomain = domain.NewWebhookDomain(s.highlevelEndpoint)
}

func (s *srv) loadRouter() {
	s.router = router.New(*s.configs, s.logger)
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.Logger(s.logger))

	// OAuth API
	router.GET(s.router, "/auth", s.oauth2Domain.Auth)
	router.GET(s.router, "/callback", s.oauth2Domain.Callback)

	// Relay API, called by HighLevel workflows.
	router.POST(s.router, "/create-customer", s.customerDomain.Create)
	router.POST(s.router, "/add-membership", s.customerDomain.AddMembership)

	// Webhook API, called by TeamUp.
	router.POST(s.router, "/webhook", s.webhookDomain.HandleEvent)

	s.router.Inner.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "TeamUp Gym Manager is running!")
	})

	s.router.Inner.GET("/debug/dns", s.debugDNS)
}

// debugDNS resolves the TeamUp host. It exists to tell DNS trouble apart from
// API trouble on restricted hosting.
func (s *srv) debugDNS(c *gin.Context) {
	apiURL, err := url.Parse(s.configs.TeamUp.APIURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid TeamUp API URL"})
		return
	}

	addrs, err := net.DefaultResolver.LookupHost(c.Request.Context(), apiURL.Hostname())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "DNS resolution failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "DNS resolution successful",
		"addresses": addrs,
	})
}
