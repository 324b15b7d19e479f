package main

import (
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/internal/domain"
	"github.com/strongerfit/teamup-relay/internal/repository"
	"github.com/strongerfit/teamup-relay/pkg/api/highlevel"
	"github.com/strongerfit/teamup-relay/pkg/api/teamup"
	"github.com/strongerfit/teamup-relay/pkg/authenticator"
	"github.com/strongerfit/teamup-relay/pkg/logger"
	"github.com/strongerfit/teamup-relay/pkg/router"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger

	tokenRepo repository.TokenRepository
	stateRepo repository.StateRepository

	oauth2Config      authenticator.IOAuth2Config
	teamupEndpoint    teamup.IEndpoint
	highlevelEndpoint highlevel.IEndpoint

	oauth2Domain   domain.OAuth2Domain
	customerDomain domain.CustomerDomain
	webhookDomain  domain.WebhookDomain

	router *router.Router
	server *http.Server
}
