package authenticator

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/api"
)

// OAuth2Config drives the authorization-code flow against TeamUp. TeamUp
// expects the client credentials in the form-encoded body of the token
// request, hence AuthStyleInParams.
type OAuth2Config struct {
	oauth2.Config

	httpClient *http.Client
}

func NewOAuth2Config(cfg config.TeamUpConfigs) *OAuth2Config {
	return &OAuth2Config{
		Config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			RedirectURL: cfg.RedirectURI,
			Scopes:      []string{"read_write"},
		},
		httpClient: api.NewHTTPClient(),
	}
}

// Exchange runs the code exchange with the relay's bounded, retrying HTTP
// client instead of http.DefaultClient.
func (a *OAuth2Config) Exchange(
	ctx context.Context, code string, opts ...oauth2.AuthCodeOption,
) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	return a.Config.Exchange(ctx, code, opts...)
}
