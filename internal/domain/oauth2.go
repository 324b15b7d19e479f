package domain

import (
	"context"

	"github.com/strongerfit/teamup-relay/internal/model"
	"github.com/strongerfit/teamup-relay/internal/repository"
	"github.com/strongerfit/teamup-relay/pkg/authenticator"
	"github.com/strongerfit/teamup-relay/pkg/crypto"
	"github.com/strongerfit/teamup-relay/pkg/errorx"
	"github.com/strongerfit/teamup-relay/pkg/xcontext"
)

type OAuth2Domain interface {
	Auth(ctx context.Context, req *model.AuthRequest) (*model.AuthResponse, error)
	Callback(ctx context.Context, req *model.CallbackRequest) (*model.CallbackResponse, error)
}

type oauth2Domain struct {
	tokenRepo repository.TokenRepository
	stateRepo repository.StateRepository
	oauth2Cfg authenticator.IOAuth2Config
}

func NewOAuth2Domain(
	tokenRepo repository.TokenRepository,
	stateRepo repository.StateRepository,
	oauth2Cfg authenticator.IOAuth2Config,
) OAuth2Domain {
	return &oauth2Domain{
		tokenRepo: tokenRepo,
		stateRepo: stateRepo,
		oauth2Cfg: oauth2Cfg,
	}
}

func (d *oauth2Domain) Auth(
	ctx context.Context, req *model.AuthRequest,
) (*model.AuthResponse, error) {
	state, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate state: %v", err)
		return nil, errorx.New(errorx.Internal, "Cannot generate state")
	}

	// Only one authorization is in flight per tenant; a previous pending
	// state is overwritten here.
	if err := d.stateRepo.Set(ctx, req.Tenant(), state); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store state: %v", err)
		return nil, errorx.New(errorx.Internal, "Cannot store state")
	}

	redirectURL := d.oauth2Cfg.AuthCodeURL(state)
	xcontext.Logger(ctx).Infof("Redirecting tenant %s to TeamUp auth URL", req.Tenant())

	return &model.AuthResponse{RedirectURL: redirectURL}, nil
}

func (d *oauth2Domain) Callback(
	ctx context.Context, req *model.CallbackRequest,
) (*model.CallbackResponse, error) {
	if req.State == "" {
		return nil, errorx.New(errorx.InvalidState, "Authorization failed: Invalid state parameter")
	}

	matched, err := d.stateRepo.CheckAndClear(ctx, req.Tenant(), req.State)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check state: %v", err)
		return nil, errorx.New(errorx.Internal, "Cannot check state")
	}

	if !matched {
		return nil, errorx.New(errorx.InvalidState, "Authorization failed: Invalid state parameter")
	}

	if req.Code == "" {
		return nil, errorx.New(errorx.MissingCode, "Authorization failed: No code provided")
	}

	token, err := d.oauth2Cfg.Exchange(ctx, req.Code)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot exchange authorization code: %v", err)
		return nil, errorx.New(errorx.TokenExchangeFailed, "TeamUp authorization failed: %v", err)
	}

	if token.AccessToken == "" {
		return nil, errorx.New(errorx.TokenExchangeFailed,
			"TeamUp authorization failed: token endpoint returned no access token")
	}

	if err := d.tokenRepo.Set(ctx, req.Tenant(), token.AccessToken); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store access token: %v", err)
		return nil, errorx.New(errorx.Internal, "Cannot store access token")
	}

	return &model.CallbackResponse{
		Message: "TeamUp authorization successful! You can now proceed with the workflow.",
	}, nil
}
