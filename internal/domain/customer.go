package domain

import (
	"context"
	"errors"
	"time"

	"github.com/strongerfit/teamup-relay/internal/model"
	"github.com/strongerfit/teamup-relay/internal/repository"
	"github.com/strongerfit/teamup-relay/pkg/api"
	"github.com/strongerfit/teamup-relay/pkg/api/teamup"
	"github.com/strongerfit/teamup-relay/pkg/errorx"
	"github.com/strongerfit/teamup-relay/pkg/xcontext"
)

type CustomerDomain interface {
	Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.CreateCustomerResponse, error)
	AddMembership(ctx context.Context, req *model.AddMembershipRequest) (*model.AddMembershipResponse, error)
}

type customerDomain struct {
	tokenRepo           repository.TokenRepository
	teamupEndpoint      teamup.IEndpoint
	defaultMembershipID string
}

func NewCustomerDomain(
	tokenRepo repository.TokenRepository,
	teamupEndpoint teamup.IEndpoint,
	defaultMembershipID string,
) CustomerDomain {
	return &customerDomain{
		tokenRepo:           tokenRepo,
		teamupEndpoint:      teamupEndpoint,
		defaultMembershipID: defaultMembershipID,
	}
}

func (d *customerDomain) Create(
	ctx context.Context, req *model.CreateCustomerRequest,
) (*model.CreateCustomerResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, errorx.New(errorx.MissingFields,
			"Missing required fields: firstName, lastName, or email")
	}

	accessToken, err := d.accessToken(ctx, req.Tenant())
	if err != nil {
		return nil, err
	}

	customer, err := d.teamupEndpoint.CreateCustomer(ctx, accessToken, teamup.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, remoteError(ctx, "Failed to create customer in TeamUp", err)
	}

	xcontext.Logger(ctx).Infof("Created TeamUp customer: %s %s (%s)",
		req.FirstName, req.LastName, req.Email)

	return &model.CreateCustomerResponse{
		Message:  "Customer created in TeamUp successfully",
		Customer: customer,
	}, nil
}

func (d *customerDomain) AddMembership(
	ctx context.Context, req *model.AddMembershipRequest,
) (*model.AddMembershipResponse, error) {
	if req.Email == "" {
		return nil, errorx.New(errorx.MissingFields, "Missing required fields: email")
	}

	accessToken, err := d.accessToken(ctx, req.Tenant())
	if err != nil {
		return nil, err
	}

	membershipID := req.MembershipID
	if membershipID == "" {
		membershipID = d.defaultMembershipID
	}
	if membershipID == "" {
		return nil, errorx.New(errorx.MissingConfig,
			"Missing TeamUp membership ID. Please set TEAMUP_MEMBERSHIP_ID or pass membershipId.")
	}

	customers, err := d.teamupEndpoint.FindCustomersByEmail(ctx, accessToken, req.Email)
	if err != nil {
		return nil, remoteError(ctx, "Failed to look up customer in TeamUp", err)
	}

	if len(customers) == 0 {
		return nil, errorx.New(errorx.NotFound, "Customer not found in TeamUp")
	}

	// When the lookup matches several customers, the first in response order
	// wins. TeamUp does not document the ordering.
	customerID, err := customers[0].Get("id")
	if err != nil {
		xcontext.Logger(ctx).Errorf("Unexpected customer payload: %v", err)
		return nil, errorx.New(errorx.RemoteError, "Unexpected customer payload from TeamUp")
	}

	// The two calls are not transactional: if this one fails the customer is
	// left without a membership and the caller retries.
	membership, err := d.teamupEndpoint.CreateMembership(ctx, accessToken, teamup.Membership{
		CustomerID:   customerID,
		MembershipID: membershipID,
		StartDate:    time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return nil, remoteError(ctx, "Failed to add customer membership in TeamUp", err)
	}

	xcontext.Logger(ctx).Infof("Added TeamUp customer membership for %s (Customer ID: %v)",
		req.Email, customerID)

	return &model.AddMembershipResponse{
		Message:    "Customer membership added in TeamUp successfully",
		Membership: membership,
	}, nil
}

func (d *customerDomain) accessToken(ctx context.Context, tenantID string) (string, error) {
	accessToken, err := d.tokenRepo.Get(ctx, tenantID)
	if errors.Is(err, repository.ErrNoToken) {
		return "", errorx.New(errorx.NotAuthorized,
			"Missing TeamUp access token. Please authorize TeamUp first.")
	}
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read access token: %v", err)
		return "", errorx.New(errorx.Internal, "Cannot read access token")
	}

	return accessToken, nil
}

func remoteError(ctx context.Context, message string, err error) error {
	xcontext.Logger(ctx).Errorf("%s: %v", message, err)

	var remoteErr *api.RemoteError
	if errors.As(err, &remoteErr) {
		return errorx.New(errorx.RemoteError, "%s: %s", message, remoteErr.Message)
	}

	return errorx.New(errorx.RemoteError, "%s: %v", message, err)
}
