package domain

import (
	"context"

	"github.com/strongerfit/teamup-relay/internal/model"
	"github.com/strongerfit/teamup-relay/pkg/api/highlevel"
	"github.com/strongerfit/teamup-relay/pkg/xcontext"
)

const eventCustomerCreated = "customer.created"

type WebhookDomain interface {
	HandleEvent(ctx context.Context, req *model.WebhookEvent) (*model.WebhookResponse, error)
}

type webhookDomain struct {
	highlevelEndpoint highlevel.IEndpoint
}

func NewWebhookDomain(highlevelEndpoint highlevel.IEndpoint) WebhookDomain {
	return &webhookDomain{highlevelEndpoint: highlevelEndpoint}
}

// HandleEvent acknowledges every syntactically valid webhook. Forwarding to
// HighLevel is at-most-once: a failure is logged and swallowed, otherwise
// TeamUp would retry the webhook indefinitely.
func (d *webhookDomain) HandleEvent(
	ctx context.Context, req *model.WebhookEvent,
) (*model.WebhookResponse, error) {
	if req.Event == eventCustomerCreated {
		_, err := d.highlevelEndpoint.CreateContact(ctx, highlevel.Contact{
			FirstName: req.Data.FirstName,
			LastName:  req.Data.LastName,
			Email:     req.Data.Email,
			Phone:     req.Data.Phone,
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot forward customer %s to HighLevel: %v",
				req.Data.Email, err)
		} else {
			xcontext.Logger(ctx).Infof("Synced new customer %s to HighLevel via webhook",
				req.Data.FirstName)
		}
	} else {
		xcontext.Logger(ctx).Debugf("Ignoring webhook event %s", req.Event)
	}

	return &model.WebhookResponse{Message: "Webhook received successfully"}, nil
}
