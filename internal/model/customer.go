package model

import "github.com/strongerfit/teamup-relay/pkg/api"

type CreateCustomerRequest struct {
	TenantID  string `json:"tenantId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r CreateCustomerRequest) Tenant() string {
	return tenantOrDefault(r.TenantID)
}

type CreateCustomerResponse struct {
	Message string `json:"message"`

	// Customer is the created record exactly as the membership platform
	// returned it.
	Customer api.JSON `json:"customer"`
}

type AddMembershipRequest struct {
	TenantID     string `json:"tenantId"`
	Email        string `json:"email"`
	MembershipID string `json:"membershipId"`
}

func (r AddMembershipRequest) Tenant() string {
	return tenantOrDefault(r.TenantID)
}

type AddMembershipResponse struct {
	Message    string   `json:"message"`
	Membership api.JSON `json:"membership"`
}
