package model

import "net/http"

type AuthRequest struct {
	TenantID string `form:"tenantId"`
}

func (r AuthRequest) Tenant() string {
	return tenantOrDefault(r.TenantID)
}

type AuthResponse struct {
	RedirectURL string `json:"-"`
}

func (r AuthResponse) RedirectInfo() (int, string) {
	return http.StatusFound, r.RedirectURL
}

type CallbackRequest struct {
	TenantID string `form:"tenantId"`
	Code     string `form:"code"`
	State    string `form:"state"`
}

func (r CallbackRequest) Tenant() string {
	return tenantOrDefault(r.TenantID)
}

type CallbackResponse struct {
	Message string
}

// Text renders the callback result as plain text. The callback page is read
// by a person in a browser, not by an API client.
func (r CallbackResponse) Text() string {
	return r.Message
}
