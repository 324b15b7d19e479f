package testutil

import (
	"context"

	"golang.org/x/oauth2"
)

type MockOAuth2 struct {
	ExchangeFunc    func(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	AuthCodeURLFunc func(state string, opts ...oauth2.AuthCodeOption) string
}

func NewMockOAuth2() *MockOAuth2 {
	return &MockOAuth2{}
}

func (m *MockOAuth2) Exchange(
	ctx context.Context, code string, opts ...oauth2.AuthCodeOption,
) (*oauth2.Token, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code, opts...)
	}

	return &oauth2.Token{AccessToken: "mock-access-token"}, nil
}

func (m *MockOAuth2) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state, opts...)
	}

	return "https://goteamup.com/api/auth/authorize?state=" + state
}
