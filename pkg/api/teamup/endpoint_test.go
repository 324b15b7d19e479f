package teamup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/api"
	"github.com/strongerfit/teamup-relay/pkg/testutil"
)

func Test_Endpoint_CreateCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		require.Equal(t, "biz-1", r.Header.Get("Business-ID"))
		require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Ann", body["first_name"])
		require.Equal(t, "Lee", body["last_name"])
		require.Equal(t, "ann@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cust-1", "email": "ann@example.com"}`))
	}))
	defer server.Close()

	endpoint := New(config.TeamUpConfigs{APIURL: server.URL, BusinessID: "biz-1"})
	customer, err := endpoint.CreateCustomer(testutil.NewMockContext(), "access-token", Customer{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})
	require.NoError(t, err)

	id, err := customer.GetString("id")
	require.NoError(t, err)
	require.Equal(t, "cust-1", id)
}

func Test_Endpoint_FindCustomersByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		require.Equal(t, "ann@example.com", r.URL.Query().Get("email"))
		require.Equal(t, "biz-1", r.Header.Get("Business-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "cust-1"}, {"id": "cust-2"}]`))
	}))
	defer server.Close()

	endpoint := New(config.TeamUpConfigs{APIURL: server.URL, BusinessID: "biz-1"})
	customers, err := endpoint.FindCustomersByEmail(
		testutil.NewMockContext(), "access-token", "ann@example.com")
	require.NoError(t, err)
	require.Len(t, customers, 2)

	id, err := customers[0].GetString("id")
	require.NoError(t, err)
	require.Equal(t, "cust-1", id)
}

func Test_Endpoint_CreateMembership(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customer-memberships", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "cust-1", body["customer_id"])
		require.Equal(t, "plan-1", body["membership_id"])
		require.Equal(t, "2026-08-28", body["start_date"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "m-1"}`))
	}))
	defer server.Close()

	endpoint := New(config.TeamUpConfigs{APIURL: server.URL, BusinessID: "biz-1"})
	membership, err := endpoint.CreateMembership(testutil.NewMockContext(), "access-token", Membership{
		CustomerID:   "cust-1",
		MembershipID: "plan-1",
		StartDate:    "2026-08-28",
	})
	require.NoError(t, err)

	id, err := membership.GetString("id")
	require.NoError(t, err)
	require.Equal(t, "m-1", id)
}

func Test_Endpoint_FindCustomersByEmail_EmptyBody(t *testing.T) {
	generator := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{Code: http.StatusOK, Body: api.JSON{}}, nil
			},
		},
	}

	endpoint := &Endpoint{BusinessID: "biz-1", apiGenerator: generator}
	customers, err := endpoint.FindCustomersByEmail(
		testutil.NewMockContext(), "access-token", "ann@example.com")
	require.NoError(t, err)
	require.Empty(t, customers)
}

func Test_Endpoint_CreateCustomer_UnexpectedBody(t *testing.T) {
	generator := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				// Some proxies answer errors with an HTML page and status 200.
				return &api.Response{
					Code:    http.StatusOK,
					RawBody: []byte("<html>gateway timeout</html>"),
					Body:    "<html>gateway timeout</html>",
				}, nil
			},
		},
	}

	endpoint := &Endpoint{BusinessID: "biz-1", apiGenerator: generator}
	_, err := endpoint.CreateCustomer(testutil.NewMockContext(), "access-token", Customer{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})
	require.EqualError(t, err, "invalid body type")
}

func Test_Endpoint_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "email already taken"}`))
	}))
	defer server.Close()

	endpoint := New(config.TeamUpConfigs{APIURL: server.URL, BusinessID: "biz-1"})
	_, err := endpoint.CreateCustomer(testutil.NewMockContext(), "access-token", Customer{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})

	var remoteErr *api.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, http.StatusUnprocessableEntity, remoteErr.Status)
	require.Equal(t, "email already taken", remoteErr.Message)
}
