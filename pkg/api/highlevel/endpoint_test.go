package highlevel

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongerfit/teamup-relay/config"
	"github.com/strongerfit/teamup-relay/pkg/api"
	"github.com/strongerfit/teamup-relay/pkg/testutil"
)

func Test_Endpoint_CreateContact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/contacts", r.URL.Path)
		require.Equal(t, "Bearer private-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Ann", body["firstName"])
		require.Equal(t, "Lee", body["lastName"])
		require.Equal(t, "ann@example.com", body["email"])

		// The phone field is always present, even when empty.
		phone, ok := body["phone"]
		require.True(t, ok)
		require.Equal(t, "", phone)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "contact-1"}`))
	}))
	defer server.Close()

	endpoint := New(config.HighLevelConfigs{APIURL: server.URL, PrivateToken: "private-token"})
	contact, err := endpoint.CreateContact(testutil.NewMockContext(), Contact{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})
	require.NoError(t, err)

	id, err := contact.GetString("id")
	require.NoError(t, err)
	require.Equal(t, "contact-1", id)
}

func Test_Endpoint_CreateContact_NoRetryOnFailure(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "something broke"}`))
	}))
	defer server.Close()

	endpoint := New(config.HighLevelConfigs{APIURL: server.URL, PrivateToken: "private-token"})
	_, err := endpoint.CreateContact(testutil.NewMockContext(), Contact{Email: "ann@example.com"})

	var remoteErr *api.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	require.Equal(t, "something broke", remoteErr.Message)
	require.Equal(t, 1, calls)
}
