package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

func newTestGateway(serverURL string) domain.TokenGateway {
	return NewOAuthGateway(Options{
		BaseURL:      serverURL,
		TokenPath:    "/o/token/",
		RevokePath:   "/o/revoke_token/",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})
}

func TestOAuthGateway_IssueToken(t *testing.T) {
	var gotForm url.Values
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc","expires_in":3600}`))
	}))
	defer server.Close()

	reply, err := newTestGateway(server.URL).IssueToken(context.Background(), "AZ1234567", "Abcdef12")
	require.NoError(t, err)

	assert.Equal(t, "/o/token/", gotPath)
	assert.Equal(t, "password", gotForm.Get("grant_type"))
	assert.Equal(t, "AZ1234567", gotForm.Get("username"))
	assert.Equal(t, "Abcdef12", gotForm.Get("password"))
	assert.Equal(t, "client-id", gotForm.Get("client_id"))
	assert.Equal(t, "client-secret", gotForm.Get("client_secret"))

	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.JSONEq(t, `{"access_token":"abc","expires_in":3600}`, string(reply.Body))
	assert.True(t, reply.OK())
}

func TestOAuthGateway_RefreshToken(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"access_token":"refreshed"}`))
	}))
	defer server.Close()

	reply, err := newTestGateway(server.URL).RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)

	assert.Equal(t, "refresh_token", gotForm.Get("grant_type"))
	assert.Equal(t, "refresh-xyz", gotForm.Get("refresh_token"))
	assert.True(t, reply.OK())
}

func TestOAuthGateway_RevokeToken(t *testing.T) {
	var gotForm url.Values
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	reply, err := newTestGateway(server.URL).RevokeToken(context.Background(), "token-abc")
	require.NoError(t, err)

	assert.Equal(t, "/o/revoke_token/", gotPath)
	assert.Equal(t, "token-abc", gotForm.Get("token"))
	assert.Equal(t, http.StatusOK, reply.StatusCode)
}

func TestOAuthGateway_PassesRemoteErrorsThrough(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"invalid_grant"}`},
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid_client"}`},
		{"unavailable", http.StatusServiceUnavailable, `{"error":"temporarily_unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			reply, err := newTestGateway(server.URL).IssueToken(context.Background(), "AZ1234567", "Abcdef12")
			require.NoError(t, err, "remote HTTP errors are replies, not errors")

			assert.Equal(t, tt.status, reply.StatusCode)
			assert.Equal(t, tt.body, string(reply.Body))
			assert.False(t, reply.OK())
		})
	}
}

func TestOAuthGateway_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := newTestGateway(server.URL).IssueToken(context.Background(), "AZ1234567", "Abcdef12")
	require.Error(t, err)

	var gErr *domain.GatewayError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, "issue", gErr.Op)
}
