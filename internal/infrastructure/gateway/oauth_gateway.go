// Package gateway holds the client for the external OAuth2 token
// provider. The provider's error taxonomy is not reinterpreted here:
// whatever status and body it answers with travel back to the caller.
package gateway

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// OAuthGateway implements domain.TokenGateway over HTTP form posts.
type OAuthGateway struct {
	httpClient   *http.Client
	baseURL      string
	tokenPath    string
	revokePath   string
	clientID     string
	clientSecret string
}

// Options configures the OAuth gateway.
type Options struct {
	BaseURL      string
	TokenPath    string
	RevokePath   string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// NewOAuthGateway creates a new token provider client
func NewOAuthGateway(opts Options) domain.TokenGateway {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	return &OAuthGateway{
		httpClient:   &http.Client{Timeout: opts.Timeout},
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		tokenPath:    opts.TokenPath,
		revokePath:   opts.RevokePath,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
	}
}

// IssueToken implements domain.TokenGateway using the password grant
func (g *OAuthGateway) IssueToken(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
	form := g.form()
	form.Set("grant_type", "password")
	form.Set("username", taxID)
	form.Set("password", password)
	return g.post(ctx, "issue", g.tokenPath, form)
}

// RefreshToken implements domain.TokenGateway using the refresh grant
func (g *OAuthGateway) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenReply, error) {
	form := g.form()
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return g.post(ctx, "refresh", g.tokenPath, form)
}

// RevokeToken implements domain.TokenGateway
func (g *OAuthGateway) RevokeToken(ctx context.Context, token string) (*domain.TokenReply, error) {
	form := g.form()
	form.Set("token", token)
	return g.post(ctx, "revoke", g.revokePath, form)
}

func (g *OAuthGateway) form() url.Values {
	form := url.Values{}
	form.Set("client_id", g.clientID)
	form.Set("client_secret", g.clientSecret)
	return form
}

// post performs one blocking round-trip. No retries: a transport failure
// surfaces immediately as a GatewayError.
func (g *OAuthGateway) post(ctx context.Context, op, path string, form url.Values) (*domain.TokenReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: err}
	}

	return &domain.TokenReply{StatusCode: resp.StatusCode, Body: body}, nil
}
