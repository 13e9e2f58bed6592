package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mygramapp/mygram/internal/mygram/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// googleUserInfoURL is the OpenID Connect userinfo endpoint.
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	// redirectPostMessage is the marker Google expects when the
	// authorization code was obtained via the browser popup flow.
	redirectPostMessage = "postmessage"

	// DefaultExchangeTimeout bounds the full exchange round trip. The
	// outbound calls otherwise block a request goroutine indefinitely.
	DefaultExchangeTimeout = 10 * time.Second
)

// GoogleExchanger trades an authorization code for a verified identity:
// one POST to the token endpoint, one GET to the userinfo endpoint.
// No retries - authorization codes are single-use and a second attempt
// would fail regardless.
type GoogleExchanger struct {
	ClientID     string
	ClientSecret string

	// Endpoint and UserInfoURL default to Google's; tests point them at a
	// local server.
	Endpoint    oauth2.Endpoint
	UserInfoURL string

	// Timeout bounds the whole exchange. Zero means DefaultExchangeTimeout.
	Timeout time.Duration

	// HTTPClient overrides the client used for both calls (optional).
	HTTPClient *http.Client
}

// Exchange redeems the authorization code and fetches the caller's profile.
// Every upstream failure surfaces as ErrUpstreamAuth; the underlying cause
// is attached for logs, never for responses.
func (g *GoogleExchanger) Exchange(ctx context.Context, code string) (domain.Identity, error) {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultExchangeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if g.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, g.HTTPClient)
	}

	endpoint := g.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	cfg := &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  redirectPostMessage,
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: token exchange: %v", ErrUpstreamAuth, err)
	}
	if token.AccessToken == "" {
		return domain.Identity{}, fmt.Errorf("%w: no access token in response", ErrUpstreamAuth)
	}

	userInfoURL := g.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = googleUserInfoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: build userinfo request: %v", ErrUpstreamAuth, err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: userinfo fetch: %v", ErrUpstreamAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Identity{}, fmt.Errorf("%w: userinfo status %d", ErrUpstreamAuth, resp.StatusCode)
	}

	var profile struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode userinfo: %v", ErrUpstreamAuth, err)
	}
	if profile.Email == "" {
		return domain.Identity{}, fmt.Errorf("%w: userinfo missing email", ErrUpstreamAuth)
	}

	return domain.Identity{Email: profile.Email, Name: profile.Name}, nil
}
