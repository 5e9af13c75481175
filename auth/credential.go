// Package auth obtains and caches the OAuth2 credential used to talk to the Gmail API.
package auth

import (
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// expiryDelta matches the skew oauth2 applies before it considers a token stale.
const expiryDelta = 10 * time.Second

// Credential is the cached authorized-user token. It carries the OAuth client identity so
// a refresh does not need the client secret file.
type Credential struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenURI     string    `json:"token_uri,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	ClientSecret string    `json:"client_secret,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
	Expiry       time.Time `json:"expiry,omitzero"`
}

// Expired reports whether the credential has an expiry that has passed.
func (c *Credential) Expired(now time.Time) bool {
	if c.Expiry.IsZero() {
		return false
	}
	return !now.Before(c.Expiry.Add(-expiryDelta))
}

// Valid reports whether the credential can be used without refreshing.
func (c *Credential) Valid(now time.Time) bool {
	return c != nil && c.Token != "" && !c.Expired(now)
}

// CanRefresh reports whether a silent refresh may be attempted.
func (c *Credential) CanRefresh(now time.Time) bool {
	return c != nil && c.Expired(now) && c.RefreshToken != ""
}

// OAuth2Token converts the credential into the oauth2 token representation.
func (c *Credential) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.Token,
		TokenType:    "Bearer",
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}
}

// oauthConfig builds the client configuration needed to refresh this credential.
func (c *Credential) oauthConfig() *oauth2.Config {
	tokenURL := c.TokenURI
	if tokenURL == "" {
		tokenURL = google.Endpoint.TokenURL
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Scopes:       c.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  google.Endpoint.AuthURL,
			TokenURL: tokenURL,
		},
	}
}

func newCredential(tok *oauth2.Token, cfg *oauth2.Config) *Credential {
	return &Credential{
		Token:        tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenURI:     cfg.Endpoint.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       append([]string(nil), cfg.Scopes...),
		Expiry:       tok.Expiry,
	}
}
