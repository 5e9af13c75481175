package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bassamadnan/gmailfetch/config"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthError reports that no usable credential could be obtained.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Manager loads, refreshes or interactively obtains the credential, and keeps the token
// cache file current.
type Manager struct {
	cfg   config.Auth
	store *TokenStore

	// OpenURL is handed the authorization URL during the interactive flow.
	OpenURL func(url string) error
	// Now is the clock used for expiry checks.
	Now func() time.Time
}

// NewManager creates a Manager for the given configuration.
func NewManager(cfg config.Auth) *Manager {
	return &Manager{
		cfg:     cfg,
		store:   NewTokenStore(cfg.TokenFile),
		OpenURL: printURL,
		Now:     time.Now,
	}
}

// Credential returns a valid credential, refreshing or authorizing as needed. Any new or
// refreshed credential is written back to the token cache.
func (m *Manager) Credential(ctx context.Context) (*Credential, error) {
	logger := log.With().Str("module", "auth").Str("path", m.store.Path()).Logger()

	cred, err := m.store.Load(m.cfg.Scopes)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Msg("Ignoring unreadable token cache")
		}
		cred = nil
	}

	now := m.Now()
	if cred.Valid(now) {
		logger.Debug().Time("expiry", cred.Expiry).Msg("Using cached credential")
		return cred, nil
	}

	if cred.CanRefresh(now) {
		logger.Debug().Msg("Refreshing expired credential")
		cred, err = m.refresh(ctx, cred)
		if err != nil {
			return nil, &AuthError{Op: "refresh", Err: err}
		}
	} else {
		logger.Info().Msg("Starting interactive authorization")
		cred, err = m.authorize(ctx)
		if err != nil {
			return nil, &AuthError{Op: "authorize", Err: err}
		}
	}

	if err := m.store.Save(cred); err != nil {
		return nil, &AuthError{Op: "save", Err: err}
	}
	logger.Debug().Msg("Saved credential")
	return cred, nil
}

// HTTPClient returns an HTTP client that authorizes requests with the credential. Tokens
// the client refreshes on its own are written back to the token cache.
func (m *Manager) HTTPClient(ctx context.Context) (*http.Client, error) {
	cred, err := m.Credential(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := m.oauthConfig(cred)
	if err != nil {
		return nil, &AuthError{Op: "refresh", Err: err}
	}
	tok := cred.OAuth2Token()
	ts := &savingTokenSource{
		src:          cfg.TokenSource(ctx, tok),
		cfg:          cfg,
		store:        m.store,
		last:         tok.AccessToken,
		refreshToken: tok.RefreshToken,
	}
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(tok, ts)), nil
}

// oauthConfig returns the client configuration for refreshing cred, taking the client
// identity from the client secret file when the cache has none.
func (m *Manager) oauthConfig(cred *Credential) (*oauth2.Config, error) {
	cfg := cred.oauthConfig()
	if cfg.ClientID != "" || cred.RefreshToken == "" {
		return cfg, nil
	}
	secrets, err := m.clientConfig()
	if err != nil {
		return nil, err
	}
	cfg.ClientID = secrets.ClientID
	cfg.ClientSecret = secrets.ClientSecret
	cfg.Endpoint = secrets.Endpoint
	return cfg, nil
}

func (m *Manager) refresh(ctx context.Context, cred *Credential) (*Credential, error) {
	cfg, err := m.oauthConfig(cred)
	if err != nil {
		return nil, err
	}
	tok, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.RefreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}
	out := newCredential(tok, cfg)
	if out.RefreshToken == "" {
		out.RefreshToken = cred.RefreshToken
	}
	return out, nil
}

// clientConfig reads the OAuth client secret file.
func (m *Manager) clientConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(m.cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}
	c, err := google.ConfigFromJSON(b, m.cfg.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	return c, nil
}

// savingTokenSource saves every new access token from src to the token cache.
type savingTokenSource struct {
	src   oauth2.TokenSource
	cfg   *oauth2.Config
	store *TokenStore

	mu           sync.Mutex
	last         string
	refreshToken string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken == s.last {
		return tok, nil
	}
	s.last = tok.AccessToken
	cred := newCredential(tok, s.cfg)
	if cred.RefreshToken == "" {
		cred.RefreshToken = s.refreshToken
	}
	s.refreshToken = cred.RefreshToken
	if err := s.store.Save(cred); err != nil {
		log.Warn().Str("module", "auth").Err(err).Msg("Failed to save refreshed credential")
	} else {
		log.Debug().Str("module", "auth").Msg("Saved refreshed credential")
	}
	return tok, nil
}
