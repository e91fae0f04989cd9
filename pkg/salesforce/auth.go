package salesforce

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"intent-gateway/pkg/log"
)

// Authenticator obtains and caches a Salesforce session. Reads are concurrent;
// a refresh is performed by one caller while the others wait for its result.
type Authenticator struct {
	oauth      *oauth2.Config
	username   string
	password   string
	httpClient *http.Client
	store      SessionStore
	ttl        time.Duration
	l          log.Logger
	now        func() time.Time

	mu      sync.RWMutex
	session *Session
	group   singleflight.Group
}

// NewAuthenticator builds an authenticator. store may be nil.
func NewAuthenticator(cfg Config, store SessionStore, l log.Logger) (*Authenticator, error) {
	if cfg.Domain == "" || cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	return &Authenticator{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  strings.TrimSuffix(cfg.Domain, "/") + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: cfg.HTTPClient,
		store:      store,
		ttl:        cfg.SessionTTL,
		l:          l,
		now:        time.Now,
	}, nil
}

// Session returns the cached session, authenticating if there is none.
func (a *Authenticator) Session(ctx context.Context) (*Session, error) {
	a.mu.RLock()
	sess := a.session
	a.mu.RUnlock()
	if sess != nil {
		return sess, nil
	}

	v, err, _ := a.group.Do(sessionKey, func() (any, error) {
		a.mu.RLock()
		cached := a.session
		a.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		// Detached from the caller: every waiter shares this refresh.
		fresh, err := a.refresh(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		a.mu.Lock()
		a.session = fresh
		a.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Invalidate drops the cached session if it is still stale. A session that
// was already replaced by a concurrent refresh is left alone.
func (a *Authenticator) Invalidate(ctx context.Context, stale *Session) {
	a.mu.Lock()
	dropped := a.session != nil && a.session == stale
	if dropped {
		a.session = nil
	}
	a.mu.Unlock()

	if !dropped {
		return
	}

	a.l.Info(ctx, "salesforce session invalidated")
	if a.store != nil {
		if err := a.store.Delete(ctx); err != nil {
			a.l.Warnf(ctx, "salesforce.Invalidate.store.Delete: %v", err)
		}
	}
}

// refresh loads a shared session from the store, or logs in.
func (a *Authenticator) refresh(ctx context.Context) (*Session, error) {
	if a.store != nil {
		sess, err := a.store.Load(ctx)
		if err != nil {
			a.l.Warnf(ctx, "salesforce.refresh.store.Load: %v", err)
		} else if sess != nil {
			a.l.Debug(ctx, "using stored salesforce session")
			return sess, nil
		}
	}

	sess, err := a.login(ctx)
	if err != nil {
		return nil, err
	}

	if a.store != nil {
		if err := a.store.Save(ctx, sess, a.ttl); err != nil {
			a.l.Warnf(ctx, "salesforce.refresh.store.Save: %v", err)
		}
	}
	return sess, nil
}

func (a *Authenticator) login(ctx context.Context) (*Session, error) {
	a.l.Info(ctx, "requesting new salesforce session")

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	tok, err := a.oauth.PasswordCredentialsToken(ctx, a.username, a.password)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.ErrorCode != "" {
			return nil, &AuthError{Err: fmt.Errorf("%s: %s", re.ErrorCode, re.ErrorDescription)}
		}
		return nil, &AuthError{Err: err}
	}

	instanceURL, _ := tok.Extra("instance_url").(string)
	if tok.AccessToken == "" || instanceURL == "" {
		return nil, &AuthError{Err: errors.New("token response missing access_token or instance_url")}
	}

	return &Session{
		AccessToken: tok.AccessToken,
		InstanceURL: strings.TrimSuffix(instanceURL, "/"),
		IssuedAt:    a.now(),
	}, nil
}
