// Package auth obtains and stores the Google identity token the backend
// expects as a bearer credential.
//
// A login runs the loopback OAuth flow once and writes the resulting token
// to a file; later commands read that file and refresh the identity token
// through the saved refresh token when it has expired.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ErrNoToken reports that no saved credentials exist yet.
var ErrNoToken = errors.New("no saved credentials")

// credentials is what the token file holds. oauth2.Token does not marshal
// the id_token extra, so it is kept as an explicit field.
type credentials struct {
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// Store reads and writes the token file.
type Store struct {
	Path string
}

func (s Store) load() (*credentials, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoToken
	}
	if err != nil {
		return nil, err
	}
	var c credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("token file %s: %w", s.Path, err)
	}
	if c.IDToken == "" {
		return nil, fmt.Errorf("token file %s: missing id_token", s.Path)
	}
	return &c, nil
}

func (s Store) save(c *credentials) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, b, 0600)
}

// SaveToken persists the token obtained from an OAuth exchange. The identity
// token travels in the "id_token" extra of the oauth2 token.
func (s Store) SaveToken(tok *oauth2.Token) error {
	id, _ := tok.Extra("id_token").(string)
	if id == "" {
		return errors.New("authorization response carried no identity token")
	}
	return s.save(&credentials{
		IDToken:      id,
		RefreshToken: tok.RefreshToken,
		Expiry:       expiryOf(id),
	})
}

// expiryOf reads the exp claim without verifying the signature. The backend
// verifies tokens, this side only needs to know when to refresh.
func expiryOf(idToken string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Source hands out a valid identity token, refreshing through the OAuth
// config when the saved one has expired. A nil Config disables refresh.
type Source struct {
	Store  Store
	Config *oauth2.Config

	now func() time.Time // test hook
}

func NewSource(store Store, cfg *oauth2.Config) *Source {
	return &Source{Store: store, Config: cfg, now: time.Now}
}

// Token returns the bearer token for API requests.
func (s *Source) Token() (string, error) {
	c, err := s.Store.load()
	if err != nil {
		return "", err
	}
	// a minute of slack so a token does not expire mid-request
	if c.Expiry.IsZero() || s.now().Add(time.Minute).Before(c.Expiry) {
		return c.IDToken, nil
	}
	return s.refresh(c)
}

func (s *Source) refresh(c *credentials) (string, error) {
	if s.Config == nil || c.RefreshToken == "" {
		return "", errors.New("saved credentials expired: run 'fv login' again")
	}
	tok, err := s.Config.TokenSource(context.Background(), &oauth2.Token{RefreshToken: c.RefreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("refreshing credentials: %w", err)
	}
	id, _ := tok.Extra("id_token").(string)
	if id == "" {
		return "", errors.New("refresh response carried no identity token")
	}
	c.IDToken = id
	c.Expiry = expiryOf(id)
	if tok.RefreshToken != "" {
		c.RefreshToken = tok.RefreshToken
	}
	if err := s.Store.save(c); err != nil {
		return "", err
	}
	return id, nil
}
