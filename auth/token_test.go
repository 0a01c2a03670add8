package auth

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// signedIDToken builds a token whose exp claim is readable without
// verification, which is all the store ever does with it.
func signedIDToken(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp":   exp.Unix(),
		"email": "user@example.com",
	}).SignedString([]byte("test"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Path: filepath.Join(t.TempDir(), "token.json")}
}

func TestSaveTokenRoundTrip(t *testing.T) {
	store := testStore(t)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	id := signedIDToken(t, exp)

	tok := (&oauth2.Token{RefreshToken: "refresh-1"}).WithExtra(url.Values{"id_token": {id}})
	if err := store.SaveToken(tok); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	c, err := store.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.IDToken != id {
		t.Errorf("IDToken = %q want the saved one", c.IDToken)
	}
	if c.RefreshToken != "refresh-1" {
		t.Errorf("RefreshToken = %q want refresh-1", c.RefreshToken)
	}
	if !c.Expiry.Equal(exp) {
		t.Errorf("Expiry = %v want %v (from the exp claim)", c.Expiry, exp)
	}
}

func TestSaveTokenWithoutIdentity(t *testing.T) {
	store := testStore(t)
	if err := store.SaveToken(&oauth2.Token{AccessToken: "opaque"}); err == nil {
		t.Fatal("expected an error for a token with no id_token extra")
	}
}

func TestSourceFreshToken(t *testing.T) {
	store := testStore(t)
	id := signedIDToken(t, time.Now().Add(time.Hour))
	tok := (&oauth2.Token{}).WithExtra(url.Values{"id_token": {id}})
	if err := store.SaveToken(tok); err != nil {
		t.Fatal(err)
	}

	got, err := NewSource(store, nil).Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if got != id {
		t.Errorf("Token() = %q want the stored identity token", got)
	}
}

func TestSourceExpiredWithoutRefresh(t *testing.T) {
	store := testStore(t)
	id := signedIDToken(t, time.Now().Add(-time.Hour))
	tok := (&oauth2.Token{}).WithExtra(url.Values{"id_token": {id}})
	if err := store.SaveToken(tok); err != nil {
		t.Fatal(err)
	}

	_, err := NewSource(store, nil).Token()
	if err == nil {
		t.Fatal("expected an error for an expired token with no refresh token")
	}
	if !strings.Contains(err.Error(), "fv login") {
		t.Errorf("err = %v want a hint to run 'fv login'", err)
	}
}

func TestSourceNoSavedToken(t *testing.T) {
	store := testStore(t)
	_, err := NewSource(store, nil).Token()
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("err = %v want ErrNoToken", err)
	}
}
