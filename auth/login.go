package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ConfigFromEnv builds the OAuth config from GOOGLE_OAUTH_CLIENT_JSON or
// GOOGLE_OAUTH_CLIENT_FILE. The scopes only request identity, the client
// never touches Google APIs itself.
func ConfigFromEnv() (*oauth2.Config, error) {
	var b []byte
	var err error
	switch {
	case os.Getenv("GOOGLE_OAUTH_CLIENT_JSON") != "":
		b = []byte(os.Getenv("GOOGLE_OAUTH_CLIENT_JSON"))
	case os.Getenv("GOOGLE_OAUTH_CLIENT_FILE") != "":
		b, err = os.ReadFile(os.Getenv("GOOGLE_OAUTH_CLIENT_FILE"))
		if err != nil {
			return nil, fmt.Errorf("read client file: %w", err)
		}
	default:
		return nil, errors.New("set GOOGLE_OAUTH_CLIENT_JSON or GOOGLE_OAUTH_CLIENT_FILE")
	}
	return google.ConfigFromJSON(b, "openid", "email")
}

// Login runs the loopback authorization flow: it starts a local redirect
// listener, prints the consent URL, exchanges the returned code and saves
// the token. It blocks until the browser round trip completes or ctx is
// done.
func Login(ctx context.Context, cfg *oauth2.Config, store Store, printf func(format string, a ...any)) error {
	ln, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return fmt.Errorf("start redirect listener: %w", err)
	}
	defer ln.Close()
	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", ln.Addr())

	state := randomState()
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		if errStr := r.URL.Query().Get("error"); errStr != "" {
			http.Error(w, "authorization failed: "+errStr, http.StatusBadRequest)
			errCh <- fmt.Errorf("authorization failed: %s", errStr)
			return
		}
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- errors.New("authorization state mismatch")
			return
		}
		fmt.Fprintln(w, "Signed in. You may close this window and return to the terminal.")
		codeCh <- r.URL.Query().Get("code")
	})}
	go srv.Serve(ln)
	defer srv.Close()

	printf("Open this URL to sign in:\n\n  %s\n\n", cfg.AuthCodeURL(state, oauth2.AccessTypeOffline))

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return errors.New("authorization timed out")
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("token exchange: %w", err)
	}
	if err := store.SaveToken(tok); err != nil {
		return err
	}
	printf("Saved credentials to %s\n", store.Path)
	return nil
}

func randomState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
