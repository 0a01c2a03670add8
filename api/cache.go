package api

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// diskCache implements a simple disk cache for HTTP responses.
//
// Only unauthenticated GETs are cached: history endpoints return the same
// payload all day, while authenticated responses carry per-user data that
// must not land in the shared tmp dir. The transactions listing is never
// cached, and every successful write through this transport advances an
// epoch that is part of each key, so histories cached before an add or a
// delete expire with the write instead of at midnight.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if !cacheable(req) {
		resp, err := c.base.RoundTrip(req)
		if err == nil && resp.StatusCode < 300 && mutates(req.Method) {
			c.bumpEpoch()
		}
		return resp, err
	}

	// the key is unique per day and per write epoch.
	key := fmt.Sprintf("%s %s %s %s", time.Now().Format("2006-01-02"), c.epoch(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched", "method", resp.Request.Method, "host", resp.Request.URL.Host, "path", resp.Request.URL.Path, "status", resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		slog.Debug("cache write err (ignored)", "err", err)
	}
	return resp, nil
}

// cacheable reports whether the response to req may be served from disk.
// The transactions listing reflects every write immediately and is excluded.
func cacheable(req *http.Request) bool {
	if req.Method != http.MethodGet || req.Header.Get("Authorization") != "" {
		return false
	}
	return !strings.HasSuffix(req.URL.Path, "/transactions")
}

func mutates(method string) bool {
	return method == http.MethodPost || method == http.MethodDelete
}

func epochFile() string { return filepath.Join(os.TempDir(), "fv-cache-epoch") }

// epoch returns the current cache generation nonce, "0" before any write.
func (c *diskCache) epoch() string {
	b, err := os.ReadFile(epochFile())
	if err != nil {
		return "0"
	}
	return string(bytes.TrimSpace(b))
}

func (c *diskCache) bumpEpoch() {
	if err := os.WriteFile(epochFile(), fmt.Appendf(nil, "%d", time.Now().UnixNano()), 0644); err != nil {
		slog.Debug("cache epoch write err (ignored)", "err", err)
	}
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(os.TempDir(), key))
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// newDailyCachingClient returns a client whose idempotent requests are cached
// on disk with a daily expiry.
func newDailyCachingClient() *http.Client {
	return &http.Client{Transport: &diskCache{http.DefaultTransport}}
}
