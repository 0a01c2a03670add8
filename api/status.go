package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// The status payload has no stable schema: the backend flattens a saved
// snapshot, a live computation, or a wrapped {status: ...} depending on the
// endpoint, and has drifted before. Instead of a struct decode that fails on
// any drift, the few fields actually read are plucked with jsonpath and
// anything missing degrades to an absent value.

// Status returns the saved portfolio status snapshot.
func (c *Client) Status(ctx context.Context, portfolio string) (*Status, error) {
	path := fmt.Sprintf("/api/portfolio/%s/status", url.PathEscape(portfolio))
	return c.status(ctx, path)
}

// LiveStatus recomputes the portfolio status from current market prices.
func (c *Client) LiveStatus(ctx context.Context, portfolio string) (*Status, error) {
	path := fmt.Sprintf("/api/portfolio/%s/status/live", url.PathEscape(portfolio))
	return c.status(ctx, path)
}

func (c *Client) status(ctx context.Context, path string) (*Status, error) {
	var jobj any
	if err := c.getJSON(ctx, path, nil, true, &jobj); err != nil {
		return nil, err
	}
	// unwrap the {status: ...} variant
	if inner, err := jsonpath.Get("$.status", jobj); err == nil {
		if m, ok := inner.(map[string]any); ok {
			if _, wrapped := m["holdings"]; wrapped {
				jobj = inner
			}
		}
	}

	status := &Status{}
	if v, ok := pluckFloat(jobj, "$.total_value"); ok {
		status.TotalValue = v
	}
	if v, ok := pluckString(jobj, "$.last_updated"); ok {
		status.LastUpdated = v
	}

	jholdings, err := jsonpath.Get("$.holdings[*]", jobj)
	if err != nil {
		// no holdings key: an empty status is still meaningful
		return status, nil
	}
	jlist, ok := jholdings.([]any)
	if !ok {
		return status, nil
	}
	for _, jh := range jlist {
		h := Holding{}
		if v, ok := pluckString(jh, "$.ticker"); ok {
			h.Ticker = v
		}
		h.Quantity = pluckOptional(jh, "$.quantity")
		h.Price = pluckOptional(jh, "$.price")
		h.Value = pluckOptional(jh, "$.value")
		status.Holdings = append(status.Holdings, h)
	}
	return status, nil
}

func pluckFloat(jobj any, path string) (float64, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, false
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, ok := jval.(float64)
	return v, ok
}

func pluckOptional(jobj any, path string) *float64 {
	v, ok := pluckFloat(jobj, path)
	if !ok {
		return nil
	}
	return &v
}

func pluckString(jobj any, path string) (string, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", false
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	return s, ok
}
