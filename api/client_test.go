package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticToken string

func (s staticToken) Token() (string, error) {
	if s == "" {
		return "", errors.New("no token on file")
	}
	return string(s), nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := New(server.URL, tokens)
	if err != nil {
		t.Fatalf("New(%q): %v", server.URL, err)
	}
	return c.WithHTTPClient(server.Client())
}

func TestPortfolios(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/portfolios" {
			t.Errorf("path = %q want /api/portfolios", r.URL.Path)
		}
		w.Write([]byte(`{"portfolios": ["main", "crypto"]}`))
	}, nil)

	got, err := c.Portfolios(context.Background())
	if err != nil {
		t.Fatalf("Portfolios: %v", err)
	}
	if len(got) != 2 || got[0] != "main" || got[1] != "crypto" {
		t.Errorf("Portfolios = %v want [main crypto]", got)
	}
}

func TestPerformanceLenientDecoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"date": "2024-01-01", "value": 900, "abs_value": 1000},
			{"date": "garbage",    "value": 1,   "abs_value": 2},
			{"date": "2024-01-02", "value": "oops", "abs_value": 1010}
		]`))
	}, nil)

	points, err := c.Performance(context.Background(), "main")
	if err != nil {
		t.Fatalf("Performance: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("len(points) = %d want 3 (bad points survive decoding)", len(points))
	}
	if points[2].Net != nil {
		t.Errorf("non-numeric value = %v want absent", *points[2].Net)
	}
	if points[2].Abs == nil || *points[2].Abs != 1010 {
		t.Errorf("abs_value = %v want 1010", points[2].Abs)
	}

	// Conversion to a series drops the unparseable date, nothing else.
	s := Series("main", points)
	if s.Len() != 2 {
		t.Errorf("Series.Len() = %d want 2 (bad date dropped at point level)", s.Len())
	}
}

func TestBearerTokenSent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q want %q", got, "Bearer tok123")
		}
		w.Write([]byte(`{}`))
	}, staticToken("tok123"))

	if _, err := c.Returns(context.Background(), "main"); err != nil {
		t.Fatalf("Returns: %v", err)
	}
}

func TestTickerInfoAuthenticated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q want %q", got, "Bearer tok123")
		}
		w.Write([]byte(`{"symbol": "AAPL", "longName": "Apple Inc."}`))
	}, staticToken("tok123"))

	info, err := c.TickerInfo(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("TickerInfo: %v", err)
	}
	if info["longName"] != "Apple Inc." {
		t.Errorf("longName = %v want Apple Inc.", info["longName"])
	}

	// and without a token the request must not reach the backend at all
	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("ticker lookup reached the network without a token")
	}, nil)
	if _, err := c.TickerInfo(context.Background(), "AAPL"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("err = %v want ErrNotAuthenticated", err)
	}
}

func TestNotAuthenticatedBeforeRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the network without a token")
	}, nil)

	_, err := c.Returns(context.Background(), "main")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("err = %v want ErrNotAuthenticated", err)
	}

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the network with an empty token source")
	}, staticToken(""))
	_, err = c.Returns(context.Background(), "main")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("err = %v want ErrNotAuthenticated", err)
	}
}

func TestVolatility(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/portfolio/main/volatility":
			w.Write([]byte(`{"volatility": 23.5}`))
		case "/api/portfolio/main/tickers/volatility":
			w.Write([]byte(`{"tickers_volatility": {"AAPL": 31.2, "CASH": null}}`))
		case "/api/portfolio/main/volatility/1d":
			w.Write([]byte(`{"volatility_1d": [null, 12.5, 13.0]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}, nil)

	ctx := context.Background()
	overall, err := c.Volatility(ctx, "main")
	if err != nil {
		t.Fatalf("Volatility: %v", err)
	}
	if overall == nil || *overall != 23.5 {
		t.Errorf("Volatility = %v want 23.5", overall)
	}

	byTicker, err := c.TickerVolatility(ctx, "main")
	if err != nil {
		t.Fatalf("TickerVolatility: %v", err)
	}
	if v := byTicker["AAPL"]; v == nil || *v != 31.2 {
		t.Errorf("AAPL volatility = %v want 31.2", v)
	}
	if v, ok := byTicker["CASH"]; !ok || v != nil {
		t.Errorf("CASH volatility = %v (present %v) want present and absent-valued", v, ok)
	}

	daily, err := c.DailyVolatility(ctx, "main")
	if err != nil {
		t.Fatalf("DailyVolatility: %v", err)
	}
	if len(daily) != 3 || daily[0] != nil || daily[2] == nil || *daily[2] != 13.0 {
		t.Errorf("DailyVolatility = %v want [nil 12.5 13]", daily)
	}
}

func TestTickersReport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/portfolio/main/tickers/report" {
			t.Errorf("request = %s %s want POST /api/portfolio/main/tickers/report", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q want %q", got, "Bearer tok")
		}
		var body struct {
			Tickers []string `json:"tickers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Tickers) != 2 || body.Tickers[0] != "AAPL" || body.Tickers[1] != "MSFT" {
			t.Errorf("tickers = %v want [AAPL MSFT]", body.Tickers)
		}
		w.Write([]byte(`{"portfolio": "main", "tickers": ["AAPL", "MSFT"], "report": "# Compared"}`))
	}, staticToken("tok"))

	report, err := c.TickersReport(context.Background(), "main", []string{"AAPL", "MSFT"})
	if err != nil {
		t.Fatalf("TickersReport: %v", err)
	}
	if report.Markdown != "# Compared" {
		t.Errorf("Markdown = %q want %q", report.Markdown, "# Compared")
	}
}

func TestBackendError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "No status found."}`))
	}, staticToken("tok"))

	_, err := c.Status(context.Background(), "main")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v want *api.Error", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "No status found." {
		t.Errorf("Error = %+v want 404 / backend message", apiErr)
	}
}

func TestStatusShapes(t *testing.T) {
	flat := `{"holdings": [{"ticker": "AAPL", "quantity": 2, "price": 100, "value": 200}], "total_value": 200, "last_updated": "2024-06-01"}`
	wrapped := `{"portfolio": "main", "status": ` + flat + `}`

	for name, payload := range map[string]string{"flat": flat, "wrapped": wrapped} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}, staticToken("tok"))

			status, err := c.Status(context.Background(), "main")
			if err != nil {
				t.Fatalf("Status: %v", err)
			}
			if status.TotalValue != 200 {
				t.Errorf("TotalValue = %v want 200", status.TotalValue)
			}
			if len(status.Holdings) != 1 {
				t.Fatalf("len(Holdings) = %d want 1", len(status.Holdings))
			}
			h := status.Holdings[0]
			if h.Ticker != "AAPL" || h.Quantity == nil || *h.Quantity != 2 || h.Value == nil || *h.Value != 200 {
				t.Errorf("Holding = %+v want AAPL/2/200", h)
			}
		})
	}
}

func TestStatusMissingHoldings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_value": 0}`))
	}, staticToken("tok"))

	status, err := c.Status(context.Background(), "main")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(status.Holdings) != 0 {
		t.Errorf("Holdings = %v want empty", status.Holdings)
	}
}
