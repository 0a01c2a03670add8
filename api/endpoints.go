package api

import (
	"context"
	"fmt"
	"net/url"
)

// Portfolios returns the names of all portfolios known to the backend.
func (c *Client) Portfolios(ctx context.Context) ([]string, error) {
	var payload struct {
		Portfolios []string `json:"portfolios"`
	}
	if err := c.getJSON(ctx, "/api/portfolios", nil, false, &payload); err != nil {
		return nil, err
	}
	return payload.Portfolios, nil
}

// Performance returns the portfolio value history.
func (c *Client) Performance(ctx context.Context, portfolio string) ([]PerformancePoint, error) {
	var points []PerformancePoint
	path := fmt.Sprintf("/api/portfolio/%s/performance", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// TickerPerformance returns the value history of a single ticker within a portfolio.
func (c *Client) TickerPerformance(ctx context.Context, portfolio, ticker string) ([]PerformancePoint, error) {
	var points []PerformancePoint
	path := fmt.Sprintf("/api/portfolio/%s/ticker/%s/performance", url.PathEscape(portfolio), url.PathEscape(ticker))
	if err := c.getJSON(ctx, path, nil, false, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// BenchmarkPerformance returns the history of a benchmark index ticker,
// not tied to any portfolio.
func (c *Client) BenchmarkPerformance(ctx context.Context, ticker string) ([]PerformancePoint, error) {
	var points []PerformancePoint
	path := fmt.Sprintf("/api/benchmark/%s/performance", url.PathEscape(ticker))
	if err := c.getJSON(ctx, path, nil, false, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Transactions lists all transactions of a portfolio.
func (c *Client) Transactions(ctx context.Context, portfolio string) ([]Transaction, error) {
	var payload struct {
		Transactions []Transaction `json:"transactions"`
	}
	path := fmt.Sprintf("/api/portfolio/%s/transactions", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &payload); err != nil {
		return nil, err
	}
	return payload.Transactions, nil
}

// AddTransactions appends transactions to a portfolio and returns the stored
// records, ids filled in.
func (c *Client) AddTransactions(ctx context.Context, portfolio string, txs []Transaction) ([]Transaction, error) {
	var payload struct {
		Transactions []Transaction `json:"transactions"`
	}
	path := fmt.Sprintf("/api/transactions/%s", url.PathEscape(portfolio))
	if err := c.postJSON(ctx, path, nil, false, txs, &payload); err != nil {
		return nil, err
	}
	return payload.Transactions, nil
}

// DeleteTransaction removes a single transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, portfolio string, id int64) error {
	path := fmt.Sprintf("/api/portfolio/%s/transaction/%d", url.PathEscape(portfolio), id)
	return c.deleteJSON(ctx, path, true, nil)
}

// DeletePortfolio removes a whole portfolio and its transactions.
func (c *Client) DeletePortfolio(ctx context.Context, portfolio string) error {
	path := fmt.Sprintf("/api/portfolio/%s", url.PathEscape(portfolio))
	return c.deleteJSON(ctx, path, true, nil)
}

// KPIs returns the dashboard card figures.
func (c *Client) KPIs(ctx context.Context, portfolio string) (*KPIs, error) {
	var payload KPIs
	path := fmt.Sprintf("/api/portfolio/%s/kpis", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Returns lists the portfolio and per-ticker returns for every period the
// backend computes (yesterday, weekly, monthly, three months, year to date).
func (c *Client) Returns(ctx context.Context, portfolio string) (*PeriodReturns, error) {
	var payload PeriodReturns
	path := fmt.Sprintf("/api/portfolio/%s/returns", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, true, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Allocation returns the asset allocation split along the given grouping
// dimension.
func (c *Client) Allocation(ctx context.Context, portfolio, grouping string) ([]AllocationSlice, error) {
	var payload struct {
		Allocation []AllocationSlice `json:"allocation"`
	}
	query := url.Values{}
	if grouping != "" {
		query.Set("grouping", grouping)
	}
	path := fmt.Sprintf("/api/portfolio/%s/allocation", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, query, true, &payload); err != nil {
		return nil, err
	}
	return payload.Allocation, nil
}

// TickerInfo looks up descriptive information for a ticker symbol. The shape
// is provider-defined; callers pluck what they need.
func (c *Client) TickerInfo(ctx context.Context, symbol string) (map[string]any, error) {
	var payload map[string]any
	path := fmt.Sprintf("/api/ticker/%s", url.PathEscape(symbol))
	if err := c.getJSON(ctx, path, nil, true, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Report fetches the AI-generated narrative report for a portfolio. The
// backend caches reports; force regenerates.
func (c *Client) Report(ctx context.Context, portfolio string, force bool) (*Report, error) {
	var payload Report
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	path := fmt.Sprintf("/api/portfolio/%s/report", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, query, true, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TickerReport fetches the AI-generated report for one ticker of a portfolio.
func (c *Client) TickerReport(ctx context.Context, portfolio, ticker string, force bool) (*Report, error) {
	var payload Report
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	path := fmt.Sprintf("/api/portfolio/%s/ticker/%s/report", url.PathEscape(portfolio), url.PathEscape(ticker))
	if err := c.getJSON(ctx, path, query, true, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TickersReport generates one combined narrative report over several tickers
// of a portfolio. The backend requires at least two.
func (c *Client) TickersReport(ctx context.Context, portfolio string, tickers []string) (*Report, error) {
	var payload Report
	body := struct {
		Tickers []string `json:"tickers"`
	}{tickers}
	path := fmt.Sprintf("/api/portfolio/%s/tickers/report", url.PathEscape(portfolio))
	if err := c.postJSON(ctx, path, nil, true, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Volatility returns the annualized volatility of the whole portfolio, or
// nil when the backend cannot compute one.
func (c *Client) Volatility(ctx context.Context, portfolio string) (*float64, error) {
	var payload struct {
		Volatility *float64 `json:"volatility"`
	}
	path := fmt.Sprintf("/api/portfolio/%s/volatility", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &payload); err != nil {
		return nil, err
	}
	return payload.Volatility, nil
}

// DailyVolatility returns the portfolio volatility as a list of daily
// values, oldest first, with nil marking days the backend could not compute.
func (c *Client) DailyVolatility(ctx context.Context, portfolio string) ([]*float64, error) {
	var payload struct {
		Values []*float64 `json:"volatility_1d"`
	}
	path := fmt.Sprintf("/api/portfolio/%s/volatility/1d", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &payload); err != nil {
		return nil, err
	}
	return payload.Values, nil
}

// TickerVolatility returns the annualized volatility per ticker of a portfolio.
func (c *Client) TickerVolatility(ctx context.Context, portfolio string) (map[string]*float64, error) {
	var payload struct {
		Tickers map[string]*float64 `json:"tickers_volatility"`
	}
	path := fmt.Sprintf("/api/portfolio/%s/tickers/volatility", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &payload); err != nil {
		return nil, err
	}
	return payload.Tickers, nil
}

// DailyTickerVolatility returns the daily volatility values per ticker.
func (c *Client) DailyTickerVolatility(ctx context.Context, portfolio string) (map[string][]*float64, error) {
	var payload struct {
		Tickers map[string][]*float64 `json:"tickers_volatility_1d"`
	}
	path := fmt.Sprintf("/api/portfolio/%s/tickers/volatility/1d", url.PathEscape(portfolio))
	if err := c.getJSON(ctx, path, nil, false, &payload); err != nil {
		return nil, err
	}
	return payload.Tickers, nil
}
