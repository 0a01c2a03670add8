package api

import (
	"encoding/json"

	"folioview"
)

// PerformancePoint is one sample of a backend history series.
//
// The backend emits {date, value, abs_value, pct, pct_from_first}; only the
// fields the reconciliation core reads are kept. Decoding is lenient: a
// non-numeric field becomes an absent value and an unparseable date is left
// for Series to drop, so one bad point never fails the payload.
type PerformancePoint struct {
	Date string
	Net  *float64 // "value": magnitude net of contributions
	Abs  *float64 // "abs_value": raw market magnitude
}

func (p *PerformancePoint) UnmarshalJSON(raw []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	p.Date, _ = fields["date"].(string)
	p.Net = numberField(fields, "value")
	p.Abs = numberField(fields, "abs_value")
	return nil
}

func numberField(fields map[string]any, key string) *float64 {
	f, ok := fields[key].(float64)
	if !ok {
		return nil
	}
	return &f
}

// Series converts backend points into a reconciliation series under the given
// stable key. Points with unparseable dates are dropped, a data-quality
// failure local to the point; duplicate dates resolve last-write-wins.
func Series(name string, points []PerformancePoint) *folioview.Series {
	s := folioview.NewSeries(name)
	for _, p := range points {
		on, err := folioview.ParseDate(p.Date)
		if err != nil {
			continue
		}
		s.Append(on, folioview.Sample{Abs: optional(p.Abs), Net: optional(p.Net)})
	}
	return s
}

func optional(f *float64) folioview.Value {
	if f == nil {
		return folioview.Value{}
	}
	return folioview.Some(*f)
}

// Holding is a single asset position within a portfolio.
type Holding struct {
	Ticker   string
	Quantity *float64
	Price    *float64
	Value    *float64
}

// Status is the portfolio status/holdings snapshot.
type Status struct {
	Holdings    []Holding
	TotalValue  float64
	LastUpdated string
}

// Transaction mirrors the backend transaction record.
type Transaction struct {
	ID       int64   `json:"id,omitempty"`
	Date     string  `json:"date"`
	Ticker   string  `json:"ticker"`
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Name     *string `json:"name"`
}

// PeriodReturn is one start/end/percent triple of the returns endpoint.
type PeriodReturn struct {
	StartValue *float64 `json:"start_value"`
	EndValue   *float64 `json:"end_value"`
	ReturnPct  *float64 `json:"return_pct"`
}

// Returns groups the portfolio and per-ticker returns of one period.
type Returns struct {
	Portfolio *PeriodReturn            `json:"portfolio"`
	Tickers   map[string]*PeriodReturn `json:"tickers"`
}

// PeriodReturns is the full returns-by-period payload, keyed the way the
// backend names its periods.
type PeriodReturns struct {
	Yesterday  *Returns `json:"yesterday"`
	Weekly     *Returns `json:"weekly"`
	Monthly    *Returns `json:"monthly"`
	ThreeMonth *Returns `json:"three_month"`
	YTD        *Returns `json:"ytd"`
}

// TickerBadge names a ticker together with the scalar that earned it a
// dashboard card.
type TickerBadge struct {
	Symbol string   `json:"symbol"`
	Pct    *float64 `json:"pct"`
	Abs    *float64 `json:"abs_value"`
}

// KPIs are the dashboard card figures.
type KPIs struct {
	PortfolioValue struct {
		Abs float64 `json:"abs_value"`
		Net float64 `json:"net_value"`
	} `json:"portfolio_value"`
	NetPerformance float64      `json:"net_performance"`
	BestTicker     *TickerBadge `json:"best_ticker"`
	HighestValue   *TickerBadge `json:"highest_value_ticker"`
	WorstTicker    *TickerBadge `json:"worst_ticker"`
}

// AllocationSlice is one slice of the asset allocation chart.
type AllocationSlice struct {
	Ticker        string   `json:"ticker"`
	Group         string   `json:"group"`
	Name          string   `json:"name"`
	Value         float64  `json:"value"`
	Quantity      float64  `json:"quantity"`
	AllocationPct *float64 `json:"allocation_pct"`
}

// Report is an AI-generated narrative report fetched from the backend.
type Report struct {
	Portfolio string  `json:"portfolio"`
	Ticker    string  `json:"ticker"`
	Markdown  string  `json:"report"`
	Cost      float64 `json:"cost"`
}
