package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"folioview"
	"folioview/api"
)

// DashboardMarkdown renders the KPI cards, the period return cards and the
// live holdings. Any nil section is simply skipped.
func DashboardMarkdown(k *api.KPIs, r *api.PeriodReturns, s *api.Status, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Dashboard")

	if k != nil {
		cards := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"KPI", "Value"},
			Rows: [][]string{
				{"Portfolio value", Cash(k.PortfolioValue.Abs, currency).String()},
				{"Net of contributions", Cash(k.PortfolioValue.Net, currency).String()},
				{"Net performance", folioview.Percent(k.NetPerformance).SignedString()},
				{"Best ticker", badge(k.BestTicker, currency)},
				{"Worst ticker", badge(k.WorstTicker, currency)},
				{"Largest position", badge(k.HighestValue, currency)},
			},
		}
		doc.Table(cards)
	}

	if r != nil {
		doc.H2("Period returns")
		periods := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{"Yesterday", "Weekly", "Monthly", "3 months", "YTD"},
			Rows: [][]string{{
				portfolioPct(r.Yesterday),
				portfolioPct(r.Weekly),
				portfolioPct(r.Monthly),
				portfolioPct(r.ThreeMonth),
				portfolioPct(r.YTD),
			}},
		}
		doc.Table(periods)
	}

	if s != nil {
		doc.H2("Holdings")
		holdingsTable(doc, s, folioview.SortState{}, currency)
	}
	return doc.String()
}

func portfolioPct(r *api.Returns) string {
	if r == nil || r.Portfolio == nil {
		return "-"
	}
	return pct(r.Portfolio.ReturnPct)
}

func badge(b *api.TickerBadge, currency string) string {
	if b == nil {
		return "-"
	}
	switch {
	case b.Pct != nil:
		return fmt.Sprintf("%s %s", b.Symbol, folioview.Percent(*b.Pct).SignedString())
	case b.Abs != nil:
		return fmt.Sprintf("%s %s", b.Symbol, Cash(*b.Abs, currency))
	default:
		return b.Symbol
	}
}
