package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"folioview"
	"folioview/api"
)

// HoldingsMarkdown renders the live holdings table, sorted per the given
// state. An empty state keeps the backend order.
func HoldingsMarkdown(s *api.Status, sort folioview.SortState, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Holdings")
	holdingsTable(doc, s, sort, currency)
	return doc.String()
}

func holdingsTable(doc *md.Markdown, s *api.Status, sort folioview.SortState, currency string) {
	if len(s.Holdings) == 0 {
		doc.PlainText("No holdings.")
		return
	}

	rows := s.Holdings
	if sort.Key != "" {
		rows = folioview.SortBy(rows, holdingKey(sort.Key), sort.Dir)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Quantity", "Price", "Value"},
		Rows:      [][]string{},
	}
	for _, h := range rows {
		table.Rows = append(table.Rows, []string{
			h.Ticker,
			quantity(h.Quantity),
			cash(h.Price, currency),
			cash(h.Value, currency),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total: %s", Cash(s.TotalValue, currency)))
	if s.LastUpdated != "" {
		doc.PlainText(fmt.Sprintf("Last updated: %s", s.LastUpdated))
	}
}

func holdingKey(key string) func(api.Holding) any {
	return func(h api.Holding) any {
		switch key {
		case "quantity":
			return h.Quantity
		case "price":
			return h.Price
		case "value":
			return h.Value
		default:
			return h.Ticker
		}
	}
}

func quantity(q *float64) string {
	if q == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *q)
}

func cash(v *float64, currency string) string {
	if v == nil {
		return "-"
	}
	return Cash(*v, currency).String()
}
