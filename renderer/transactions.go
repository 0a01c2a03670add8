package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"folioview"
	"folioview/api"
)

// TransactionsMarkdown renders the transaction log, sorted per the given
// state. An empty state sorts by date descending, newest first.
func TransactionsMarkdown(ts []api.Transaction, sort folioview.SortState, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transactions")

	if len(ts) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	if sort.Key == "" {
		sort = folioview.SortState{Key: "date", Dir: folioview.Descending}
	}
	rows := folioview.SortBy(ts, transactionKey(sort.Key), sort.Dir)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"Date", "Ticker", "Label", "Quantity", "Price", "Name"},
		Rows:   [][]string{},
	}
	for _, t := range rows {
		name := "-"
		if t.Name != nil && *t.Name != "" {
			name = *t.Name
		}
		table.Rows = append(table.Rows, []string{
			t.Date,
			t.Ticker,
			t.Label,
			fmt.Sprintf("%g", t.Quantity),
			Cash(t.Price, currency).String(),
			name,
		})
	}
	doc.Table(table)
	return doc.String()
}

func transactionKey(key string) func(api.Transaction) any {
	return func(t api.Transaction) any {
		switch key {
		case "ticker":
			return t.Ticker
		case "label":
			return t.Label
		case "quantity":
			return t.Quantity
		case "price":
			return t.Price
		case "name":
			if t.Name == nil {
				return nil
			}
			return *t.Name
		default:
			return t.Date
		}
	}
}
