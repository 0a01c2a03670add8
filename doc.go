// Package folioview reconciles independently fetched portfolio, ticker and
// benchmark time series into a single date-aligned frame suitable for
// multi-line charting, and provides the shared sorting utility behind every
// tabular view.
//
// The package is pure: it owns no I/O and no state beyond the values it is
// given. Fetching lives in the api and fetch packages, presentation in
// renderer, and command wiring in cmd.
package folioview
