// Package inventory contains the stock ledger aggregate.
//
// Item is the aggregate root: stock changes enter through movements that are
// appended to a permanent ledger, reservations put holds on available stock,
// and the item status (active, low-stock, out-of-stock, inactive) is derived
// from the stock figures after every mutation. CheckAlerts evaluates the
// thresholds and expiry date, gating each alert kind by a re-alert interval.
package inventory
