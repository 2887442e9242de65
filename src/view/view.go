package view

import (
	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
)

// BalanceKey identifies one balance cell on the dashboard.
type BalanceKey struct {
	AccountType string
	AccountID   string
}

// TradeStatusSink receives formatted per-trade status values, keyed by
// trade id.
type TradeStatusSink interface {
	SetTradeStatus(tradeID string, label string, severity eventmodels.SeverityClass)
}

// BalanceSink receives formatted per-account balance values.
type BalanceSink interface {
	SetBalance(key BalanceKey, formatted string)
}

// StatusSink receives a formatted singleton status (copier or connections).
type StatusSink interface {
	SetStatus(label string, severity eventmodels.SeverityClass, description string)
}

// ConnectionCountsSink receives the raw account connectivity details that
// accompany a connections status reading: the counts plus the per-account
// failure descriptions the backend reports.
type ConnectionCountsSink interface {
	SetConnectionCounts(connected int, total int, failed []string)
}

// TargetSource reports which per-item view elements currently exist. The
// view is the source of truth for which targets are polled; an empty list
// is zero work, never an error.
type TargetSource interface {
	TradeIDs() []string
	BalanceKeys() []BalanceKey
}
