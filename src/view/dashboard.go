package view

import (
	"sort"
	"sync"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
)

// StatusValue is the current rendering of one status element.
type StatusValue struct {
	Label       string
	Severity    eventmodels.SeverityClass
	Description string
}

type tradeStatusValue struct {
	Label    string
	Severity eventmodels.SeverityClass
}

// Dashboard is the in-memory view state. Every write is an independent
// assignment guarded by one mutex; refreshers touch disjoint cells, so
// last-applied-wins holds per cell.
type Dashboard struct {
	mtx               sync.Mutex
	tradeStatuses     map[string]tradeStatusValue
	balances          map[BalanceKey]string
	copier            StatusValue
	connections       StatusValue
	connectedCount    int
	totalCount        int
	failedConnections []string
}

func NewDashboard() *Dashboard {
	return &Dashboard{
		tradeStatuses: make(map[string]tradeStatusValue),
		balances:      make(map[BalanceKey]string),
	}
}

// AddTradeRow registers a trade row so the scheduler starts polling its
// status. Re-adding an existing row keeps its current value.
func (d *Dashboard) AddTradeRow(tradeID string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if _, found := d.tradeStatuses[tradeID]; !found {
		d.tradeStatuses[tradeID] = tradeStatusValue{}
	}
}

func (d *Dashboard) RemoveTradeRow(tradeID string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	delete(d.tradeStatuses, tradeID)
}

func (d *Dashboard) AddBalanceCell(key BalanceKey) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if _, found := d.balances[key]; !found {
		d.balances[key] = ""
	}
}

func (d *Dashboard) RemoveBalanceCell(key BalanceKey) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	delete(d.balances, key)
}

// SetTradeStatus applies a reading to an existing trade row. Writes for a
// row that has been removed are dropped: a late in-flight response must
// not resurrect a target the view owner no longer wants polled.
func (d *Dashboard) SetTradeStatus(tradeID string, label string, severity eventmodels.SeverityClass) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if _, found := d.tradeStatuses[tradeID]; !found {
		return
	}

	d.tradeStatuses[tradeID] = tradeStatusValue{Label: label, Severity: severity}
}

// SetBalance applies a reading to an existing balance cell; writes for a
// removed cell are dropped.
func (d *Dashboard) SetBalance(key BalanceKey, formatted string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if _, found := d.balances[key]; !found {
		return
	}

	d.balances[key] = formatted
}

func (d *Dashboard) SetConnectionCounts(connected int, total int, failed []string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.connectedCount = connected
	d.totalCount = total
	d.failedConnections = append([]string(nil), failed...)
}

type statusSinkFunc func(label string, severity eventmodels.SeverityClass, description string)

func (fn statusSinkFunc) SetStatus(label string, severity eventmodels.SeverityClass, description string) {
	fn(label, severity, description)
}

// CopierSink returns the sink for the singleton copier status element.
func (d *Dashboard) CopierSink() StatusSink {
	return statusSinkFunc(func(label string, severity eventmodels.SeverityClass, description string) {
		d.mtx.Lock()
		defer d.mtx.Unlock()

		d.copier = StatusValue{Label: label, Severity: severity, Description: description}
	})
}

// ConnectionsSink returns the sink for the singleton API status element.
func (d *Dashboard) ConnectionsSink() StatusSink {
	return statusSinkFunc(func(label string, severity eventmodels.SeverityClass, description string) {
		d.mtx.Lock()
		defer d.mtx.Unlock()

		d.connections = StatusValue{Label: label, Severity: severity, Description: description}
	})
}

func (d *Dashboard) TradeIDs() []string {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	ids := make([]string, 0, len(d.tradeStatuses))
	for id := range d.tradeStatuses {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

func (d *Dashboard) BalanceKeys() []BalanceKey {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	keys := make([]BalanceKey, 0, len(d.balances))
	for key := range d.balances {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].AccountType != keys[j].AccountType {
			return keys[i].AccountType < keys[j].AccountType
		}

		return keys[i].AccountID < keys[j].AccountID
	})

	return keys
}

func (d *Dashboard) TradeStatus(tradeID string) (string, eventmodels.SeverityClass, bool) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	value, found := d.tradeStatuses[tradeID]

	return value.Label, value.Severity, found
}

func (d *Dashboard) Balance(key BalanceKey) (string, bool) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	value, found := d.balances[key]

	return value, found
}

func (d *Dashboard) Copier() StatusValue {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.copier
}

func (d *Dashboard) Connections() StatusValue {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.connections
}

func (d *Dashboard) ConnectionCounts() (int, int) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.connectedCount, d.totalCount
}

func (d *Dashboard) FailedConnections() []string {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return append([]string(nil), d.failedConnections...)
}
