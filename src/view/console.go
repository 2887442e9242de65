package view

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes a snapshot of the dashboard to w as console tables.
func (d *Dashboard) Render(w io.Writer) {
	copier := d.Copier()
	connections := d.Connections()
	connected, total := d.ConnectionCounts()

	fmt.Fprintf(w, "Copier: %s [%s] %s\n", copier.Label, copier.Severity, copier.Description)
	fmt.Fprintf(w, "API: %s [%s] %s (%d/%d accounts)\n", connections.Label, connections.Severity, connections.Description, connected, total)

	for _, failure := range d.FailedConnections() {
		fmt.Fprintf(w, "  failed: %s\n", failure)
	}

	tradeIDs := d.TradeIDs()
	if len(tradeIDs) > 0 {
		fmt.Fprintln(w, "Trades:")

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Trade", "Status", "Severity"})
		table.SetAlignment(tablewriter.ALIGN_CENTER)
		table.SetColumnSeparator("")

		for _, tradeID := range tradeIDs {
			label, severity, _ := d.TradeStatus(tradeID)
			table.Append([]string{tradeID, label, string(severity)})
		}

		table.Render()
	}

	balanceKeys := d.BalanceKeys()
	if len(balanceKeys) > 0 {
		fmt.Fprintln(w, "Balances:")

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Account Type", "Account", "Balance"})
		table.SetAlignment(tablewriter.ALIGN_CENTER)
		table.SetColumnSeparator("")

		for _, key := range balanceKeys {
			balance, _ := d.Balance(key)
			table.Append([]string{key.AccountType, key.AccountID, balance})
		}

		table.Render()
	}
}
