package eventconsumers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

func newTradeStatusServer(t *testing.T, statuses map[string]string) *httptest.Server {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/trade_status/{tradeId}", func(w http.ResponseWriter, r *http.Request) {
		tradeID := mux.Vars(r)["tradeId"]

		if status, found := statuses[tradeID]; found {
			fmt.Fprintf(w, `{"success":true,"status":%q}`, status)
			return
		}

		fmt.Fprint(w, `{"success":false}`)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func tradeTarget(tradeID string) eventmodels.RefreshTarget {
	return eventmodels.RefreshTarget{Kind: eventmodels.ResourceKindTradeStatus, ResourceID: tradeID}
}

func Test_TradeStatusWorker_Refresh(t *testing.T) {
	t.Run("successful refresh writes the raw token and its severity", func(t *testing.T) {
		// arrange
		server := newTradeStatusServer(t, map[string]string{"T1": "executed"})
		dashboard := view.NewDashboard()
		dashboard.AddTradeRow("T1")
		worker := NewTradeStatusWorker(server.URL, dashboard)

		// act
		worker.Refresh(context.Background(), tradeTarget("T1"))

		// assert
		assert.Equal(t, eventmodels.ResourceKindTradeStatus, worker.Kind())

		label, severity, found := dashboard.TradeStatus("T1")
		assert.True(t, found)
		assert.Equal(t, "executed", label)
		assert.Equal(t, eventmodels.SeveritySuccess, severity)
	})

	t.Run("two rows: success applies, logical failure keeps the prior badge", func(t *testing.T) {
		// arrange
		server := newTradeStatusServer(t, map[string]string{"T1": "executed"})
		dashboard := view.NewDashboard()
		dashboard.AddTradeRow("T1")
		dashboard.AddTradeRow("T2")
		dashboard.SetTradeStatus("T2", "pending", eventmodels.SeverityWarning)
		worker := NewTradeStatusWorker(server.URL, dashboard)

		// act
		worker.Refresh(context.Background(), tradeTarget("T1"))
		worker.Refresh(context.Background(), tradeTarget("T2"))

		// assert
		label, severity, _ := dashboard.TradeStatus("T1")
		assert.Equal(t, "executed", label)
		assert.Equal(t, eventmodels.SeveritySuccess, severity)

		label, severity, _ = dashboard.TradeStatus("T2")
		assert.Equal(t, "pending", label)
		assert.Equal(t, eventmodels.SeverityWarning, severity)
	})

	t.Run("repeated failures never overwrite the view", func(t *testing.T) {
		// arrange
		server := newTradeStatusServer(t, nil)
		dashboard := view.NewDashboard()
		dashboard.AddTradeRow("T1")
		dashboard.SetTradeStatus("T1", "pending", eventmodels.SeverityWarning)
		worker := NewTradeStatusWorker(server.URL, dashboard)

		// act
		for i := 0; i < 5; i++ {
			worker.Refresh(context.Background(), tradeTarget("T1"))
		}

		// assert
		label, severity, _ := dashboard.TradeStatus("T1")
		assert.Equal(t, "pending", label)
		assert.Equal(t, eventmodels.SeverityWarning, severity)
	})

	t.Run("transport failure leaves the view unchanged", func(t *testing.T) {
		// arrange
		server := newTradeStatusServer(t, map[string]string{"T1": "executed"})
		dashboard := view.NewDashboard()
		dashboard.AddTradeRow("T1")
		dashboard.SetTradeStatus("T1", "pending", eventmodels.SeverityWarning)
		worker := NewTradeStatusWorker(server.URL, dashboard)
		server.Close()

		// act
		worker.Refresh(context.Background(), tradeTarget("T1"))

		// assert
		label, _, _ := dashboard.TradeStatus("T1")
		assert.Equal(t, "pending", label)
	})

	t.Run("non-json response leaves the view unchanged", func(t *testing.T) {
		// arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>maintenance</html>")
		}))
		t.Cleanup(server.Close)

		dashboard := view.NewDashboard()
		dashboard.AddTradeRow("T1")
		dashboard.SetTradeStatus("T1", "pending", eventmodels.SeverityWarning)
		worker := NewTradeStatusWorker(server.URL, dashboard)

		// act
		worker.Refresh(context.Background(), tradeTarget("T1"))

		// assert
		label, _, _ := dashboard.TradeStatus("T1")
		assert.Equal(t, "pending", label)
	})
}
