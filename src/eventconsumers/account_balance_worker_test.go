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

func Test_AccountBalanceWorker_Refresh(t *testing.T) {
	masterKey := view.BalanceKey{AccountType: "master", AccountID: "1"}
	masterTarget := eventmodels.RefreshTarget{
		Kind:        eventmodels.ResourceKindAccountBalance,
		ResourceID:  "1",
		AccountType: eventmodels.AccountTypeMaster,
	}

	t.Run("successful refresh writes a two decimal currency value", func(t *testing.T) {
		// arrange
		router := mux.NewRouter()
		router.HandleFunc("/api/account_balance/{accountType}/{accountId}", func(w http.ResponseWriter, r *http.Request) {
			vars := mux.Vars(r)
			assert.Equal(t, "master", vars["accountType"])
			assert.Equal(t, "1", vars["accountId"])

			fmt.Fprint(w, `{"success":true,"balance":9871.2468}`)
		})

		server := httptest.NewServer(router)
		t.Cleanup(server.Close)

		dashboard := view.NewDashboard()
		dashboard.AddBalanceCell(masterKey)
		worker := NewAccountBalanceWorker(server.URL, dashboard)

		// act
		worker.Refresh(context.Background(), masterTarget)

		// assert
		assert.Equal(t, eventmodels.ResourceKindAccountBalance, worker.Kind())

		balance, found := dashboard.Balance(masterKey)
		assert.True(t, found)
		assert.Equal(t, "$9,871.25", balance)
	})

	t.Run("logical failure keeps the prior balance", func(t *testing.T) {
		// arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":false,"error":"Invalid API credentials"}`)
		}))
		t.Cleanup(server.Close)

		dashboard := view.NewDashboard()
		dashboard.AddBalanceCell(masterKey)
		dashboard.SetBalance(masterKey, "$1,000.00")
		worker := NewAccountBalanceWorker(server.URL, dashboard)

		// act
		worker.Refresh(context.Background(), masterTarget)

		// assert
		balance, _ := dashboard.Balance(masterKey)
		assert.Equal(t, "$1,000.00", balance)
	})

	t.Run("server error keeps the prior balance", func(t *testing.T) {
		// arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)

		dashboard := view.NewDashboard()
		dashboard.AddBalanceCell(masterKey)
		dashboard.SetBalance(masterKey, "$1,000.00")
		worker := NewAccountBalanceWorker(server.URL, dashboard)

		// act
		worker.Refresh(context.Background(), masterTarget)

		// assert
		balance, _ := dashboard.Balance(masterKey)
		assert.Equal(t, "$1,000.00", balance)
	})
}
