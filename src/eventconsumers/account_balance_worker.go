package eventconsumers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/utils"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

type AccountBalanceWorker struct {
	baseURL string
	sink    view.BalanceSink
}

func NewAccountBalanceWorker(baseURL string, sink view.BalanceSink) *AccountBalanceWorker {
	return &AccountBalanceWorker{
		baseURL: baseURL,
		sink:    sink,
	}
}

func (w *AccountBalanceWorker) Kind() eventmodels.ResourceKind {
	return eventmodels.ResourceKindAccountBalance
}

func (w *AccountBalanceWorker) fetchBalance(ctx context.Context, accountType string, accountID string) (*eventmodels.AccountBalanceDTO, error) {
	url := fmt.Sprintf("%s/api/account_balance/%s/%s", w.baseURL, accountType, accountID)

	var dto eventmodels.AccountBalanceDTO
	if err := utils.GetJSON(ctx, url, &dto); err != nil {
		return nil, fmt.Errorf("AccountBalanceWorker:fetchBalance(): failed to fetch balance: %w", err)
	}

	return &dto, nil
}

// Refresh updates one account's balance cell. Like trade status, balances
// are per-item resources: failures are logged and the cell keeps its last
// value.
func (w *AccountBalanceWorker) Refresh(ctx context.Context, target eventmodels.RefreshTarget) {
	dto, err := w.fetchBalance(ctx, target.AccountType, target.ResourceID)
	if err != nil {
		log.Errorf("AccountBalanceWorker.Refresh: %v", err)
		return
	}

	reading := dto.ToStatusReading()
	if !reading.Success {
		log.Debugf("AccountBalanceWorker.Refresh: account %s/%s reported no balance: %s", target.AccountType, target.ResourceID, reading.Message)
		return
	}

	key := view.BalanceKey{AccountType: target.AccountType, AccountID: target.ResourceID}
	w.sink.SetBalance(key, utils.FormatCurrency(reading.Balance))
}
