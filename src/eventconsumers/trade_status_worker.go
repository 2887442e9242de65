package eventconsumers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/utils"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

type TradeStatusWorker struct {
	baseURL string
	sink    view.TradeStatusSink
}

func NewTradeStatusWorker(baseURL string, sink view.TradeStatusSink) *TradeStatusWorker {
	return &TradeStatusWorker{
		baseURL: baseURL,
		sink:    sink,
	}
}

func (w *TradeStatusWorker) Kind() eventmodels.ResourceKind {
	return eventmodels.ResourceKindTradeStatus
}

func (w *TradeStatusWorker) fetchStatus(ctx context.Context, tradeID string) (*eventmodels.TradeStatusDTO, error) {
	url := fmt.Sprintf("%s/api/trade_status/%s", w.baseURL, tradeID)

	var dto eventmodels.TradeStatusDTO
	if err := utils.GetJSON(ctx, url, &dto); err != nil {
		return nil, fmt.Errorf("TradeStatusWorker:fetchStatus(): failed to fetch trade status: %w", err)
	}

	return &dto, nil
}

// Refresh updates one trade row's status badge. A trade status is a
// per-item resource: any failure leaves the current badge untouched rather
// than flashing an error at the user on every tick.
func (w *TradeStatusWorker) Refresh(ctx context.Context, target eventmodels.RefreshTarget) {
	dto, err := w.fetchStatus(ctx, target.ResourceID)
	if err != nil {
		log.Errorf("TradeStatusWorker.Refresh: %v", err)
		return
	}

	reading := dto.ToStatusReading()
	if !reading.Success {
		log.Debugf("TradeStatusWorker.Refresh: trade %s reported no status", target.ResourceID)
		return
	}

	w.sink.SetTradeStatus(target.ResourceID, reading.Status, eventmodels.ClassifyTradeStatus(reading.Status))
}
