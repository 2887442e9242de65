package eventconsumers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/utils"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

const (
	copierRunningDescription = "Trade copier is actively monitoring master accounts"
	copierStoppedDescription = "Trade copier is not running"
	copierErrorDescription   = "Unable to reach copier service"
)

type CopierStatusWorker struct {
	baseURL string
	sink    view.StatusSink
}

func NewCopierStatusWorker(baseURL string, sink view.StatusSink) *CopierStatusWorker {
	return &CopierStatusWorker{
		baseURL: baseURL,
		sink:    sink,
	}
}

func (w *CopierStatusWorker) Kind() eventmodels.ResourceKind {
	return eventmodels.ResourceKindCopierStatus
}

func (w *CopierStatusWorker) fetchStatus(ctx context.Context) (*eventmodels.CopierStatusDTO, error) {
	url := fmt.Sprintf("%s/api/copier_status", w.baseURL)

	var dto eventmodels.CopierStatusDTO
	if err := utils.GetJSON(ctx, url, &dto); err != nil {
		return nil, fmt.Errorf("CopierStatusWorker:fetchStatus(): failed to fetch copier status: %w", err)
	}

	return &dto, nil
}

// Refresh updates the singleton copier status element. The copier's health
// is dashboard-wide, so unlike the per-item workers a failed fetch is
// surfaced to the user as an explicit Error state.
func (w *CopierStatusWorker) Refresh(ctx context.Context, target eventmodels.RefreshTarget) {
	dto, err := w.fetchStatus(ctx)
	if err != nil {
		log.Errorf("CopierStatusWorker.Refresh: %v", err)
		w.sink.SetStatus("Error", eventmodels.SeverityWarning, copierErrorDescription)
		return
	}

	reading := dto.ToStatusReading()
	if reading.Running {
		w.sink.SetStatus("Running", eventmodels.SeveritySuccess, copierRunningDescription)
	} else {
		w.sink.SetStatus("Stopped", eventmodels.SeverityDanger, copierStoppedDescription)
	}
}
