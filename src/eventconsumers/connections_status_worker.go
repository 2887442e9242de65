package eventconsumers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/utils"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

const connectionsErrorDescription = "Unable to check connections"

type ConnectionsStatusWorker struct {
	baseURL string
	sink    view.StatusSink
	counts  view.ConnectionCountsSink
}

// NewConnectionsStatusWorker creates the singleton connections worker.
// counts may be nil when the view has no use for the raw account counts.
func NewConnectionsStatusWorker(baseURL string, sink view.StatusSink, counts view.ConnectionCountsSink) *ConnectionsStatusWorker {
	return &ConnectionsStatusWorker{
		baseURL: baseURL,
		sink:    sink,
		counts:  counts,
	}
}

func (w *ConnectionsStatusWorker) Kind() eventmodels.ResourceKind {
	return eventmodels.ResourceKindConnectionsStatus
}

func (w *ConnectionsStatusWorker) fetchStatus(ctx context.Context) (*eventmodels.ConnectionsStatusDTO, error) {
	url := fmt.Sprintf("%s/api/connections_status", w.baseURL)

	var dto eventmodels.ConnectionsStatusDTO
	if err := utils.GetJSON(ctx, url, &dto); err != nil {
		return nil, fmt.Errorf("ConnectionsStatusWorker:fetchStatus(): failed to fetch connections status: %w", err)
	}

	return &dto, nil
}

// Refresh updates the singleton API status element. The category maps to a
// fixed (label, severity) pair; the backend message passes through
// verbatim as the description. An unrecognized category is a display
// no-op; a failed fetch is surfaced as an explicit Error state.
func (w *ConnectionsStatusWorker) Refresh(ctx context.Context, target eventmodels.RefreshTarget) {
	dto, err := w.fetchStatus(ctx)
	if err != nil {
		log.Errorf("ConnectionsStatusWorker.Refresh: %v", err)
		w.sink.SetStatus("Error", eventmodels.SeverityWarning, connectionsErrorDescription)
		return
	}

	display, known := dto.Category().Display()
	if !known {
		log.Warnf("ConnectionsStatusWorker.Refresh: unknown connection category %q", dto.Status)
		return
	}

	w.sink.SetStatus(display.Label, display.Severity, dto.Message)

	if w.counts != nil {
		w.counts.SetConnectionCounts(dto.ConnectedAccounts, dto.TotalAccounts, dto.FailedConnections)
	}
}
