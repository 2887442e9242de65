package eventconsumers

import (
	"context"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
)

// Refresher refreshes one resource kind on behalf of the poll scheduler.
// Refresh is side-effect only: it fetches the resource, formats the result,
// and writes it to the worker's view sink. Failures are handled inside the
// worker and never propagate to the scheduler.
type Refresher interface {
	Kind() eventmodels.ResourceKind
	Refresh(ctx context.Context, target eventmodels.RefreshTarget)
}
