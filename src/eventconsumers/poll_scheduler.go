package eventconsumers

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

// PollScheduler owns the repeating refresh timer. On each tick it runs a
// full refresh pass across all four resource kinds; per-item kinds iterate
// whatever targets the view reports at that moment, so an empty view is
// simply zero work. Refreshes are fire-and-forget: a new tick never
// cancels in-flight requests, and whichever response applies last wins.
type PollScheduler struct {
	wg          *sync.WaitGroup
	interval    time.Duration
	targets     view.TargetSource
	trades      Refresher
	balances    Refresher
	copier      Refresher
	connections Refresher

	mtx     sync.Mutex
	started bool
}

func NewPollScheduler(wg *sync.WaitGroup, interval time.Duration, targets view.TargetSource, trades Refresher, balances Refresher, copier Refresher, connections Refresher) *PollScheduler {
	return &PollScheduler{
		wg:          wg,
		interval:    interval,
		targets:     targets,
		trades:      trades,
		balances:    balances,
		copier:      copier,
		connections: connections,
	}
}

// Start refreshes the singleton resources once immediately, so the
// dashboard is not blank while waiting for the first tick, then arms the
// repeating timer. Start is idempotent: a second call never arms a
// competing timer.
func (s *PollScheduler) Start(ctx context.Context) {
	s.mtx.Lock()
	if s.started {
		s.mtx.Unlock()
		log.Warn("PollScheduler.Start: already started")
		return
	}
	s.started = true
	s.mtx.Unlock()

	s.wg.Add(1)

	s.refreshSingletons(ctx)

	timer := time.NewTicker(s.interval)

	go func() {
		defer s.wg.Done()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("stopping PollScheduler")
				return
			case <-timer.C:
				s.refreshAll(ctx)
			}
		}
	}()
}

func (s *PollScheduler) refreshSingletons(ctx context.Context) {
	go s.copier.Refresh(ctx, eventmodels.RefreshTarget{Kind: eventmodels.ResourceKindCopierStatus})
	go s.connections.Refresh(ctx, eventmodels.RefreshTarget{Kind: eventmodels.ResourceKindConnectionsStatus})
}

func (s *PollScheduler) refreshAll(ctx context.Context) {
	for _, tradeID := range s.targets.TradeIDs() {
		target := eventmodels.RefreshTarget{Kind: eventmodels.ResourceKindTradeStatus, ResourceID: tradeID}
		go s.trades.Refresh(ctx, target)
	}

	for _, key := range s.targets.BalanceKeys() {
		target := eventmodels.RefreshTarget{Kind: eventmodels.ResourceKindAccountBalance, ResourceID: key.AccountID, AccountType: key.AccountType}
		go s.balances.Refresh(ctx, target)
	}

	s.refreshSingletons(ctx)
}
