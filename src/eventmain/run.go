package eventmain

import (
	"context"
	"io"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventconsumers"
	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/eventproducers"
	"github.com/jiaming2012/copier-dashboard/src/eventpubsub"
	"github.com/jiaming2012/copier-dashboard/src/view"
)

// Run wires the sync engine: the in-memory dashboard, the four refresh
// workers, the poll scheduler, the notification center, and, when enabled,
// the live channel. It blocks until ctx is cancelled and all workers have
// drained.
func Run(ctx context.Context, config *eventmodels.Config, consoleOut io.Writer) error {
	if level, err := log.ParseLevel(config.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("unknown log level %q, using info", config.LogLevel)
	}

	eventpubsub.Init()

	wg := sync.WaitGroup{}

	dashboard := view.NewDashboard()
	for _, tradeID := range config.Watch.Trades {
		dashboard.AddTradeRow(tradeID)
	}
	for _, watch := range config.Watch.Balances {
		dashboard.AddBalanceCell(view.BalanceKey{AccountType: watch.AccountType, AccountID: watch.AccountID})
	}

	trades := eventconsumers.NewTradeStatusWorker(config.BaseURL, dashboard)
	balances := eventconsumers.NewAccountBalanceWorker(config.BaseURL, dashboard)
	copier := eventconsumers.NewCopierStatusWorker(config.BaseURL, dashboard.CopierSink())
	connections := eventconsumers.NewConnectionsStatusWorker(config.BaseURL, dashboard.ConnectionsSink(), dashboard)

	scheduler := eventconsumers.NewPollScheduler(&wg, config.PollInterval(), dashboard, trades, balances, copier, connections)
	scheduler.Start(ctx)

	notifications := eventconsumers.NewNotificationCenter(&wg, config.NotificationTTL())
	notifications.Start(ctx)

	if config.LiveChannelEnabled {
		live := eventproducers.NewLiveChannel(&wg, config.WsOrigin, config.ReconnectDelay())
		live.Start(ctx)
	}

	if consoleOut != nil {
		startConsoleRenderer(ctx, &wg, dashboard, notifications, consoleOut, config.PollInterval())
	}

	log.Infof("dashboard sync started against %s", config.BaseURL)

	<-ctx.Done()
	log.Info("shutting down dashboard sync")
	wg.Wait()

	return nil
}

func startConsoleRenderer(ctx context.Context, wg *sync.WaitGroup, dashboard *view.Dashboard, notifications *eventconsumers.NotificationCenter, out io.Writer, interval time.Duration) {
	wg.Add(1)

	timer := time.NewTicker(interval)

	go func() {
		defer wg.Done()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("stopping console renderer")
				return
			case <-timer.C:
				dashboard.Render(out)
				for _, notification := range notifications.Active() {
					log.Infof("[%s] %s", notification.Severity, notification.Message)
				}
			}
		}
	}()
}
