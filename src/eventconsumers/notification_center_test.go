package eventconsumers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	pubsub "github.com/jiaming2012/copier-dashboard/src/eventpubsub"
)

func Test_NotificationCenter_Show(t *testing.T) {
	wg := sync.WaitGroup{}

	t.Run("notifications stack newest first and are never coalesced", func(t *testing.T) {
		// arrange
		center := NewNotificationCenter(&wg, time.Hour)

		// act
		center.Show(eventmodels.SeverityWarning, "New trade detected: Buy 0.5 BTCUSDT @ 64000")
		center.Show(eventmodels.SeverityWarning, "New trade detected: Buy 0.5 BTCUSDT @ 64000")
		center.Show(eventmodels.SeveritySuccess, "Trade copied to alice: Buy 0.5 BTCUSDT")

		// assert
		active := center.Active()
		require.Len(t, active, 3)
		assert.Equal(t, eventmodels.SeveritySuccess, active[0].Severity)
		assert.Equal(t, active[1].Message, active[2].Message)
		assert.NotEqual(t, active[1].ID, active[2].ID)
	})

	t.Run("a user dismissal removes only the targeted entry", func(t *testing.T) {
		// arrange
		center := NewNotificationCenter(&wg, time.Hour)
		keepID := center.Show(eventmodels.SeverityDanger, "Copy failed for bob: insufficient margin")
		dropID := center.Show(eventmodels.SeveritySuccess, "Trade copied to alice: Buy 0.5 BTCUSDT")

		// act
		dismissed := center.Dismiss(dropID)

		// assert
		assert.True(t, dismissed)
		active := center.Active()
		require.Len(t, active, 1)
		assert.Equal(t, keepID, active[0].ID)

		assert.False(t, center.Dismiss(dropID))
	})

	t.Run("notifications dismiss themselves after the ttl", func(t *testing.T) {
		// arrange
		center := NewNotificationCenter(&wg, 20*time.Millisecond)

		// act
		center.Show(eventmodels.SeverityWarning, "New trade detected: Sell 1 ETHUSDT @ 3200")

		// assert
		require.Len(t, center.Active(), 1)
		assert.Eventually(t, func() bool {
			return len(center.Active()) == 0
		}, time.Second, 5*time.Millisecond)
	})
}

func Test_NotificationCenter_LiveEvents(t *testing.T) {
	newCenter := func(t *testing.T) *NotificationCenter {
		t.Helper()

		pubsub.Init()

		wg := sync.WaitGroup{}
		center := NewNotificationCenter(&wg, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		center.Start(ctx)

		return center
	}

	t.Run("each live event type produces one templated notification", func(t *testing.T) {
		// arrange
		center := newCenter(t)

		// act
		pubsub.Publish("test", pubsub.NewTradeEvent, &eventmodels.LiveEventDTO{
			Type: eventmodels.LiveEventNewTrade, Symbol: "BTCUSDT", Side: "Buy", Quantity: 0.5, Price: 64000,
		})
		pubsub.Publish("test", pubsub.TradeCopiedEvent, &eventmodels.LiveEventDTO{
			Type: eventmodels.LiveEventTradeCopied, Symbol: "BTCUSDT", Side: "Buy", Quantity: 0.25, Follower: "alice",
		})
		pubsub.Publish("test", pubsub.TradeFailedEvent, &eventmodels.LiveEventDTO{
			Type: eventmodels.LiveEventTradeFailed, Follower: "bob", Error: "insufficient margin",
		})
		pubsub.WaitAsync()

		// assert
		active := center.Active()
		require.Len(t, active, 3)

		bySeverity := map[eventmodels.SeverityClass]string{}
		for _, notification := range active {
			bySeverity[notification.Severity] = notification.Message
		}

		assert.Contains(t, bySeverity[eventmodels.SeverityWarning], "New trade detected")
		assert.Contains(t, bySeverity[eventmodels.SeverityWarning], "BTCUSDT")
		assert.Contains(t, bySeverity[eventmodels.SeveritySuccess], "Trade copied to alice")
		assert.Contains(t, bySeverity[eventmodels.SeverityDanger], "Copy failed for bob")
		assert.Contains(t, bySeverity[eventmodels.SeverityDanger], "insufficient margin")
	})
}
