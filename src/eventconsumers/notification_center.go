package eventconsumers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	pubsub "github.com/jiaming2012/copier-dashboard/src/eventpubsub"
)

type Notification struct {
	ID        string
	Severity  eventmodels.SeverityClass
	Message   string
	CreatedAt time.Time
}

// NotificationCenter holds the stack of ephemeral, user-dismissible
// notifications. Each entry dismisses itself after the configured TTL
// unless the user dismisses it first. Concurrent notifications stack,
// newest first; they are never deduplicated or coalesced.
type NotificationCenter struct {
	wg  *sync.WaitGroup
	ttl time.Duration

	mtx           sync.Mutex
	notifications []*Notification
}

func NewNotificationCenter(wg *sync.WaitGroup, ttl time.Duration) *NotificationCenter {
	return &NotificationCenter{
		wg:  wg,
		ttl: ttl,
	}
}

// Show inserts a notification at the top of the stack and schedules its
// automatic dismissal. It returns the notification id for early dismissal.
func (c *NotificationCenter) Show(severity eventmodels.SeverityClass, message string) string {
	notification := &Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	c.mtx.Lock()
	c.notifications = append([]*Notification{notification}, c.notifications...)
	c.mtx.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.Dismiss(notification.ID)
	})

	return notification.ID
}

func (c *NotificationCenter) Dismiss(id string) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i, notification := range c.notifications {
		if notification.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return true
		}
	}

	return false
}

// Active returns a copy of the current stack, newest first.
func (c *NotificationCenter) Active() []Notification {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	active := make([]Notification, 0, len(c.notifications))
	for _, notification := range c.notifications {
		active = append(active, *notification)
	}

	return active
}

func (c *NotificationCenter) newTradeHandler(ev *eventmodels.LiveEventDTO) {
	log.Debugf("NotificationCenter.newTradeHandler <- %v", ev)

	msg := fmt.Sprintf("New trade detected: %s %v %s @ %v", ev.Side, ev.Quantity, ev.Symbol, ev.Price)

	c.Show(eventmodels.SeverityWarning, msg)
}

func (c *NotificationCenter) tradeCopiedHandler(ev *eventmodels.LiveEventDTO) {
	log.Debugf("NotificationCenter.tradeCopiedHandler <- %v", ev)

	msg := fmt.Sprintf("Trade copied to %s: %s %v %s", ev.Follower, ev.Side, ev.Quantity, ev.Symbol)

	c.Show(eventmodels.SeveritySuccess, msg)
}

func (c *NotificationCenter) tradeFailedHandler(ev *eventmodels.LiveEventDTO) {
	log.Debugf("NotificationCenter.tradeFailedHandler <- %v", ev)

	msg := fmt.Sprintf("Copy failed for %s: %s", ev.Follower, ev.Error)

	c.Show(eventmodels.SeverityDanger, msg)
}

func (c *NotificationCenter) Start(ctx context.Context) {
	c.wg.Add(1)

	pubsub.Subscribe("NotificationCenter", pubsub.NewTradeEvent, c.newTradeHandler)
	pubsub.Subscribe("NotificationCenter", pubsub.TradeCopiedEvent, c.tradeCopiedHandler)
	pubsub.Subscribe("NotificationCenter", pubsub.TradeFailedEvent, c.tradeFailedHandler)

	go func() {
		defer c.wg.Done()

		<-ctx.Done()
		log.Info("stopping NotificationCenter consumer")
	}()
}
