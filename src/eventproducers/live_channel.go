package eventproducers

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	pubsub "github.com/jiaming2012/copier-dashboard/src/eventpubsub"
)

type ChannelState string

const (
	ChannelConnecting ChannelState = "connecting"
	ChannelOpen       ChannelState = "open"
	ChannelClosed     ChannelState = "closed"
)

// LiveChannel is the push channel carrying asynchronous copier events,
// additive to polling. It reconnects after a fixed delay on every close,
// forever; only tearing down the context stops the loop.
type LiveChannel struct {
	wg             *sync.WaitGroup
	origin         string
	reconnectDelay time.Duration

	mtx              sync.Mutex
	state            ChannelState
	reconnectPending bool
}

func NewLiveChannel(wg *sync.WaitGroup, origin string, reconnectDelay time.Duration) *LiveChannel {
	return &LiveChannel{
		wg:             wg,
		origin:         origin,
		reconnectDelay: reconnectDelay,
		state:          ChannelClosed,
	}
}

// DeriveWsURL maps the dashboard origin to the live channel endpoint,
// substituting the websocket scheme for the http one.
func DeriveWsURL(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("DeriveWsURL: failed to parse origin: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("DeriveWsURL: unsupported origin scheme %q", u.Scheme)
	}

	u.Path = "/ws"

	return u.String(), nil
}

func (c *LiveChannel) State() ChannelState {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.state
}

func (c *LiveChannel) setState(state ChannelState) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.state = state
}

func (c *LiveChannel) Start(ctx context.Context) {
	c.wg.Add(1)

	c.connect(ctx)

	go func() {
		defer c.wg.Done()

		<-ctx.Done()
		log.Info("stopping LiveChannel producer")
	}()
}

func (c *LiveChannel) connect(ctx context.Context) {
	c.setState(ChannelConnecting)

	wsURL, err := DeriveWsURL(c.origin)
	if err != nil {
		log.Errorf("LiveChannel.connect: %v", err)
		c.setState(ChannelClosed)
		c.scheduleReconnect(ctx)
		return
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		log.Errorf("LiveChannel.connect: failed to dial %s: %v", wsURL, err)
		c.setState(ChannelClosed)
		c.scheduleReconnect(ctx)
		return
	}

	c.setState(ChannelOpen)
	log.Infof("live channel connected to %s", wsURL)

	c.wg.Add(1)
	go c.readLoop(ctx, conn)
}

func (c *LiveChannel) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer c.wg.Done()
	defer conn.Close()

	// ReadMessage only returns when the connection dies, so shutdown has
	// to close the connection out from under it.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			log.Errorf("LiveChannel.readLoop: connection closed: %v", err)
			c.handleClose(ctx)
			return
		}

		c.dispatch(message)
	}
}

// dispatch parses one frame and publishes it on the matching topic.
// Unparsable frames and unknown event types are logged and dropped,
// never fatal.
func (c *LiveChannel) dispatch(message []byte) {
	ev, err := eventmodels.ParseLiveEvent(message)
	if err != nil {
		log.Warnf("LiveChannel.dispatch: dropping message: %v", err)
		return
	}

	topic, found := pubsub.TopicForLiveEvent(ev.Type)
	if !found {
		log.Warnf("LiveChannel.dispatch: dropping unknown event type %q", ev.Type)
		return
	}

	pubsub.Publish("LiveChannel", topic, ev)
}

// handleClose transitions to Closed and schedules exactly one reconnect.
// The close path owns rescheduling: an error that does not close the
// connection must not start a second independent timer.
func (c *LiveChannel) handleClose(ctx context.Context) {
	c.setState(ChannelClosed)
	c.scheduleReconnect(ctx)
}

func (c *LiveChannel) scheduleReconnect(ctx context.Context) {
	c.mtx.Lock()
	if c.reconnectPending {
		c.mtx.Unlock()
		return
	}
	c.reconnectPending = true
	c.mtx.Unlock()

	time.AfterFunc(c.reconnectDelay, func() {
		c.mtx.Lock()
		c.reconnectPending = false
		c.mtx.Unlock()

		if ctx.Err() != nil {
			return
		}

		log.Infof("live channel reconnecting to %s", c.origin)
		c.connect(ctx)
	})
}
