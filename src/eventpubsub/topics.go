package eventpubsub

import (
	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
)

const (
	NewTradeEvent    = "NewTradeEvent"
	TradeCopiedEvent = "TradeCopiedEvent"
	TradeFailedEvent = "TradeFailedEvent"
)

var liveEventTopics = map[eventmodels.LiveEventType]string{
	eventmodels.LiveEventNewTrade:    NewTradeEvent,
	eventmodels.LiveEventTradeCopied: TradeCopiedEvent,
	eventmodels.LiveEventTradeFailed: TradeFailedEvent,
}

// TopicForLiveEvent resolves the bus topic for a live event type. Unknown
// types have no topic; the caller drops the event.
func TopicForLiveEvent(eventType eventmodels.LiveEventType) (string, bool) {
	topic, found := liveEventTopics[eventType]

	return topic, found
}
