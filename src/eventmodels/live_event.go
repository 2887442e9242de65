package eventmodels

import (
	"encoding/json"
	"fmt"
)

type LiveEventType string

const (
	LiveEventNewTrade    LiveEventType = "new_trade"
	LiveEventTradeCopied LiveEventType = "trade_copied"
	LiveEventTradeFailed LiveEventType = "trade_failed"
)

// LiveEventDTO is the websocket message envelope. The payload fields are
// the union across event types; each handler reads the ones it needs.
type LiveEventDTO struct {
	Type     LiveEventType `json:"type"`
	Symbol   string        `json:"symbol"`
	Side     string        `json:"side"`
	Quantity float64       `json:"quantity"`
	Price    float64       `json:"price"`
	Follower string        `json:"follower"`
	Error    string        `json:"error"`
}

func ParseLiveEvent(data []byte) (*LiveEventDTO, error) {
	var dto LiveEventDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("ParseLiveEvent: failed to unmarshal message: %w", err)
	}

	if dto.Type == "" {
		return nil, fmt.Errorf("ParseLiveEvent: message has no type")
	}

	return &dto, nil
}
