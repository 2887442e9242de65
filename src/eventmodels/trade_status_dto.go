package eventmodels

import "time"

type TradeStatusDTO struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

func (dto *TradeStatusDTO) ToStatusReading() *StatusReading {
	return &StatusReading{
		Success:   dto.Success,
		Status:    dto.Status,
		Timestamp: time.Now().UTC(),
	}
}
