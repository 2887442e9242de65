package eventmodels

import "time"

type AccountBalanceDTO struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
	Error   string  `json:"error"`
}

func (dto *AccountBalanceDTO) ToStatusReading() *StatusReading {
	return &StatusReading{
		Success:   dto.Success,
		Balance:   dto.Balance,
		Message:   dto.Error,
		Timestamp: time.Now().UTC(),
	}
}
