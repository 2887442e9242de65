package eventmodels

import "time"

// CopierStatusDTO mirrors the copier status endpoint. The endpoint always
// reports both fields; the running flag is authoritative, the textual
// status is informational only.
type CopierStatusDTO struct {
	Running bool   `json:"running"`
	Status  string `json:"status"`
}

func (dto *CopierStatusDTO) ToStatusReading() *StatusReading {
	return &StatusReading{
		Success:   true,
		Running:   dto.Running,
		Status:    dto.Status,
		Timestamp: time.Now().UTC(),
	}
}
