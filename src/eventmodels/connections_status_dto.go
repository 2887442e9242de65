package eventmodels

type ConnectionsStatusDTO struct {
	Status            string   `json:"status"`
	Message           string   `json:"message"`
	TotalAccounts     int      `json:"total_accounts"`
	ConnectedAccounts int      `json:"connected_accounts"`
	FailedConnections []string `json:"failed_connections"`
}

func (dto *ConnectionsStatusDTO) Category() ConnectionCategory {
	return ConnectionCategory(dto.Status)
}
