package eventmodels

import "strings"

// SeverityClass is the display severity used to color-code a status value.
type SeverityClass string

const (
	SeveritySuccess   SeverityClass = "success"
	SeverityWarning   SeverityClass = "warning"
	SeverityDanger    SeverityClass = "danger"
	SeveritySecondary SeverityClass = "secondary"
)

var tradeStatusSeverities = map[string]SeverityClass{
	"executed":  SeveritySuccess,
	"pending":   SeverityWarning,
	"failed":    SeverityDanger,
	"cancelled": SeveritySecondary,
}

// ClassifyTradeStatus maps a raw trade status token to its display
// severity. The match is case-insensitive. Unrecognized tokens map to
// secondary, never to an error.
func ClassifyTradeStatus(token string) SeverityClass {
	if severity, found := tradeStatusSeverities[strings.ToLower(token)]; found {
		return severity
	}

	return SeveritySecondary
}
