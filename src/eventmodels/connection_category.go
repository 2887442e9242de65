package eventmodels

// ConnectionCategory is the closed set of API connectivity states reported
// by the connections status endpoint.
type ConnectionCategory string

const (
	ConnectionAllConnected     ConnectionCategory = "all_connected"
	ConnectionPartialConnected ConnectionCategory = "partial_connected"
	ConnectionNoneConnected    ConnectionCategory = "none_connected"
	ConnectionNoAccounts       ConnectionCategory = "no_accounts"
	ConnectionError            ConnectionCategory = "error"
)

// ConnectionDisplay is the dashboard rendering of a connection category.
type ConnectionDisplay struct {
	Label    string
	Severity SeverityClass
}

// Display returns the label and severity for the category. The second
// return value is false for values outside the closed set; callers must
// treat those as a display no-op rather than an error.
func (c ConnectionCategory) Display() (ConnectionDisplay, bool) {
	switch c {
	case ConnectionAllConnected:
		return ConnectionDisplay{Label: "Connected", Severity: SeveritySuccess}, true
	case ConnectionPartialConnected:
		return ConnectionDisplay{Label: "Partial", Severity: SeverityWarning}, true
	case ConnectionNoneConnected:
		return ConnectionDisplay{Label: "Disconnected", Severity: SeverityDanger}, true
	case ConnectionNoAccounts:
		return ConnectionDisplay{Label: "No Accounts", Severity: SeveritySecondary}, true
	case ConnectionError:
		return ConnectionDisplay{Label: "Error", Severity: SeverityWarning}, true
	}

	return ConnectionDisplay{}, false
}

// ConnectionCategories lists every recognized category, in display order.
func ConnectionCategories() []ConnectionCategory {
	return []ConnectionCategory{
		ConnectionAllConnected,
		ConnectionPartialConnected,
		ConnectionNoneConnected,
		ConnectionNoAccounts,
		ConnectionError,
	}
}
