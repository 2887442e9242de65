package eventmodels

import "fmt"

type ResourceKind string

const (
	ResourceKindTradeStatus       ResourceKind = "trade_status"
	ResourceKindAccountBalance    ResourceKind = "account_balance"
	ResourceKindCopierStatus      ResourceKind = "copier_status"
	ResourceKindConnectionsStatus ResourceKind = "connections_status"
)

const (
	AccountTypeMaster   = "master"
	AccountTypeFollower = "follower"
)

// RefreshTarget identifies one pollable resource instance. ResourceID is
// required for trade status and account balance targets; AccountType only
// applies to account balances. The two singleton kinds carry neither.
// Identity is the full tuple; targets are discovered fresh from the view on
// every poll cycle rather than held in a registry.
type RefreshTarget struct {
	Kind        ResourceKind
	ResourceID  string
	AccountType string
}

func (t RefreshTarget) Validate() error {
	switch t.Kind {
	case ResourceKindTradeStatus:
		if t.ResourceID == "" {
			return fmt.Errorf("RefreshTarget:Validate(): trade status target requires a resource id")
		}
	case ResourceKindAccountBalance:
		if t.ResourceID == "" {
			return fmt.Errorf("RefreshTarget:Validate(): account balance target requires a resource id")
		}

		if t.AccountType != AccountTypeMaster && t.AccountType != AccountTypeFollower {
			return fmt.Errorf("RefreshTarget:Validate(): invalid account type %q", t.AccountType)
		}
	case ResourceKindCopierStatus, ResourceKindConnectionsStatus:
		if t.ResourceID != "" || t.AccountType != "" {
			return fmt.Errorf("RefreshTarget:Validate(): %s is a singleton resource", t.Kind)
		}
	default:
		return fmt.Errorf("RefreshTarget:Validate(): unknown resource kind %q", t.Kind)
	}

	return nil
}

func (t RefreshTarget) String() string {
	if t.ResourceID == "" {
		return string(t.Kind)
	}

	if t.AccountType != "" {
		return fmt.Sprintf("%s/%s/%s", t.Kind, t.AccountType, t.ResourceID)
	}

	return fmt.Sprintf("%s/%s", t.Kind, t.ResourceID)
}
