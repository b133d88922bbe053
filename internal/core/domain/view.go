package domain

// ViewType identifies one of the presentational screens. The view router is
// a guardless state machine: every view is reachable from every other.
type ViewType string

const (
	ViewBalance    ViewType = "balance"
	ViewDaily      ViewType = "daily"
	ViewCash       ViewType = "cash"
	ViewReceivable ViewType = "receivable"
	ViewFuture     ViewType = "future"
	ViewHistory    ViewType = "history"
	ViewYearly     ViewType = "yearly"
)

// ViewTypes lists all views in navigation order.
func ViewTypes() []ViewType {
	return []ViewType{
		ViewBalance,
		ViewDaily,
		ViewCash,
		ViewReceivable,
		ViewFuture,
		ViewHistory,
		ViewYearly,
	}
}

// Valid reports whether v names a known view.
func (v ViewType) Valid() bool {
	for _, known := range ViewTypes() {
		if v == known {
			return true
		}
	}
	return false
}
