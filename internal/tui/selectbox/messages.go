package selectbox

import "github.com/alexisbeaulieu97/tailselect/internal/domain/selection"

// ChangeMsg is sent to the host whenever the control emits a new value.
type ChangeMsg struct {
	Value selection.Value
}

// SearchMsg carries a raw search box change to the host.
type SearchMsg struct {
	Change SearchChange
}
