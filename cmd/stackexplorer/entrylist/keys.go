package entrylist

import "github.com/charmbracelet/bubbles/key"

// Keys holds the bindings the entry list responds to. The parent model
// owns the canonical key map and passes the relevant subset down.
type Keys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}
