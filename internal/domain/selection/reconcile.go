package selection

// Action is a user request against the current selection: Pick, Remove or Clear.
type Action interface {
	isAction()
}

// Pick selects an option.
type Pick struct {
	Item *Option
}

// Remove drops every selected entry sharing the item's value key.
type Remove struct {
	Item *Option
}

// Clear empties the selection.
type Clear struct{}

func (Pick) isAction()   {}
func (Remove) isAction() {}
func (Clear) isAction()  {}

// Outcome is what the controller should do after an action.
type Outcome struct {
	// Value is the next selection; only meaningful when Emit is set.
	Value Value
	// Emit reports whether the host change callback must fire.
	Emit bool
	// CloseMenu asks the controller to close the dropdown.
	CloseMenu bool
	// StopPropagation tells the caller not to also handle the interaction as
	// a toggle of the dropdown.
	StopPropagation bool
}

// Reconcile computes the next selection for action given the current value and
// mode. Mode/value combinations that do not agree degrade to a no-op outcome.
func Reconcile(current Value, mode Mode, action Action) Outcome {
	switch a := action.(type) {
	case Pick:
		return reconcilePick(current, mode, a.Item)
	case Remove:
		return reconcileRemove(current, mode, a.Item)
	case Clear:
		return Outcome{Value: None(), Emit: true, StopPropagation: true}
	default:
		return Outcome{}
	}
}

// reconcilePick compares item against the whole current value. In multiple
// mode that comparison never matches a single item, so picking an option that
// is already selected appends it again.
func reconcilePick(current Value, mode Mode, item *Option) Outcome {
	if item == nil {
		return Outcome{}
	}
	if selected, ok := current.Single(); ok && selected == item {
		return Outcome{}
	}

	switch mode {
	case ModeSingle:
		if current.kind == valueMulti {
			return Outcome{}
		}
		return Outcome{Value: Single(item), Emit: true, CloseMenu: true}
	case ModeMultiple:
		if current.kind == valueSingle {
			return Outcome{}
		}
		next := make([]*Option, 0, len(current.multi)+1)
		next = append(next, current.multi...)
		next = append(next, item)
		return Outcome{Value: Value{kind: valueMulti, multi: next}, Emit: true}
	default:
		return Outcome{}
	}
}

func reconcileRemove(current Value, mode Mode, item *Option) Outcome {
	if item == nil || mode != ModeMultiple || current.kind != valueMulti || len(current.multi) == 0 {
		return Outcome{}
	}

	remaining := make([]*Option, 0, len(current.multi))
	for _, opt := range current.multi {
		if opt.Value != item.Value {
			remaining = append(remaining, opt)
		}
	}
	if len(remaining) == 0 {
		return Outcome{Value: None(), Emit: true, StopPropagation: true}
	}
	return Outcome{Value: Value{kind: valueMulti, multi: remaining}, Emit: true, StopPropagation: true}
}
