package selectbox

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/logger"
	"github.com/alexisbeaulieu97/tailselect/internal/outside"
	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

// SearchBox is the text input the controller drives. The controller only
// pushes state into it. The hosting model feeds it messages through Update and
// hands reported changes back to OnSearchTextChange.
type SearchBox interface {
	SetValue(string)
	Value() string
	FocusAndSelectAll()
	Blur()
	Focused() bool
	SetWidth(int)
	Update(tea.Msg) (SearchChange, bool, tea.Cmd)
	View() string
}

// Controller owns the open/closed state and search text of one select
// control. The value is owned by the host: emitted values reach the host via
// Config.OnChange and come back through SetValue.
//
// All methods must be called from the event loop goroutine.
type Controller struct {
	cfg        Config
	open       bool
	searchText string
	value      selection.Value
	options    selection.Normalizer
	search     SearchBox
	watcher    *outside.Watcher
	log        *logger.Logger
}

// ControllerOption customises a Controller at construction time.
type ControllerOption func(*Controller)

// WithSearchBox attaches the search collaborator. A nil box is ignored.
func WithSearchBox(box SearchBox) ControllerOption {
	return func(c *Controller) {
		if box != nil {
			c.search = box
		}
	}
}

// WithDocument subscribes the controller to outside presses on doc. The
// subscription lasts until Close.
func WithDocument(doc *outside.Document) ControllerOption {
	return func(c *Controller) {
		if doc != nil {
			c.watcher = outside.Watch(doc, c.RequestClose)
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(log *logger.Logger) ControllerOption {
	return func(c *Controller) {
		c.log = log
	}
}

// NewController creates a controller seeded from cfg.MenuIsOpen.
func NewController(cfg Config, opts ...ControllerOption) *Controller {
	c := &Controller{
		cfg:   cfg.withDefaults(),
		value: cfg.Value,
	}
	c.open = c.cfg.MenuIsOpen
	c.options.Set(c.cfg.Options)

	for _, opt := range opts {
		opt(c)
	}

	if c.open && c.cfg.Searchable && c.search != nil {
		c.search.FocusAndSelectAll()
	}
	return c
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// IsOpen reports whether the dropdown is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// SearchText returns the current search text.
func (c *Controller) SearchText() string {
	return c.searchText
}

// Value returns the host-supplied selection.
func (c *Controller) Value() selection.Value {
	return c.value
}

// SetValue installs the host's current selection.
func (c *Controller) SetValue(v selection.Value) {
	c.value = v
}

// SetOptions installs the host's option list. The normalized list is only
// recomputed when items is a different slice from the current one.
func (c *Controller) SetOptions(items []selection.Item) {
	if c.options.Set(items) {
		c.cfg.Options = items
		c.log.Debugf("options replaced", map[string]any{"generation": c.options.Generation()})
	}
}

// List returns the normalized option list.
func (c *Controller) List() []selection.Item {
	return c.options.List()
}

// Theme returns the classes for the configured primary color.
func (c *Controller) Theme() theme.Classes {
	return theme.Resolve(c.cfg.PrimaryColor)
}

// SearchBox returns the attached search collaborator, or nil.
func (c *Controller) SearchBox() SearchBox {
	return c.search
}

// SetDisabled switches the disabled flag at runtime.
func (c *Controller) SetDisabled(disabled bool) {
	c.cfg.Disabled = disabled
}

// SetLoading switches the display-only loading flag.
func (c *Controller) SetLoading(loading bool) {
	c.cfg.Loading = loading
}

// Toggle flips the dropdown unless the control is disabled.
func (c *Controller) Toggle() {
	if c.cfg.Disabled {
		return
	}
	c.setOpen(!c.open)
}

// RequestClose closes the dropdown. Closing an already closed dropdown does nothing.
func (c *Controller) RequestClose() {
	if !c.open {
		return
	}
	c.setOpen(false)
}

// ActivateViaKey handles a key press on the control. It reports whether the
// key is an activation key, in which case its default effect must be
// suppressed by the caller.
func (c *Controller) ActivateViaKey(key string) bool {
	if !isActivationKey(key) {
		return false
	}
	if !c.cfg.Disabled {
		c.Toggle()
	}
	return true
}

// OnSearchTextChange forwards a raw search change to the host and records the text.
func (c *Controller) OnSearchTextChange(change SearchChange) {
	if c.cfg.OnSearchInputChange != nil {
		c.cfg.OnSearchInputChange(change)
	}
	c.searchText = change.Value
}

// Pick selects item. Disabled options and disabled controls ignore picks.
func (c *Controller) Pick(item *selection.Option) {
	if c.cfg.Disabled || item == nil || item.IsDisabled() {
		return
	}
	c.apply("pick", selection.Reconcile(c.value, c.cfg.Mode(), selection.Pick{Item: item}))
}

// Remove drops item from a multiple selection. It reports whether the
// interaction was consumed and must not also toggle the dropdown.
func (c *Controller) Remove(item *selection.Option) bool {
	if c.cfg.Disabled {
		return false
	}
	outcome := selection.Reconcile(c.value, c.cfg.Mode(), selection.Remove{Item: item})
	c.apply("remove", outcome)
	return outcome.StopPropagation
}

// Clear empties the selection when the control is clearable. It reports
// whether the interaction was consumed.
func (c *Controller) Clear() bool {
	if c.cfg.Disabled || !c.cfg.Clearable {
		return false
	}
	outcome := selection.Reconcile(c.value, c.cfg.Mode(), selection.Clear{})
	c.apply("clear", outcome)
	return outcome.StopPropagation
}

// Bind updates the screen region treated as inside the control.
func (c *Controller) Bind(region outside.Region) {
	if c.watcher != nil {
		c.watcher.Bind(region)
	}
}

// Close releases the outside-press subscription. It is safe to call more than once.
func (c *Controller) Close() error {
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Close()
}

func (c *Controller) apply(action string, outcome selection.Outcome) {
	if outcome.CloseMenu {
		c.RequestClose()
	}
	if !outcome.Emit {
		return
	}
	c.log.Debugf("value changed", map[string]any{"action": action, "value": outcome.Value.String()})
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(outcome.Value)
	}
}

func (c *Controller) setOpen(open bool) {
	if c.open == open {
		return
	}
	c.open = open
	c.log.Debugf("dropdown toggled", map[string]any{"open": open})

	if open {
		if c.cfg.Searchable && c.search != nil {
			c.search.FocusAndSelectAll()
		}
		return
	}

	c.searchText = ""
	if c.search != nil {
		c.search.SetValue("")
		c.search.Blur()
	}
}

// activationKey is the canonical key reported for a bound toggle press.
const activationKey = "enter"

func isActivationKey(key string) bool {
	switch key {
	case "enter", " ", "space":
		return true
	default:
		return false
	}
}
