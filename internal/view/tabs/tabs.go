// Package tabs is a minimal show/hide-by-identifier component.
//
// A *Tabs handle owns the active identifier. Triggers and contents are
// methods on the handle, so only code that was handed the handle can take
// part in the selection; there is no ambient lookup. A handle lives for one
// render and is never persisted.
package tabs

import (
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// QueryParam carries the selected value on trigger requests.
const QueryParam = "tab"

const (
	triggerBase     = "px-3 py-1.5 text-sm rounded-md transition-colors"
	triggerActive   = "bg-primary-600 text-white"
	triggerInactive = "text-gray-700 hover:bg-gray-200"
)

// Tabs holds the active identifier for one tab group.
type Tabs struct {
	id       string
	endpoint string
	active   string
}

// Option configures a Tabs.
type Option func(*Tabs)

// WithID sets the DOM id of the container rendered by Root.
func WithID(id string) Option {
	return func(t *Tabs) { t.id = id }
}

// WithEndpoint makes triggers re-fetch the tab subtree from endpoint with
// the selected value in the "tab" query parameter.
func WithEndpoint(endpoint string) Option {
	return func(t *Tabs) { t.endpoint = endpoint }
}

// New returns a tab group whose active identifier starts at defaultValue.
func New(defaultValue string, opts ...Option) *Tabs {
	t := &Tabs{id: "tabs", active: defaultValue}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tabs) mustOwn(op string) {
	if t == nil {
		panic("tabs: " + op + " used outside of a tab group (nil *Tabs)")
	}
}

// Active returns the identifier currently selected.
func (t *Tabs) Active() string {
	t.mustOwn("Active")
	return t.active
}

// IsActive reports whether value is the selected identifier.
func (t *Tabs) IsActive(value string) bool {
	t.mustOwn("IsActive")
	return t.active == value
}

// Select makes value the active identifier. It is the only mutator.
func (t *Tabs) Select(value string) {
	t.mustOwn("Select")
	t.active = value
}

// Root wraps the tab group so triggers have a swap target.
func (t *Tabs) Root(children ...g.Node) g.Node {
	t.mustOwn("Root")
	return h.Div(
		h.ID(t.id),
		g.Attr("data-active-tab", t.active),
		g.Group(children),
	)
}

// List lays out a row of triggers.
func List(children ...g.Node) g.Node {
	return h.Div(
		h.Class("inline-flex gap-2 rounded-lg bg-gray-100 p-1"),
		g.Attr("role", "tablist"),
		g.Group(children),
	)
}

// Trigger renders a button that selects value.
func (t *Tabs) Trigger(value string, children ...g.Node) g.Node {
	t.mustOwn("Trigger")

	state := triggerInactive
	if t.active == value {
		state = triggerActive
	}

	return h.Button(
		h.Type("button"),
		h.Class(triggerBase+" "+state),
		g.Attr("data-tab-value", value),
		g.If(t.active == value, g.Attr("aria-selected", "true")),
		g.If(t.endpoint != "", g.Group{
			hx.Get(t.endpoint + "?" + QueryParam + "=" + url.QueryEscape(value)),
			hx.Target("#" + t.id),
			hx.Swap("outerHTML"),
		}),
		g.Group(children),
	)
}

// Content renders its children only while value is active; otherwise it
// renders nothing at all.
func (t *Tabs) Content(value, class string, children ...g.Node) g.Node {
	t.mustOwn("Content")

	if t.active != value {
		return g.Group(nil)
	}
	return h.Div(
		g.If(class != "", h.Class(class)),
		g.Attr("data-tab-content", value),
		g.Group(children),
	)
}
