package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent lets a gomponents tree sit inside a templ layout.
type nodeComponent struct {
	node g.Node
}

// Render satisfies templ.Component. gomponents does not take a context, so
// ctx is only checked for cancellation before writing.
func (a nodeComponent) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.node == nil {
		return nil
	}
	return a.node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return nodeComponent{node: node}
}
