// Package ui holds the stateless building blocks the dashboard is assembled
// from. Every primitive takes an optional class string that is appended after
// its base classes; the stylesheet resolves conflicts by source order.
package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	cardBase        = "rounded-xl border border-gray-200 bg-white shadow-sm"
	cardHeaderBase  = "p-4"
	cardTitleBase   = "text-lg font-semibold"
	cardContentBase = "p-4 pt-0"
)

// ClassNames appends extra to base. No deduplication or precedence handling.
func ClassNames(base, extra string) string {
	if extra == "" {
		return base
	}
	if base == "" {
		return extra
	}
	return base + " " + extra
}

// Card is a bordered, rounded container.
func Card(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(ClassNames(cardBase, class)), g.Group(children))
}

// CardHeader is the padded top area of a Card.
func CardHeader(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(ClassNames(cardHeaderBase, class)), g.Group(children))
}

// CardTitle is the heading inside a CardHeader.
func CardTitle(class string, children ...g.Node) g.Node {
	return h.H3(h.Class(ClassNames(cardTitleBase, class)), g.Group(children))
}

// CardContent is the body of a Card.
func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(ClassNames(cardContentBase, class)), g.Group(children))
}
