package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultSectionBackground is used when SectionProps.Background is empty.
const DefaultSectionBackground = "bg-white"

// SectionProps configures a Section.
type SectionProps struct {
	ID         string
	Title      string
	Emoji      string
	Background string
	// Attrs are extra attributes placed on the section element.
	Attrs []g.Node
}

// Section is a full-width page band. The heading is rendered only when a
// title is set, with the emoji ahead of the title text.
func Section(props SectionProps, children ...g.Node) g.Node {
	bg := props.Background
	if bg == "" {
		bg = DefaultSectionBackground
	}

	return h.Section(
		g.If(props.ID != "", h.ID(props.ID)),
		h.Class(ClassNames(bg, "py-20")),
		g.Group(props.Attrs),
		h.Div(
			h.Class("container mx-auto px-4"),
			g.If(props.Title != "", sectionHeading(props.Emoji, props.Title)),
			g.Group(children),
		),
	)
}

func sectionHeading(emoji, title string) g.Node {
	text := title
	if emoji != "" {
		text = emoji + " " + title
	}
	return h.H2(
		h.Class("mb-10 flex items-center gap-3 text-3xl font-semibold"),
		g.Text(text),
	)
}
