package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DescriptionKind tags which variant a Description holds.
type DescriptionKind int

const (
	// KindPlainText is a bare sentence, wrapped in a paragraph when rendered.
	KindPlainText DescriptionKind = iota + 1
	// KindRichContent is prebuilt markup, rendered as-is.
	KindRichContent
)

// Description is either plain text or rich content. The variant is fixed when
// the value is constructed; renderers switch on Kind and never inspect the
// payload.
type Description struct {
	kind DescriptionKind
	text string
	node g.Node
}

// PlainText builds a plain-text description.
func PlainText(text string) Description {
	return Description{kind: KindPlainText, text: text}
}

// RichContent builds a description from arbitrary markup.
func RichContent(node g.Node) Description {
	return Description{kind: KindRichContent, node: node}
}

// BulletList builds rich content made of an optional lead sentence followed
// by a bulleted list.
func BulletList(lead string, items ...string) Description {
	if lead == "" && len(items) == 0 {
		return Description{kind: KindRichContent}
	}

	listClass := "list-disc list-inside text-sm space-y-1"
	if lead != "" {
		listClass = "list-disc list-inside text-sm mt-2 space-y-1"
	}

	var nodes g.Group
	if lead != "" {
		nodes = append(nodes, g.Text(lead))
	}
	if len(items) > 0 {
		nodes = append(nodes, h.Ul(
			h.Class(listClass),
			g.Map(items, func(item string) g.Node {
				return h.Li(g.Text(item))
			}),
		))
	}
	return RichContent(nodes)
}

// Kind reports which variant d holds. The zero Description has kind 0.
func (d Description) Kind() DescriptionKind { return d.kind }

// IsPlainText reports whether d is the plain-text variant.
func (d Description) IsPlainText() bool { return d.kind == KindPlainText }

// Text returns the plain-text payload, or "" for rich content.
func (d Description) Text() string { return d.text }

// Node returns the rich-content payload, or nil for plain text.
func (d Description) Node() g.Node { return d.node }

// IsZero reports whether d carries nothing renderable.
func (d Description) IsZero() bool {
	switch d.kind {
	case KindPlainText:
		return d.text == ""
	case KindRichContent:
		return d.node == nil
	default:
		return true
	}
}

// richDescription is the JSON object form of a bulleted description.
type richDescription struct {
	Lead  string   `json:"lead"`
	Items []string `json:"items"`
}

// UnmarshalJSON decodes a JSON string as PlainText and an object
// {"lead": "...", "items": [...]} as a BulletList. Other keys in the object
// are rejected.
func (d *Description) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*d = Description{}
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*d = PlainText(text)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var rich richDescription
	if err := dec.Decode(&rich); err != nil {
		return fmt.Errorf("description must be a string or a {lead, items} object: %w", err)
	}
	*d = BulletList(rich.Lead, rich.Items...)
	return nil
}
