package page

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"GameCatalog/internal/listing"
)

const sortSelectClass = "sortSelect"

// mounted keeps handles on the injected control nodes so Render can update them.
type mounted struct {
	search  *html.Node
	toggle  *html.Node
	options map[string]*html.Node
}

func element(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// buildControls returns the search input and the sort wrapper
// (toggle anchor followed by the key selector).
func buildControls(c listing.Controls, toggleClass string) (search, wrapper *html.Node, m *mounted) {
	m = &mounted{options: map[string]*html.Node{}}

	search = element(atom.Input,
		attr("type", "text"),
		attr("class", c.SearchClass),
		attr("placeholder", c.SearchPlaceholder),
	)
	m.search = search

	toggle := element(atom.A, attr("class", toggleClass))
	toggle.AppendChild(text(c.Glyph))
	m.toggle = toggle

	sel := element(atom.Select)
	for _, opt := range c.Options {
		o := element(atom.Option, attr("value", opt.Value))
		o.AppendChild(text(opt.Label))
		sel.AppendChild(o)
		m.options[opt.Value] = o
	}

	wrapper = element(atom.Div, attr("class", sortSelectClass))
	wrapper.AppendChild(toggle)
	wrapper.AppendChild(sel)

	m.update(c.SearchValue, c.Glyph, selectedValue(c.Options))
	return search, wrapper, m
}

func selectedValue(options []listing.Option) string {
	for _, opt := range options {
		if opt.Selected {
			return opt.Value
		}
	}
	return ""
}

func (m *mounted) update(query, glyph, selected string) {
	if m == nil {
		return
	}

	setAttr(m.search, "value", query, query != "")

	if m.toggle != nil {
		for c := m.toggle.FirstChild; c != nil; c = m.toggle.FirstChild {
			m.toggle.RemoveChild(c)
		}
		m.toggle.AppendChild(text(glyph))
	}

	for value, node := range m.options {
		setAttr(node, "selected", "", value == selected)
	}
}

// setAttr sets key to val when keep is true and removes it otherwise.
func setAttr(n *html.Node, key, val string, keep bool) {
	if n == nil {
		return
	}
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	if keep {
		attrs = append(attrs, attr(key, val))
	}
	n.Attr = attrs
}
