package scrape

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed page with just the queries the scrapers need.
type Document struct {
	root *html.Node
	base *url.URL
}

// Input is a named form field.
type Input struct {
	Name  string
	Value string
}

// Form is the first form on a page with its action resolved against the
// page URL.
type Form struct {
	Action string
	Method string
	Inputs []Input
}

// Parse builds a Document. base resolves relative form actions.
func Parse(body []byte, base *url.URL) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &Document{root: root, base: base}, nil
}

// FirstForm returns the first <form> and its named <input> elements in
// document order. Repeated names keep their first value.
func (d *Document) FirstForm() (Form, bool) {
	form := findFirst(d.root, atom.Form)
	if form == nil {
		return Form{}, false
	}

	f := Form{
		Action: d.resolve(attr(form, "action")),
		Method: strings.ToUpper(attr(form, "method")),
	}
	if f.Method == "" {
		f.Method = "POST"
	}

	seen := map[string]bool{}
	walk(form, func(n *html.Node) bool {
		if n.DataAtom != atom.Input {
			return true
		}
		name := attr(n, "name")
		if name == "" || seen[name] {
			return true
		}
		seen[name] = true
		f.Inputs = append(f.Inputs, Input{Name: name, Value: attr(n, "value")})
		return true
	})
	return f, true
}

// Tables returns each <table> as rows of <td> cell texts. Header rows made of
// <th> cells come back empty but still count as rows.
func (d *Document) Tables() [][][]string {
	var tables [][][]string
	walk(d.root, func(n *html.Node) bool {
		if n.DataAtom != atom.Table {
			return true
		}
		tables = append(tables, rows(n))
		return true
	})
	return tables
}

// Texts returns the trimmed visible text of every element with one of the
// given tags, in document order. Containers and their children both appear.
func (d *Document) Texts(tags ...atom.Atom) []string {
	want := map[atom.Atom]bool{}
	for _, t := range tags {
		want[t] = true
	}
	var out []string
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && want[n.DataAtom] {
			if s := text(n); s != "" {
				out = append(out, s)
			}
		}
		return true
	})
	return out
}

func (d *Document) resolve(action string) string {
	if d.base == nil {
		return action
	}
	ref, err := url.Parse(strings.TrimSpace(action))
	if err != nil {
		return d.base.String()
	}
	return d.base.ResolveReference(ref).String()
}

// rows collects the rows of table without descending into nested tables.
func rows(table *html.Node) [][]string {
	var out [][]string
	walk(table, func(n *html.Node) bool {
		if n != table && n.DataAtom == atom.Table {
			return false
		}
		if n.DataAtom != atom.Tr {
			return true
		}
		var cells []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Td {
				cells = append(cells, text(c))
			}
		}
		out = append(out, cells)
		return false
	})
	return out
}

// walk visits n and its descendants depth first. Returning false from visit
// skips the node's children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if c.Type == html.ElementNode && c.DataAtom == a {
			found = c
			return false
		}
		return true
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// text concatenates descendant text nodes, skipping scripts and styles, and
// collapses runs of whitespace on each line.
func text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		switch {
		case c.DataAtom == atom.Script || c.DataAtom == atom.Style:
			return false
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
		case c.DataAtom == atom.Br:
			b.WriteByte('\n')
		}
		return true
	})

	lines := strings.Split(b.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
