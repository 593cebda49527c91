package render

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParsePage parses a full HTML document.
func ParsePage(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// WritePage serializes doc; text and attribute values are escaped here.
func WritePage(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

type attr struct{ key, val string }

func a(key, val string) attr { return attr{key: key, val: val} }

func el(tag string, attrs []attr, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, at := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: at.key, Val: at.val})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func classes(cs ...string) []attr {
	return []attr{a("class", strings.Join(cs, " "))}
}

// byID selects the element with the given id. The selection is empty when
// the page has none.
func byID(q *goquery.Document, id string) *goquery.Selection {
	return q.Find("#" + id).First()
}

// replaceChildren empties sel and appends nodes. Empty returns the removed
// children, so it is not chained.
func replaceChildren(sel *goquery.Selection, nodes ...*html.Node) {
	sel.Empty()
	sel.AppendNodes(nodes...)
}
