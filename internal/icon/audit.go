package icon

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/conneroisu/templar-breakpoints/internal/errors"
)

// Label is one text element of the icon.
type Label struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Report describes the structure of an icon document.
type Report struct {
	ViewBox      string   `json:"view_box" yaml:"view_box"`
	Labels       []Label  `json:"labels" yaml:"labels"`
	MediaQueries []string `json:"media_queries" yaml:"media_queries"`
}

// Texts returns the label texts in document order.
func (r *Report) Texts() []string {
	texts := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		texts[i] = l.Text
	}
	return texts
}

var mediaQueryPattern = regexp.MustCompile(`@media \(width>=([^)]*)\)`)

// Audit parses icon markup and checks the invariants the toolbar relies on:
// a single svg root with the fixed view box, a "_" label, unique ids and
// exactly one media query per breakpoint label.
func Audit(markup string) (*Report, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, errors.WrapValidation(err, errors.ErrCodeMarkupInvalid, "failed to parse icon markup")
	}

	svg := findElement(doc, atom.Svg)
	if svg == nil {
		return nil, errors.NewValidationError(errors.ErrCodeMarkupInvalid, "icon markup has no svg element")
	}

	report := &Report{ViewBox: attr(svg, "viewBox")}
	if report.ViewBox != ViewBox {
		return nil, errors.NewValidationError(errors.ErrCodeMarkupInvalid,
			fmt.Sprintf("unexpected viewBox %q", report.ViewBox))
	}

	var style strings.Builder
	ids := make(map[string]bool)
	for c := svg.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "style":
			style.WriteString(textContent(c))
		case "text":
			id := attr(c, "id")
			if ids[id] {
				return nil, errors.NewValidationError(errors.ErrCodeMarkupInvalid,
					fmt.Sprintf("duplicate label id %q", id))
			}
			ids[id] = true
			report.Labels = append(report.Labels, Label{ID: id, Text: textContent(c)})
		}
	}

	if !ids[BelowID] {
		return nil, errors.NewValidationError(errors.ErrCodeMarkupInvalid, "icon markup has no default label")
	}

	for _, m := range mediaQueryPattern.FindAllStringSubmatch(style.String(), -1) {
		report.MediaQueries = append(report.MediaQueries, m[1])
	}
	if len(report.MediaQueries) != len(report.Labels)-1 {
		return nil, errors.NewValidationError(errors.ErrCodeMarkupInvalid,
			fmt.Sprintf("%d media queries for %d breakpoint labels", len(report.MediaQueries), len(report.Labels)-1))
	}

	return report, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
