package icon

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
)

// BelowID is the id of the label shown under the smallest breakpoint.
const BelowID = "_"

// ViewBox is the fixed coordinate system of the icon.
const ViewBox = "-10 -10 20 20"

const (
	svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" fill="currentColor" aria-hidden="true" viewBox="` + ViewBox + `">`

	// Shared by every label; all labels start hidden.
	textStyle = "text{" +
		"-moz-osx-font-smoothing:grayscale;" +
		"-webkit-font-smoothing:antialiased;" +
		"-webkit-text-size-adjust:100%;" +
		"display:none;" +
		"dominant-baseline:middle;" +
		"font-family:var(--default-mono-font-family,var(--font-mono,ui-monospace,SFMono-Regular,Menlo,Monaco,Consolas,&quot;Liberation Mono&quot;,&quot;Courier New&quot;,monospace));" +
		"font-feature-settings:var(--default-mono-font-feature-settings,var(--font-mono--font-feature-settings,normal));" +
		"font-variation-settings:var(--default-mono-font-variation-settings,var(--font-mono--font-variation-settings,normal));" +
		"text-anchor:middle" +
		"}"

	textAttrs = ` lengthAdjust="spacingAndGlyphs" textLength="20"`
)

// Synthesize renders the icon for an ordered breakpoint list.
//
// The "_" label is visible by default. Each breakpoint adds a
// min-width media query that shows its own label and hides the previous one,
// so exactly one label is visible at any width.
func Synthesize(list breakpoint.List) string {
	var b strings.Builder

	b.WriteString(svgOpen)
	b.WriteString("<style>")
	b.WriteString(textStyle)
	b.WriteString("#" + BelowID + "{display:inline}")
	for i, bp := range list {
		previous := BelowID
		if i > 0 {
			previous = GenerateID(i - 1)
		}
		b.WriteString("@media (width>=")
		b.WriteString(templ.EscapeString(bp.Value.CSS()))
		b.WriteString("){#")
		b.WriteString(GenerateID(i))
		b.WriteString("{display:inline}#")
		b.WriteString(previous)
		b.WriteString("{display:none}}")
	}
	b.WriteString("</style>")

	below := "*"
	if smallest, ok := list.Smallest(); ok && smallest.Name != "" {
		below = smallest.Name
	}
	writeText(&b, BelowID, "<"+below)
	for i, bp := range list {
		writeText(&b, GenerateID(i), bp.Name)
	}

	b.WriteString("</svg>")
	return b.String()
}

func writeText(b *strings.Builder, id, label string) {
	b.WriteString(`<text id="`)
	b.WriteString(id)
	b.WriteString(`"`)
	b.WriteString(textAttrs)
	b.WriteString(">")
	b.WriteString(templ.EscapeString(label))
	b.WriteString("</text>")
}
