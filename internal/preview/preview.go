// Package preview renders a standalone HTML page for inspecting a generated
// breakpoint icon. Resizing the browser window shows which label the icon
// switches to at each threshold.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/icon"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#111}` +
	`.icon{width:8rem;height:8rem;border:1px solid #ccc;border-radius:.5rem;padding:.5rem}` +
	`.icon svg{width:100%;height:100%}` +
	`table{border-collapse:collapse;margin-top:1.5rem}` +
	`th,td{border:1px solid #ddd;padding:.25rem .75rem;text-align:left}` +
	`code{font-family:ui-monospace,monospace}`

// Row describes one label of the icon.
type Row struct {
	Name  string
	Value string
	ID    string
	Query string
}

// Rows lists the icon labels in the order the icon switches between them.
func Rows(list breakpoint.List) []Row {
	rows := make([]Row, 0, len(list)+1)

	below := "*"
	if smallest, ok := list.Smallest(); ok && smallest.Name != "" {
		below = smallest.Name
	}
	rows = append(rows, Row{Name: "<" + below, ID: icon.BelowID})

	for i, bp := range list {
		rows = append(rows, Row{
			Name:  bp.Name,
			Value: bp.Value.CSS(),
			ID:    icon.GenerateID(i),
			Query: fmt.Sprintf("(width>=%s)", bp.Value.CSS()),
		})
	}
	return rows
}

// Page renders the preview document.
func Page(title string, list breakpoint.List, markup string) templ.Component {
	heading := cases.Title(language.English).String(title)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout(heading).Render(templ.WithChildren(ctx, body(heading, Rows(list), markup)), w)
	})
}

func layout(title string) templ.Component {
	head := element(`<!doctype html><html lang="en"><head><meta charset="utf-8">`+
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		`<style>`+pageStyle+`</style></head>`,
		element("<title>", "</title>", text(title)))

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.Join(head, element("<body>", "</body></html>", templ.GetChildren(ctx))).Render(ctx, w)
	})
}

func body(heading string, rows []Row, markup string) templ.Component {
	return templ.Join(
		element("<h1>", "</h1>", text(heading)),
		// Generated markup, already escaped
		element(`<div class="icon">`, "</div>", templ.Raw(markup)),
		table(rows),
	)
}

func table(rows []Row) templ.Component {
	children := make([]templ.Component, 0, len(rows))
	for _, r := range rows {
		children = append(children, row(r))
	}
	return element(`<table><thead><tr><th>Label</th><th>Value</th><th>Id</th><th>Media query</th></tr></thead><tbody>`,
		`</tbody></table>`, children...)
}

func row(r Row) templ.Component {
	return element("<tr>", "</tr>",
		element("<td>", "</td>", text(r.Name)),
		codeCell(r.Value),
		codeCell("#"+r.ID),
		codeCell(r.Query),
	)
}

func codeCell(s string) templ.Component {
	return element("<td><code>", "</code></td>", text(s))
}

// element wraps children in literal markup.
func element(before, after string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, before); err != nil {
			return err
		}
		if err := templ.Join(children...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, after)
		return err
	})
}

// text renders s escaped.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Render renders a component to a string.
func Render(ctx context.Context, component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", errors.NewInternalError(errors.ErrCodeInternalError, "failed to render preview", err)
	}
	return buf.String(), nil
}

// WriteFile renders component into path, creating parent directories.
func WriteFile(ctx context.Context, path string, component templ.Component) error {
	page, err := Render(ctx, component)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapIO(err, errors.ErrCodeInvalidPath, "failed to create preview directory").
				WithFile(dir)
		}
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return errors.WrapIO(err, errors.ErrCodeInvalidPath, "failed to write preview").WithFile(path)
	}
	return nil
}
