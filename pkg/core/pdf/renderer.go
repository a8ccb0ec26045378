// Package pdf renders markdown report bodies into self-contained PDF
// documents. Each Render call builds its own document object, so concurrent
// builds never share mutable renderer state.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/phuslu/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const (
	pageFont    = "Arial"
	bodySize    = 9.0
	lineHeight  = 5.0
	footerText  = "BFC 10-K Projections (Internal Simulation - Not for Filing)"
	contentLeft = 15.0
	// Letter page is 215.9mm wide; margins of 15mm each side.
	contentWidth = 185.9
)

// Renderer converts markdown into a finished PDF byte slice.
type Renderer struct {
	logger log.Logger
}

// NewRenderer creates a markdown-to-PDF renderer.
func NewRenderer(logger log.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render parses the markdown body and lays it out as a Letter-format PDF
// with the given title in the page header.
func (r *Renderer) Render(markdown, title string) ([]byte, error) {
	r.logger.Debug().
		Int("markdown_len", len(markdown)).
		Str("title", title).
		Msg("Rendering markdown to PDF")

	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetTitle(title, true)
	doc.SetMargins(contentLeft, 22, contentLeft)
	doc.SetAutoPageBreak(true, 20)

	doc.SetHeaderFunc(func() {
		doc.SetY(8)
		doc.SetFont(pageFont, "", 8)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(0, 5, title, "", 1, "L", false, 0, "")
		doc.SetDrawColor(180, 180, 180)
		doc.Line(contentLeft, 14, contentLeft+contentWidth, 14)
		doc.SetTextColor(0, 0, 0)
		doc.SetY(22)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(pageFont, "I", 7)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 8, fmt.Sprintf("Page %d | %s", doc.PageNo(), footerText), "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})
	doc.AddPage()
	doc.SetFont(pageFont, "", bodySize)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	source := []byte(markdown)
	root := md.Parser().Parse(text.NewReader(source))

	w := &docWriter{doc: doc, source: source}
	if err := ast.Walk(root, w.walk); err != nil {
		r.logger.Error().Err(err).Msg("Markdown layout failed")
		return nil, fmt.Errorf("layout markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		r.logger.Error().Err(err).Msg("PDF emission failed")
		return nil, fmt.Errorf("emit pdf: %w", err)
	}
	r.logger.Debug().Int("pdf_size", buf.Len()).Msg("PDF rendered")
	return buf.Bytes(), nil
}

// docWriter walks the goldmark AST and lays nodes out onto the document.
type docWriter struct {
	doc       *fpdf.Fpdf
	source    []byte
	bold      bool
	italic    bool
	listDepth int
}

func (w *docWriter) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		w.heading(node, entering)
	case *ast.Paragraph:
		if !entering {
			w.doc.Ln(7)
		}
	case *ast.Text:
		if entering {
			w.doc.Write(lineHeight, string(node.Segment.Value(w.source)))
		}
	case *ast.Emphasis:
		if node.Level == 2 {
			w.bold = entering
		} else {
			w.italic = entering
		}
		w.applyFont()
	case *ast.List:
		if entering {
			w.listDepth++
		} else {
			w.listDepth--
			if w.listDepth == 0 {
				w.doc.Ln(4)
			}
		}
	case *ast.ListItem:
		if entering {
			w.doc.Ln(lineHeight)
			w.doc.SetX(contentLeft + float64(w.listDepth)*4)
			w.doc.Write(lineHeight, "- ")
		}
	case *ast.ThematicBreak:
		if entering {
			w.doc.Ln(3)
			w.doc.SetDrawColor(150, 150, 150)
			w.doc.Line(contentLeft, w.doc.GetY(), contentLeft+contentWidth, w.doc.GetY())
			w.doc.Ln(3)
		}
	case *extast.Table:
		if entering {
			w.table(node)
			return ast.WalkSkipChildren, nil
		}
	}
	return ast.WalkContinue, nil
}

func (w *docWriter) heading(n *ast.Heading, entering bool) {
	if entering {
		w.doc.Ln(5)
		size := 10.0
		switch n.Level {
		case 1:
			size = 15
		case 2:
			size = 12
		case 3:
			size = 11
		}
		w.doc.SetFont(pageFont, "B", size)
		return
	}
	w.doc.Ln(6)
	w.applyFont()
}

func (w *docWriter) applyFont() {
	style := ""
	if w.bold {
		style += "B"
	}
	if w.italic {
		style += "I"
	}
	w.doc.SetFont(pageFont, style, bodySize)
}

// table lays out a pipe table with content-measured column widths scaled to
// the content area. Report tables are small; cells are single-line with
// ellipsis truncation when a value would overflow its column.
func (w *docWriter) table(n *extast.Table) {
	var rows [][]string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		// TableHeader holds the header cells directly; it is itself a row.
		switch section := child.(type) {
		case *extast.TableHeader:
			rows = append(rows, w.tableRow(section))
		case *extast.TableRow:
			rows = append(rows, w.tableRow(section))
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	w.doc.Ln(2)
	widths := w.columnWidths(rows)
	rowHeight := lineHeight + 1.5

	for i, row := range rows {
		if i == 0 {
			w.doc.SetFont(pageFont, "B", 8)
			w.doc.SetFillColor(225, 225, 225)
		} else {
			w.doc.SetFont(pageFont, "", 8)
			w.doc.SetFillColor(255, 255, 255)
		}
		w.doc.SetX(contentLeft)
		for j, width := range widths {
			cell := ""
			if j < len(row) {
				cell = w.fitCell(row[j], width-2)
			}
			align := "L"
			if j > 0 {
				align = "R"
			}
			w.doc.CellFormat(width, rowHeight, cell, "1", 0, align, i == 0, 0, "")
		}
		w.doc.Ln(rowHeight)
	}
	w.doc.Ln(3)
	w.applyFont()
}

func (w *docWriter) tableRow(n ast.Node) []string {
	var row []string
	for cell := n.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if _, ok := cell.(*extast.TableCell); ok {
			row = append(row, w.inlineText(cell))
		}
	}
	return row
}

// inlineText flattens the text content of an inline subtree.
func (w *docWriter) inlineText(n ast.Node) string {
	var b bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(w.source))
		} else {
			b.WriteString(w.inlineText(child))
		}
	}
	return b.String()
}

func (w *docWriter) columnWidths(rows [][]string) []float64 {
	cols := len(rows[0])
	widths := make([]float64, cols)

	w.doc.SetFont(pageFont, "B", 8)
	for i, row := range rows {
		if i == 1 {
			w.doc.SetFont(pageFont, "", 8)
		}
		for j, cell := range row {
			if j >= cols {
				continue
			}
			if cw := w.doc.GetStringWidth(cell) + 4; cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	total := 0.0
	for _, cw := range widths {
		total += cw
	}
	if total == 0 {
		return widths
	}
	// Scale to fill the content area exactly.
	scale := contentWidth / total
	for j := range widths {
		widths[j] *= scale
	}
	return widths
}

// fitCell truncates by runes so multibyte content never gets split.
func (w *docWriter) fitCell(s string, width float64) string {
	if w.doc.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 && w.doc.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
