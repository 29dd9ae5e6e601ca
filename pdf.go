package wordsearch

import (
	"io"

	"github.com/go-pdf/fpdf"

	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// Page geometry in millimetres on A4 portrait.
const (
	pdfMargin   = 15.0
	pdfMaxCell  = 10.0
	pdfListLine = 6.0
)

// WritePDF writes the printable puzzle page: title, boxed grid and the words to find in three
// columns.
func (p *Puzzle) WritePDF(w io.Writer) error {
	return p.renderPDF(w, p.Title, "Words to find:", p.sortedWords(), 3, nil)
}

// WriteAnswerKeyPDF writes the same grid with every cell of a placed word highlighted, followed by
// each placement's start, end and direction.
func (p *Puzzle) WriteAnswerKeyPDF(w io.Writer) error {
	lines := make([]string, len(p.Placed))
	for i, pl := range p.Placed {
		lines[i] = placementLine(pl)
	}
	return p.renderPDF(w, p.Title+" - ANSWER KEY", "Answers:", lines, 1, grid.CoveredCells(p.Placed))
}

func (p *Puzzle) renderPDF(w io.Writer, title, heading string, list []string, columns int, highlight map[primitives.Cell]bool) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; accented titles and words go through the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(title), false)
	pdf.SetCreator("wordsearch", false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Courier", "B", 18)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	size := p.Grid.Size()
	side := pageW - 2*pdfMargin
	cell := pdfMaxCell
	if size > 0 {
		cell = min(pdfMaxCell, side/float64(size))
	}
	gridW := cell * float64(size)
	x0 := (pageW - gridW) / 2
	y0 := pdf.GetY() + 5

	pdf.SetFillColor(255, 235, 59)
	pdf.SetFont("Courier", "B", cell*1.6)
	for r := range size {
		for c := range size {
			txt := ""
			if ch, ok := p.Grid.Get(r, c); ok {
				txt = string(rune(ch))
			}
			pdf.SetXY(x0+float64(c)*cell, y0+float64(r)*cell)
			pdf.CellFormat(cell, cell, txt, "", 0, "C", highlight[primitives.Cell{Row: r, Col: c}], 0, "")
		}
	}
	pdf.SetLineWidth(0.5)
	pdf.Rect(x0, y0, gridW, gridW, "D")

	y := y0 + gridW + 10
	pdf.SetFont("Courier", "B", 12)
	pdf.SetXY(pdfMargin, y)
	pdf.CellFormat(0, pdfListLine, heading, "", 0, "L", false, 0, "")
	y += pdfListLine + 2

	pdf.SetFont("Courier", "", 10)
	colW := side / float64(columns)
	for i, line := range list {
		col := i % columns
		if col == 0 && i > 0 {
			y += pdfListLine
		}
		if y > pageH-pdfMargin-pdfListLine {
			pdf.AddPage()
			y = pdfMargin
		}
		pdf.SetXY(pdfMargin+float64(col)*colW, y)
		pdf.CellFormat(colW, pdfListLine, tr(line), "", 0, "L", false, 0, "")
	}

	return pdf.Output(w)
}
