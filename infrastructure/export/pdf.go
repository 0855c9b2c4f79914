package export

import (
	"github.com/go-pdf/fpdf"
)

// pdfScale maps the canvas onto an A4 landscape page in millimeters.
const pdfScale = 297.0 / canvasW

// writePDF draws the scene on a single landscape page.
func writePDF(path string, sc *scene) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, sc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)

	for _, l := range sc.Lines {
		pdf.SetDrawColor(hexRGB(l.Stroke))
		pdf.Line(l.X1*pdfScale, l.Y1*pdfScale, l.X2*pdfScale, l.Y2*pdfScale)
	}
	for _, c := range sc.Circles {
		pdf.SetFillColor(hexRGB(c.Fill))
		pdf.Circle(c.X*pdfScale, c.Y*pdfScale, c.R*pdfScale, "F")
		pdf.Text(c.X*pdfScale-2, c.Y*pdfScale-c.R*pdfScale-1, c.Label)
	}
	for _, p := range sc.Points {
		pdf.SetFillColor(31, 119, 180)
		pdf.Circle(p.X*pdfScale, p.Y*pdfScale, 1.2, "F")
		pdf.Text(p.X*pdfScale-2, p.Y*pdfScale-3, p.Label)
	}
	for _, poly := range sc.Polys {
		pdf.SetDrawColor(hexRGB(poly.Stroke))
		for i := range poly.Xs {
			j := (i + 1) % len(poly.Xs)
			pdf.Line(poly.Xs[i]*pdfScale, poly.Ys[i]*pdfScale, poly.Xs[j]*pdfScale, poly.Ys[j]*pdfScale)
		}
	}
	drawBarsPDF(pdf, sc.Bars)
	drawTextPDF(pdf, sc.Text)

	return pdf.OutputFileAndClose(path)
}

func drawBarsPDF(pdf *fpdf.Fpdf, bars []bar) {
	if len(bars) == 0 {
		return
	}
	rowH := (canvasH - 2*margin) / float64(len(bars)) * pdfScale
	barH := rowH * 0.6
	width := (canvasW - 2*margin - 200) * pdfScale
	x := (margin + 200) * pdfScale

	for i, b := range bars {
		y := margin*pdfScale + float64(i)*rowH
		pdf.SetFillColor(238, 238, 238)
		pdf.Rect(x, y, width, barH, "F")
		pdf.SetFillColor(31, 119, 180)
		pdf.Rect(x, y, width*b.Fraction, barH, "F")
		pdf.Text(margin*pdfScale, y+barH/2+1, b.Group+" / "+b.Label)
	}
}

func drawTextPDF(pdf *fpdf.Fpdf, blocks []textBlock) {
	if len(blocks) == 0 {
		return
	}
	pdf.SetY(margin * pdfScale)
	for _, block := range blocks {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, block.Heading, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, line := range block.Lines {
			pdf.CellFormat(0, 5, "  "+line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}
}

// hexRGB parses "#rrggbb" into its components. Malformed input draws black.
func hexRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	val := 0
	for _, c := range hex[1:] {
		val <<= 4
		switch {
		case c >= '0' && c <= '9':
			val |= int(c - '0')
		case c >= 'a' && c <= 'f':
			val |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			val |= int(c-'A') + 10
		default:
			return 0, 0, 0
		}
	}
	return val >> 16 & 0xff, val >> 8 & 0xff, val & 0xff
}
