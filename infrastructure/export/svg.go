package export

import (
	"fmt"
	"html"
	"os"
	"strings"
)

// writeSVG emits the scene as a standalone SVG document.
func writeSVG(path string, sc *scene) error {
	return os.WriteFile(path, []byte(svgDocument(sc)), 0o644)
}

func svgDocument(sc *scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		canvasW, canvasH, canvasW, canvasH)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	fmt.Fprintf(&b, `<text x="%d" y="%.0f" text-anchor="middle" font-size="20" fill="#333">%s</text>`+"\n",
		canvasW/2, margin/2, html.EscapeString(sc.Title))

	for _, l := range sc.Lines {
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
			l.X1, l.Y1, l.X2, l.Y2, l.Stroke)
	}
	for _, c := range sc.Circles {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", c.X, c.Y, c.R, c.Fill)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11" fill="#333">%s</text>`+"\n",
			c.X, c.Y-c.R-6, html.EscapeString(c.Label))
	}
	for _, p := range sc.Points {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="4" fill="#1f77b4"/>`+"\n", p.X, p.Y)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11" fill="#333">%s</text>`+"\n",
			p.X, p.Y-12, html.EscapeString(p.Label))
	}
	for _, poly := range sc.Polys {
		pts := make([]string, len(poly.Xs))
		for i := range poly.Xs {
			pts[i] = fmt.Sprintf("%.1f,%.1f", poly.Xs[i], poly.Ys[i])
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
			strings.Join(pts, " "), poly.Stroke)
	}
	writeBarsSVG(&b, sc.Bars)
	writeTextSVG(&b, sc.Text)

	b.WriteString("</svg>\n")
	return b.String()
}

func writeBarsSVG(b *strings.Builder, bars []bar) {
	if len(bars) == 0 {
		return
	}
	rowH := (canvasH - 2*margin) / float64(len(bars))
	barH := rowH * 0.6
	width := canvasW - 2*margin - 200

	for i, bb := range bars {
		y := margin + float64(i)*rowH
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#eeeeee"/>`+"\n",
			margin+200, y, width, barH)
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#1f77b4"/>`+"\n",
			margin+200, y, width*bb.Fraction, barH)
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="12" fill="#333">%s</text>`+"\n",
			margin, y+barH/2+4, html.EscapeString(bb.Group+" / "+bb.Label))
	}
}

func writeTextSVG(b *strings.Builder, blocks []textBlock) {
	y := margin + 20.0
	for _, block := range blocks {
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="16" fill="#333">%s</text>`+"\n",
			margin, y, html.EscapeString(block.Heading))
		y += 24
		for _, line := range block.Lines {
			fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="12" fill="#555">%s</text>`+"\n",
				margin+16, y, html.EscapeString(line))
			y += 18
		}
		y += 12
	}
}
