package export

import (
	"github.com/fogleman/gg"
)

// writePNG draws the scene with gg and writes it as PNG.
func writePNG(path string, sc *scene) error {
	dc := gg.NewContext(canvasW, canvasH)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	dc.SetHexColor("#333333")
	dc.DrawStringAnchored(sc.Title, canvasW/2, margin/2, 0.5, 0.5)

	for _, l := range sc.Lines {
		dc.SetHexColor(l.Stroke)
		dc.SetLineWidth(1)
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
		dc.Stroke()
	}

	for _, c := range sc.Circles {
		dc.SetHexColor(c.Fill)
		dc.DrawCircle(c.X, c.Y, c.R)
		dc.Fill()
		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(c.Label, c.X, c.Y-c.R-6, 0.5, 0.5)
	}

	for _, p := range sc.Points {
		dc.SetHexColor("#1f77b4")
		dc.DrawCircle(p.X, p.Y, 4)
		dc.Fill()
		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(p.Label, p.X, p.Y-12, 0.5, 0.5)
	}

	for _, poly := range sc.Polys {
		dc.SetHexColor(poly.Stroke)
		dc.SetLineWidth(2)
		for i := range poly.Xs {
			if i == 0 {
				dc.MoveTo(poly.Xs[i], poly.Ys[i])
			} else {
				dc.LineTo(poly.Xs[i], poly.Ys[i])
			}
		}
		dc.ClosePath()
		dc.Stroke()
	}

	drawBarsPNG(dc, sc.Bars)
	drawTextPNG(dc, sc.Text)

	return dc.SavePNG(path)
}

func drawBarsPNG(dc *gg.Context, bars []bar) {
	if len(bars) == 0 {
		return
	}
	rowH := (canvasH - 2*margin) / float64(len(bars))
	barH := rowH * 0.6
	width := canvasW - 2*margin - 200

	for i, b := range bars {
		y := margin + float64(i)*rowH
		dc.SetHexColor("#eeeeee")
		dc.DrawRectangle(margin+200, y, width, barH)
		dc.Fill()
		dc.SetHexColor("#1f77b4")
		dc.DrawRectangle(margin+200, y, width*b.Fraction, barH)
		dc.Fill()
		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(b.Group+" / "+b.Label, margin, y+barH/2, 0, 0.5)
	}
}

func drawTextPNG(dc *gg.Context, blocks []textBlock) {
	y := margin + 20.0
	dc.SetHexColor("#333333")
	for _, block := range blocks {
		dc.DrawString(block.Heading, margin, y)
		y += 24
		for _, line := range block.Lines {
			dc.DrawString("  "+line, margin, y)
			y += 18
		}
		y += 12
	}
}
