// Package export renders sweep series as standalone SVG line charts.
package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

const padding = 0.1

type bounds struct {
	minX, maxX, minY, maxY float64
}

func seriesBounds(xs, ys []float64) bounds {
	b := bounds{minX: math.Inf(1), maxX: math.Inf(-1), minY: math.Inf(1), maxY: math.Inf(-1)}
	for i := range xs {
		b.minX = math.Min(b.minX, xs[i])
		b.maxX = math.Max(b.maxX, xs[i])
		b.minY = math.Min(b.minY, ys[i])
		b.maxY = math.Max(b.maxY, ys[i])
	}

	rangeX, rangeY := b.maxX-b.minX, b.maxY-b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * padding
	b.maxX += rangeX * padding
	b.minY -= rangeY * padding
	b.maxY += rangeY * padding
	return b
}

// SeriesToSVG draws ys against xs as a single path. Non-finite points are
// skipped and break the line. Fewer than two points yields "".
func SeriesToSVG(xs, ys []float64, width, height int, title, stroke string) string {
	n := min(len(xs), len(ys))
	fx, fy := make([]float64, 0, n), make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			fx, fy = append(fx, xs[i]), append(fy, ys[i])
		}
	}
	if len(fx) < 2 {
		return ""
	}
	b := seriesBounds(fx, fy)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="8" y="16" fill="#888899" font-family="monospace" font-size="12">%s</text>
<text x="8" y="%d" fill="#666688" font-family="monospace" font-size="10">%g .. %g</text>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, escape(title), height-6, fx[0], fx[len(fx)-1], stroke)

	cmd := "M"
	for i := 0; i < n; i++ {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			cmd = "M"
			continue
		}
		x := (xs[i] - b.minX) / (b.maxX - b.minX) * float64(width)
		y := float64(height) - (ys[i]-b.minY)/(b.maxY-b.minY)*float64(height)
		if cmd == "L" {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f", cmd, x, y)
		cmd = "L"
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func WriteSVG(path string, xs, ys []float64, width, height int, title string) error {
	svg := SeriesToSVG(xs, ys, width, height, title, "#00ccff")
	if svg == "" {
		return fmt.Errorf("export: need at least two finite points, got %d", len(xs))
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}
