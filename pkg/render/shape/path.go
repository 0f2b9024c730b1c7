package shape

import (
	"math"
	"strconv"
	"strings"
)

const (
	pathEpsilon    = 1e-6
	pathTauEpsilon = tau - pathEpsilon
)

// Path accumulates SVG path data. The zero value is an empty path.
type Path struct {
	buf      strings.Builder
	x0, y0   float64 // start of the current subpath
	x1, y1   float64 // current point
	hasPoint bool
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.x0, p.y0, p.x1, p.y1 = x, y, x, y
	p.hasPoint = true
	p.buf.WriteString("M" + formatNumber(x) + "," + formatNumber(y))
}

// LineTo draws a straight line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.x1, p.y1 = x, y
	p.hasPoint = true
	p.buf.WriteString("L" + formatNumber(x) + "," + formatNumber(y))
}

// Arc draws a circular arc centred on (x, y) from angle a0 to a1. Angles are
// in the standard SVG orientation (0 points right). If the path already has a
// current point that does not coincide with the arc start, a line joins them.
// Negative radii are drawn with their magnitude.
func (p *Path) Arc(x, y, r, a0, a1 float64, ccw bool) {
	r = math.Abs(r)
	dx, dy := r*math.Cos(a0), r*math.Sin(a0)
	sx, sy := x+dx, y+dy

	sweep := "1"
	da := a1 - a0
	if ccw {
		sweep = "0"
		da = a0 - a1
	}

	if !p.hasPoint {
		p.MoveTo(sx, sy)
	} else if math.Abs(p.x1-sx) > pathEpsilon || math.Abs(p.y1-sy) > pathEpsilon {
		p.LineTo(sx, sy)
	}

	if r == 0 {
		return
	}
	if da < 0 {
		da = math.Mod(da, tau) + tau
	}

	rs := formatNumber(r)
	switch {
	case da > pathTauEpsilon:
		// A single SVG arc cannot describe a full circle, so draw two halves.
		p.buf.WriteString("A" + rs + "," + rs + ",0,1," + sweep + "," + formatNumber(x-dx) + "," + formatNumber(y-dy))
		p.buf.WriteString("A" + rs + "," + rs + ",0,1," + sweep + "," + formatNumber(sx) + "," + formatNumber(sy))
		p.x1, p.y1 = sx, sy
	case da > pathEpsilon:
		ex, ey := x+r*math.Cos(a1), y+r*math.Sin(a1)
		large := "0"
		if da >= math.Pi {
			large = "1"
		}
		p.buf.WriteString("A" + rs + "," + rs + ",0," + large + "," + sweep + "," + formatNumber(ex) + "," + formatNumber(ey))
		p.x1, p.y1 = ex, ey
	}
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.hasPoint {
		return
	}
	p.x1, p.y1 = p.x0, p.y0
	p.buf.WriteString("Z")
}

// String returns the accumulated path data.
func (p *Path) String() string { return p.buf.String() }

// formatNumber rounds to four decimals and never emits exponent notation or
// negative zero.
func formatNumber(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
