package shape

import "math"

const (
	epsilon = 1e-12
	tau     = 2 * math.Pi
	halfPi  = math.Pi / 2
)

// Arc generates circular or annular sectors. The zero value draws nothing
// useful; set at least OuterRadius.
//
// CornerRadius rounds the four corners of a sector and is limited to half the
// ring thickness. Gaps between slices come from the pie layout, not the arc.
type Arc struct {
	InnerRadius  float64
	OuterRadius  float64
	CornerRadius float64
}

// Centroid returns the midpoint of the sector between startAngle and
// endAngle: the point on the bisecting ray at the mean of the inner and
// outer radius. Angles are radians clockwise from 12 o'clock.
func (a Arc) Centroid(startAngle, endAngle float64) (x, y float64) {
	r := (a.InnerRadius + a.OuterRadius) / 2
	t := (startAngle+endAngle)/2 - halfPi
	return math.Cos(t) * r, math.Sin(t) * r
}

// Path returns SVG path data for the sector between startAngle and endAngle,
// centred on the origin. Angles are radians clockwise from 12 o'clock.
func (a Arc) Path(startAngle, endAngle float64) string {
	var p Path
	a.draw(&p, startAngle, endAngle)
	p.Close()
	return p.String()
}

func (a Arc) draw(p *Path, startAngle, endAngle float64) {
	r0, r1 := a.InnerRadius, a.OuterRadius
	a0, a1 := startAngle-halfPi, endAngle-halfPi
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	if r1 < r0 {
		r0, r1 = r1, r0
	}

	switch {
	case !(r1 > epsilon):
		p.MoveTo(0, 0)

	case da > tau-epsilon:
		p.MoveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.Arc(0, 0, r1, a0, a1, !cw)
		if r0 > epsilon {
			p.MoveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.Arc(0, 0, r0, a1, a0, cw)
		}

	default:
		a.sector(p, r0, r1, a0, a1, da, cw)
	}
}

func (a Arc) sector(p *Path, r0, r1, a0, a1, da float64, cw bool) {
	rc := math.Min(math.Abs(r1-r0)/2, a.CornerRadius)
	rc0, rc1 := rc, rc

	x01, y01 := r1*math.Cos(a0), r1*math.Sin(a0)
	x10, y10 := r0*math.Cos(a1), r0*math.Sin(a1)
	x11, y11 := r1*math.Cos(a1), r1*math.Sin(a1)
	x00, y00 := r0*math.Cos(a0), r0*math.Sin(a0)

	// Narrow sectors cannot fit the full corner radius.
	if rc > epsilon && da < math.Pi {
		ocx, ocy := x10, y10
		if da > epsilon {
			ocx, ocy = intersect(x01, y01, x00, y00, x11, y11, x10, y10)
		}
		ax, ay := x01-ocx, y01-ocy
		bx, by := x11-ocx, y11-ocy
		kc := 1 / math.Sin(math.Acos((ax*bx+ay*by)/(math.Sqrt(ax*ax+ay*ay)*math.Sqrt(bx*bx+by*by)))/2)
		lc := math.Sqrt(ocx*ocx + ocy*ocy)
		rc0 = math.Min(rc, (r0-lc)/(kc-1))
		rc1 = math.Min(rc, (r1-lc)/(kc+1))
	}

	// Outer ring.
	switch {
	case !(da > epsilon):
		p.MoveTo(x01, y01)

	case rc1 > epsilon:
		t0 := cornerTangents(x00, y00, x01, y01, r1, rc1, cw)
		t1 := cornerTangents(x11, y11, x10, y10, r1, rc1, cw)
		p.MoveTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc1 < rc {
			// The two corners merged into one.
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r1, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), !cw)
			p.Arc(t1.cx, t1.cy, rc1, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}

	default:
		p.MoveTo(x01, y01)
		p.Arc(0, 0, r1, a0, a1, !cw)
	}

	// Inner ring, or the centre point for a plain sector.
	switch {
	case !(r0 > epsilon) || !(da > epsilon):
		p.LineTo(x10, y10)

	case rc0 > epsilon:
		t0 := cornerTangents(x10, y10, x11, y11, r0, -rc0, cw)
		t1 := cornerTangents(x01, y01, x00, y00, r0, -rc0, cw)
		p.LineTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc0 < rc {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r0, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), cw)
			p.Arc(t1.cx, t1.cy, rc0, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}

	default:
		p.Arc(0, 0, r0, a1, a0, cw)
	}
}

// intersect returns the intersection of the lines through (x0,y0)-(x1,y1)
// and (x2,y2)-(x3,y3).
func intersect(x0, y0, x1, y1, x2, y2, x3, y3 float64) (float64, float64) {
	x10, y10 := x1-x0, y1-y0
	x32, y32 := x3-x2, y3-y2
	t := (x32*(y0-y2) - y32*(x0-x2)) / (y32*x10 - x32*y10)
	return x0 + t*x10, y0 + t*y10
}

type tangent struct {
	cx, cy   float64 // corner circle centre
	x01, y01 float64 // offset from centre to the tangent on the radial edge
	x11, y11 float64 // offset from centre to the tangent on the ring
}

// cornerTangents computes the circle of radius rc tangent to both the radial
// edge (x0,y0)-(x1,y1) and the ring of radius r1.
func cornerTangents(x0, y0, x1, y1, r1, rc float64, cw bool) tangent {
	x01, y01 := x0-x1, y0-y1
	lo := rc
	if !cw {
		lo = -rc
	}
	lo /= math.Sqrt(x01*x01 + y01*y01)
	ox, oy := lo*y01, -lo*x01
	x11, y11 := x0+ox, y0+oy
	x10, y10 := x1+ox, y1+oy
	x00, y00 := (x11+x10)/2, (y11+y10)/2
	dx, dy := x10-x11, y10-y11
	d2 := dx*dx + dy*dy
	r := r1 - rc
	D := x11*y10 - x10*y11
	d := math.Sqrt(math.Max(0, r*r*d2-D*D))
	if dy < 0 {
		d = -d
	}
	cx0, cy0 := (D*dy-dx*d)/d2, (-D*dx-dy*d)/d2
	cx1, cy1 := (D*dy+dx*d)/d2, (-D*dx+dy*d)/d2
	dx0, dy0 := cx0-x00, cy0-y00
	dx1, dy1 := cx1-x00, cy1-y00

	// Keep the closer of the two candidate centres.
	if dx0*dx0+dy0*dy0 > dx1*dx1+dy1*dy1 {
		cx0, cy0 = cx1, cy1
	}

	return tangent{
		cx: cx0, cy: cy0,
		x01: -ox, y01: -oy,
		x11: cx0 * (r1/r - 1),
		y11: cy0 * (r1/r - 1),
	}
}
