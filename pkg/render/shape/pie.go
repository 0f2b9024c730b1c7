package shape

import "math"

// Span is an angular interval in radians, clockwise from 12 o'clock.
type Span struct {
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Width returns the signed angular extent of the span.
func (s Span) Width() float64 { return s.EndAngle - s.StartAngle }

// Mid returns the angle bisecting the span.
func (s Span) Mid() float64 { return s.StartAngle + s.Width()/2 }

// Slice is one laid-out wedge. Data is the source element it was computed
// from; Index is its position in layout order.
type Slice[T any] struct {
	Span
	Data  T       `json:"-"`
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Pie lays out values as contiguous angular spans.
//
// Spans are proportional to Value(d) for positive values; zero, negative and
// NaN values get an empty span. Consecutive slices are separated by PadAngle,
// so n slices share (EndAngle-StartAngle) - PadAngle*(n-1) between them. The
// range is clamped to one full turn in either direction and the pad angle is
// clamped so the gaps always fit. Slices follow input order.
type Pie[T any] struct {
	StartAngle float64
	EndAngle   float64
	PadAngle   float64
	Value      func(T) float64
}

// Layout computes one slice per element of data, in order.
func (p Pie[T]) Layout(data []T) []Slice[T] {
	n := len(data)
	if n == 0 {
		return nil
	}

	a0 := p.StartAngle
	da := math.Min(tau, math.Max(-tau, p.EndAngle-a0))

	gaps := n - 1
	pad := p.PadAngle
	if gaps > 0 {
		pad = math.Min(math.Abs(da)/float64(gaps), pad)
	} else {
		pad = 0
	}
	pa := pad
	if da < 0 {
		pa = -pad
	}

	values := make([]float64, n)
	var sum float64
	for i, d := range data {
		if p.Value != nil {
			values[i] = p.Value(d)
		}
		if values[i] > 0 {
			sum += values[i]
		}
	}

	var k float64
	if sum > 0 {
		k = (da - float64(gaps)*pa) / sum
	}

	out := make([]Slice[T], n)
	for i, v := range values {
		a1 := a0
		if v > 0 {
			a1 += v * k
		}
		out[i] = Slice[T]{
			Span:  Span{StartAngle: a0, EndAngle: a1},
			Data:  data[i],
			Index: i,
			Value: v,
		}
		a0 = a1 + pa
	}
	return out
}
