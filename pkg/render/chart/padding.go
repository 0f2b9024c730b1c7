package chart

// Padding holds per-side insets in pixels.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Pad returns a padding of n on every side.
func Pad(n float64) Padding { return Padding{Top: n, Right: n, Bottom: n, Left: n} }

// GetPadding resolves an optional padding. Absent padding is zero on every
// side.
func GetPadding(p *Padding) Padding {
	if p == nil {
		return Padding{}
	}
	return *p
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }
