package chart

// Float returns a pointer to v, for optional numeric props where zero is a
// meaningful value.
func Float(v float64) *float64 { return &v }

// FloatOr returns *p, or def when p is nil.
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
