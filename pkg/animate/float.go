package animate

// Float is an animatable scalar. It is the primitive every composite
// type ultimately decomposes into: one component, linear blending.
type Float float64

// Components returns 1.
func (f Float) Components() int { return 1 }

// Lerp returns the value linearly interpolated from f toward end.
func (f Float) Lerp(end Float, t float64) Float {
	return f + Float(t)*(end-f)
}

// Distance returns the single signed component end-f.
func (f Float) Distance(end Float) []float64 {
	return []float64{float64(end - f)}
}

// ApplyDeltas shifts f by one consumed component.
func (f Float) ApplyDeltas(d *Deltas) Float {
	return f + Float(d.Next())
}

// Equal reports exact equality.
func (f Float) Equal(end Float) bool { return f == end }
