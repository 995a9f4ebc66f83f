// Package animate defines the capability a value type implements to
// participate in interpolation.
//
// A type T satisfies [Animate] when it can report how many scalar degrees
// of freedom it decomposes into, blend itself toward another value of the
// same type, and measure a per-component distance to another value. The
// transition engine treats T opaquely through this interface, so any type
// can be animated without registration: numbers, colors, sizes, whole
// theme tables.
//
// Components must be stable for a value's shape. Composite types whose
// live size can vary (such as theme entry lists) must fix their component
// count at the type level and pad or truncate instances to it, so that a
// [Transition] never observes a value-dependent count. See
// [github.com/go-drift/motion/pkg/highlight.Theme] for an example of this
// policy.
package animate

// Animate is the contract a value type implements to be animated.
//
// All methods use value semantics: the receiver is never mutated. Lerp
// treats the receiver as the start point and returns the blended value.
// This mirrors how composite types are built up from their fields.
type Animate[T any] interface {
	// Components reports the fixed number of independent scalar degrees
	// of freedom the value decomposes into. It depends only on the
	// value's shape, never on its contents.
	Components() int

	// Lerp returns the value blended from the receiver toward end at the
	// given fraction in [0, 1]. Fractions outside the range extrapolate;
	// callers that need clamping clamp before calling.
	Lerp(end T, t float64) T

	// Distance returns the per-component signed distances from the
	// receiver to end, exactly Components() long. The convention is
	// end minus start: applying the result via ApplyDeltas lands on end.
	Distance(end T) []float64

	// ApplyDeltas consumes exactly Components() scalars from the cursor,
	// in the same deterministic order Distance produces them, and
	// returns the shifted value.
	ApplyDeltas(d *Deltas) T

	// Equal reports whether two values are the same for retargeting
	// purposes. The transition state machine uses this to detect
	// reversals and redundant targets.
	Equal(end T) bool
}

// Deltas is a cursor over a flat component sequence.
//
// Nested composite types consume disjoint, contiguous sub-ranges from a
// single Deltas in the order they visit their fields. That order is the
// wire format between Distance (encode) and ApplyDeltas (decode): both
// sides must walk components identically.
type Deltas struct {
	buf []float64
	off int
}

// NewDeltas returns a cursor over the given component sequence.
func NewDeltas(components []float64) *Deltas {
	return &Deltas{buf: components}
}

// Next consumes and returns the next component. Reading past the end
// returns zero, so a short sequence acts as a no-op for the remaining
// components rather than failing.
func (d *Deltas) Next() float64 {
	if d.off >= len(d.buf) {
		return 0
	}
	v := d.buf[d.off]
	d.off++
	return v
}

// Skip discards the next n components. Composite types with a padded
// component count use Skip to consume their unused tail.
func (d *Deltas) Skip(n int) {
	if n < 0 {
		return
	}
	d.off += n
	if d.off > len(d.buf) {
		d.off = len(d.buf)
	}
}

// Remaining reports how many components are left to consume.
func (d *Deltas) Remaining() int {
	return len(d.buf) - d.off
}
