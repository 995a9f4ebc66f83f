package graphics

import "github.com/go-drift/motion/pkg/animate"

// lerp linearly interpolates between two scalars.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Offset is a 2D displacement. Component order: X, Y.
type Offset struct {
	X, Y float64
}

func (o Offset) Components() int { return 2 }

func (o Offset) Lerp(end Offset, t float64) Offset {
	return Offset{X: lerp(o.X, end.X, t), Y: lerp(o.Y, end.Y, t)}
}

func (o Offset) Distance(end Offset) []float64 {
	return []float64{end.X - o.X, end.Y - o.Y}
}

func (o Offset) ApplyDeltas(d *animate.Deltas) Offset {
	return Offset{X: o.X + d.Next(), Y: o.Y + d.Next()}
}

func (o Offset) Equal(end Offset) bool { return o == end }

// Size is a width/height pair. Component order: Width, Height.
type Size struct {
	Width, Height float64
}

func (s Size) Components() int { return 2 }

func (s Size) Lerp(end Size, t float64) Size {
	return Size{Width: lerp(s.Width, end.Width, t), Height: lerp(s.Height, end.Height, t)}
}

func (s Size) Distance(end Size) []float64 {
	return []float64{end.Width - s.Width, end.Height - s.Height}
}

func (s Size) ApplyDeltas(d *animate.Deltas) Size {
	return Size{Width: s.Width + d.Next(), Height: s.Height + d.Next()}
}

func (s Size) Equal(end Size) bool { return s == end }

// Radius is an elliptical corner radius. Component order: X, Y.
type Radius struct {
	X, Y float64
}

// Circular returns a radius with equal axes.
func Circular(r float64) Radius { return Radius{X: r, Y: r} }

func (r Radius) Components() int { return 2 }

func (r Radius) Lerp(end Radius, t float64) Radius {
	return Radius{X: lerp(r.X, end.X, t), Y: lerp(r.Y, end.Y, t)}
}

func (r Radius) Distance(end Radius) []float64 {
	return []float64{end.X - r.X, end.Y - r.Y}
}

func (r Radius) ApplyDeltas(d *animate.Deltas) Radius {
	return Radius{X: r.X + d.Next(), Y: r.Y + d.Next()}
}

func (r Radius) Equal(end Radius) bool { return r == end }

// EdgeInsets is padding around a box. Component order: Left, Top,
// Right, Bottom.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

func (e EdgeInsets) Components() int { return 4 }

func (e EdgeInsets) Lerp(end EdgeInsets, t float64) EdgeInsets {
	return EdgeInsets{
		Left:   lerp(e.Left, end.Left, t),
		Top:    lerp(e.Top, end.Top, t),
		Right:  lerp(e.Right, end.Right, t),
		Bottom: lerp(e.Bottom, end.Bottom, t),
	}
}

func (e EdgeInsets) Distance(end EdgeInsets) []float64 {
	return []float64{end.Left - e.Left, end.Top - e.Top, end.Right - e.Right, end.Bottom - e.Bottom}
}

func (e EdgeInsets) ApplyDeltas(d *animate.Deltas) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + d.Next(),
		Top:    e.Top + d.Next(),
		Right:  e.Right + d.Next(),
		Bottom: e.Bottom + d.Next(),
	}
}

func (e EdgeInsets) Equal(end EdgeInsets) bool { return e == end }

// Alignment positions a child within a parent, each axis in [-1, 1].
// Component order: X, Y.
type Alignment struct {
	X, Y float64
}

func (a Alignment) Components() int { return 2 }

func (a Alignment) Lerp(end Alignment, t float64) Alignment {
	return Alignment{X: lerp(a.X, end.X, t), Y: lerp(a.Y, end.Y, t)}
}

func (a Alignment) Distance(end Alignment) []float64 {
	return []float64{end.X - a.X, end.Y - a.Y}
}

func (a Alignment) ApplyDeltas(d *animate.Deltas) Alignment {
	return Alignment{X: a.X + d.Next(), Y: a.Y + d.Next()}
}

func (a Alignment) Equal(end Alignment) bool { return a == end }
