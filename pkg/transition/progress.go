package transition

// Direction is the sense a transition is moving in.
type Direction int

const (
	// Forward means progress counts up toward 1.
	Forward Direction = iota
	// Reverse means progress counts down toward 0.
	Reverse
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Progress is a directional scalar tracking how far a transition has
// advanced.
//
// The raw value p stays clamped to [0, 1]. A forward progress is complete
// at p == 1, a reverse progress at p == 0. Reversing flips the direction
// while keeping p, so the visual position along the curve is preserved
// and motion stays continuous when a transition turns around mid-flight.
type Progress struct {
	direction Direction
	p         float64
}

// Rest returns a completed forward progress. A freshly built transition
// starts here so it is not animating until retargeted.
func Rest() Progress {
	return Progress{direction: Forward, p: 1}
}

// Start returns a forward progress at zero, the state a transition enters
// when it begins moving toward a new target.
func Start() Progress {
	return Progress{direction: Forward, p: 0}
}

// Update advances the progress by delta in the current direction,
// clamping to the valid range. Delta is a fraction of the transition's
// duration, not wall-clock time.
func (pr *Progress) Update(delta float64) {
	if pr.direction == Forward {
		pr.p += delta
	} else {
		pr.p -= delta
	}
	pr.p = clampUnit(pr.p)
}

// Reverse flips the direction in place, keeping the current position.
func (pr *Progress) Reverse() {
	if pr.direction == Forward {
		pr.direction = Reverse
	} else {
		pr.direction = Forward
	}
}

// Settle forces the progress to its terminal value for the current
// direction without changing direction.
func (pr *Progress) Settle() {
	if pr.direction == Forward {
		pr.p = 1
	} else {
		pr.p = 0
	}
}

// IsComplete reports whether the progress is at rest: 1 when forward,
// 0 when reversed.
func (pr Progress) IsComplete() bool {
	if pr.direction == Forward {
		return pr.p >= 1
	}
	return pr.p <= 0
}

// Value returns the position in the forward sense, the input to curve
// evaluation. Reverse progress reads the same parameterization backward,
// which is what keeps a reversal visually continuous.
func (pr Progress) Value() float64 {
	return pr.p
}

// Direction returns the current direction.
func (pr Progress) Direction() Direction {
	return pr.direction
}
