package galaga

// Path is a scripted quadratic Bezier flight curve evaluated by elapsed
// time-in-state rather than physics integration. This keeps entrance swoops
// and dive attacks exact and repeatable, which the choreography depends on.
type Path struct {
	P0, P1, P2 Vec // start, control, end
	Duration   int // ticks from P0 to P2
}

// At evaluates the curve at tick t, clamped to [0, Duration].
// Standard quadratic Bezier in integer math:
// B(t) = (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2 with t normalized by Duration.
func (p Path) At(t int) Vec {
	d := p.Duration
	if d <= 0 {
		return p.P2
	}
	if t <= 0 {
		return p.P0
	}
	if t >= d {
		return p.P2
	}

	u := int64(d - t)
	tt := int64(t)
	dd := int64(d) * int64(d)

	x := (u*u*int64(p.P0.X) + 2*u*tt*int64(p.P1.X) + tt*tt*int64(p.P2.X)) / dd
	y := (u*u*int64(p.P0.Y) + 2*u*tt*int64(p.P1.Y) + tt*tt*int64(p.P2.Y)) / dd
	return Vec{X: Fixed(x), Y: Fixed(y)}
}

// Done reports whether the path has been fully traversed at tick t.
func (p Path) Done(t int) bool {
	return t >= p.Duration
}

// entrancePath builds the scripted curve a spawning enemy flies from an
// off-screen edge point down to its formation slot.
func entrancePath(from, to Vec, duration int) Path {
	// Control point outside the midpoint pulls the curve into a visible arc.
	mid := Vec{
		X: (from.X + to.X) / 2,
		Y: (from.Y+to.Y)/2 - ToFixed(4),
	}
	return Path{P0: from, P1: mid, P2: to, Duration: duration}
}

// divePath builds the attack curve from a formation slot toward the player's
// horizontal vicinity and off the bottom of the field.
func divePath(from Vec, aimX Fixed, swing int, fieldBottom int, duration int) Path {
	end := Vec{X: aimX, Y: ToFixed(fieldBottom + 2)}
	// Swing the control point sideways so the swoop reads as a curve,
	// biased away from the straight line between slot and aim point.
	ctrl := Vec{
		X: from.X + ToFixed(-swing).Mul((aimX - from.X).Sign()),
		Y: (from.Y + end.Y) / 2,
	}
	return Path{P0: from, P1: ctrl, P2: end, Duration: duration}
}

// returnPath builds the curve a diver flies from above the top edge back
// down to its formation slot.
func returnPath(slot Vec, fieldTop int, duration int) Path {
	start := Vec{X: slot.X, Y: ToFixed(fieldTop - 3)}
	ctrl := Vec{X: slot.X, Y: (start.Y + slot.Y) / 2}
	return Path{P0: start, P1: ctrl, P2: slot, Duration: duration}
}
