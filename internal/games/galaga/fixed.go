package galaga

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while maintaining determinism.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int64

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f / Scale)
}

// ToCellRounded converts fixed-point to nearest cell.
func (f Fixed) ToCellRounded() int {
	if f >= 0 {
		return int((f + Scale/2) / Scale)
	}
	return int((f - Scale/2) / Scale)
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return f * Fixed(n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return f / Fixed(n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Vec is a fixed-point 2D point or offset.
type Vec struct {
	X, Y Fixed
}

// VecFromCell converts cell coordinates to a fixed-point vector.
func VecFromCell(x, y int) Vec {
	return Vec{X: ToFixed(x), Y: ToFixed(y)}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Dist returns the Chebyshev distance between two points.
// Cheap to compute in integer math and close enough for arrival tolerance checks.
func (v Vec) Dist(other Vec) Fixed {
	dx := (v.X - other.X).Abs()
	dy := (v.Y - other.Y).Abs()
	if dx > dy {
		return dx
	}
	return dy
}
