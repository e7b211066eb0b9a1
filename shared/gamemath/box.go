package gamemath

// Vec is an integer pixel displacement.
type Vec struct {
	X, Y int
}

// One pixel probes.
var (
	Zero  = Vec{}
	Up    = Vec{X: 0, Y: -1}
	Down  = Vec{X: 0, Y: 1}
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
)

// Box is an axis-aligned rectangle in pixel space covering [X, X+W) x [Y, Y+H).
type Box struct {
	X, Y, W, H int
}

// Offset returns the box displaced by v.
func (b Box) Offset(v Vec) Box {
	return Box{X: b.X + v.X, Y: b.Y + v.Y, W: b.W, H: b.H}
}

// Overlaps reports whether a, displaced by probe, shares at least one pixel with b.
// Edges are inclusive: the last covered column of a is X+W-1, so boxes that merely
// touch (a ends at 9, b starts at 10) do not overlap.
func Overlaps(a, b Box, probe Vec) bool {
	ax := a.X + probe.X
	ay := a.Y + probe.Y

	onX := ax+a.W-1 >= b.X && b.X+b.W-1 >= ax
	onY := ay+a.H-1 >= b.Y && b.Y+b.H-1 >= ay

	return onX && onY
}
