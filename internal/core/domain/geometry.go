package domain

// Interval is a closed range on one axis of the complex plane.
type Interval struct {
	Min float64
	Max float64
}

// Span returns the length of the interval.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// Area is the visible region of the complex plane.
type Area struct {
	X Interval
	Y Interval
}

// Dimensions is the pixel grid of a render.
type Dimensions struct {
	X int
	Y int
}

// Size returns the number of cells in the grid.
func (d Dimensions) Size() int {
	return d.X * d.Y
}
