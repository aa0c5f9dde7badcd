package domain

// Color is an 8-bit RGB triple.
type Color [3]uint8

// LayerSpec describes one histogram layer of a configuration.
// An orbit belongs to the layer when its length is strictly below Iterations.
type LayerSpec struct {
	Iterations int
	Color      Color
}

// LayerData holds the accumulated counts of one layer.
// Counts is row-major with y as the outer index.
type LayerData struct {
	Iterations int
	Counts     []uint32
}

// Max returns the highest count in the layer, or zero for an empty layer.
func (l LayerData) Max() uint32 {
	var m uint32
	for _, c := range l.Counts {
		m = max(m, c)
	}
	return m
}

// Total returns the sum of all counts in the layer.
func (l LayerData) Total() uint64 {
	var sum uint64
	for _, c := range l.Counts {
		sum += uint64(c)
	}
	return sum
}
