// Package bench times the valarray engine against eager and hand-written
// implementations of the same elementwise computations.
package bench

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Scenario is one elementwise computation over constant-filled input arrays.
type Scenario struct {
	Name        string
	Description string

	// Fills holds the constant every input array is filled with. Inputs are
	// grouped as consecutive components: for dot, Fills[0:4] is the first
	// vector (x, y, z, w) and Fills[4:8] the second.
	Fills []float32

	// Terms lists the input index pairs whose products are summed, in
	// evaluation order.
	Terms [][2]int

	// Sqrt takes the square root of the sum.
	Sqrt bool

	// reference computes the expected output in float64.
	reference func(size int, fills []float32) []float64
}

// Inputs returns the number of input arrays.
func (s Scenario) Inputs() int { return len(s.Fills) }

// Reference returns the float64 reference output for size elements.
func (s Scenario) Reference(size int) []float64 {
	return s.reference(size, s.Fills)
}

// Dot is the four-component dot product v1 . v2 with v1 = (1, 2, 3, 4) and
// v2 = (5, 6, 7, 8) at every index. Every element is 70.
var Dot = Scenario{
	Name:        "dot",
	Description: "v1x*v2x + v1y*v2y + v1z*v2z + v1w*v2w",
	Fills:       []float32{1, 2, 3, 4, 5, 6, 7, 8},
	Terms:       [][2]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}},
	reference: func(size int, fills []float32) []float64 {
		out := make([]float64, size)
		prod := make([]float64, size)
		for c := range 4 {
			vecmath.MulBlock(prod, repeat64(fills[c], size), repeat64(fills[c+4], size))
			for i := range out {
				out[i] += prod[i]
			}
		}
		return out
	},
}

// Length is the Euclidean length of (1, 2, 3, 4) at every index: sqrt(30).
var Length = Scenario{
	Name:        "length",
	Description: "sqrt(x*x + y*y + z*z + w*w)",
	Fills:       []float32{1, 2, 3, 4},
	Terms:       [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
	Sqrt:        true,
	reference: func(size int, fills []float32) []float64 {
		xy := make([]float64, size)
		zw := make([]float64, size)
		vecmath.Magnitude(xy, repeat64(fills[0], size), repeat64(fills[1], size))
		vecmath.Magnitude(zw, repeat64(fills[2], size), repeat64(fills[3], size))
		out := make([]float64, size)
		vecmath.Magnitude(out, xy, zw)
		return out
	},
}

// Scenarios returns every scenario in report order.
func Scenarios() []Scenario {
	return []Scenario{Dot, Length}
}

// LookupScenario returns the scenario called name.
func LookupScenario(name string) (Scenario, error) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: scenario %q", ErrUnknown, name)
}

func repeat64(v float32, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(v)
	}
	return out
}
