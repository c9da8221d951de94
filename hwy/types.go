// Package hwy provides the lane primitives the valarray engine is built on.
//
// A lane is a small fixed group of float32 values processed together by one
// primitive, mirroring a SIMD register. Each vectorization strategy is a
// Backend: a zero-size type whose methods implement add, multiply,
// multiply-add, square root, broadcast and lane extraction for one lane type.
//
//	var b hwy.SSE2
//	x := b.Set(2)
//	y := b.MulAdd(x, x, b.Set(3)) // 2 + 2*3 in every slot
//	_ = b.GetLane(y, 0)           // 8
//
// The package also reports which SIMD level the running CPU supports and
// keeps a registry of the compiled-in backends.
package hwy

// Lane is a constraint for the lane types backends operate on.
type Lane interface {
	float32 | Float32x4 | Float32x8
}

// Float32x4 is a 128-bit lane of 4 float32 values (SSE, NEON).
type Float32x4 [4]float32

// Float32x8 is a 256-bit lane of 8 float32 values (AVX).
type Float32x8 [8]float32

// Backend is the capability set of one vectorization strategy.
//
// Implementations are stateless zero-size types, so generic code obtains one
// with a plain variable declaration (var b B) and calls its methods directly.
type Backend[V Lane] interface {
	// Name returns the registry name ("scalar", "sse2", "avx2", "neon").
	Name() string

	// Level returns the dispatch level this backend models.
	Level() DispatchLevel

	// Lanes returns the number of float32 elements per lane.
	Lanes() int

	// Alignment returns the required byte alignment of a lane buffer.
	Alignment() int

	// FusedMulAdd reports whether MulAdd rounds once.
	FusedMulAdd() bool

	// SqrtTolerance returns the documented relative error bound of Sqrt.
	// Zero means Sqrt is correctly rounded.
	SqrtTolerance() float64

	Add(a, b V) V
	Mul(a, b V) V

	// MulAdd returns acc + x*y.
	MulAdd(acc, x, y V) V

	Sqrt(a V) V

	// Set broadcasts value into every slot.
	Set(value float32) V

	// GetLane extracts slot i.
	GetLane(v V, i int) float32

	// InsertLane returns v with slot i replaced by value.
	InsertLane(v V, i int, value float32) V

	// Load fills a lane from src. Missing trailing slots are zero.
	Load(src []float32) V

	// Store writes up to Lanes() slots of v into dst.
	Store(v V, dst []float32)
}
