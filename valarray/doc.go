// Package valarray implements lazily evaluated elementwise arithmetic on
// fixed-size float32 arrays.
//
// Arithmetic on arrays does not compute anything. Add, Mul and Sqrt build an
// expression tree whose leaves are the operand arrays; the tree is walked
// once, lane by lane, when it is assigned to a destination array:
//
//	a, _ := valarray.FilledSSE2(1000, 2)
//	b, _ := valarray.FilledSSE2(1000, 3)
//	c, _ := valarray.NewSSE2(1000)
//	if err := c.Assign(a.Mul(b).Add(a.Sqrt())); err != nil {
//		return err
//	}
//
// Building Add(x, Mul(y, z)) yields a single multiply-add node, so the
// backend's MulAdd primitive runs instead of a multiply followed by an add.
//
// Every array is parameterized by a lane type and an hwy backend. The
// generated aliases (SSE2Array, AVX2Array, NEONArray, ScalarArray and
// NativeArray) name the common instantiations.
package valarray

//go:generate go run ../cmd/lanegen -output backends_gen.go
