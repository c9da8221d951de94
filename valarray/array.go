package valarray

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-valarray/hwy"
)

// Array is a fixed-size float32 array evaluated with backend B.
//
// A leaf array owns a Representation and can be written. A composite array
// wraps an expression built by Add, Mul or Sqrt; it is read-only and its
// values are computed on demand, or all at once when it is assigned to a
// leaf.
type Array[V hwy.Lane, B hwy.Backend[V]] struct {
	rep  *Representation[V, B] // nil for a composite array
	expr Expr[V, B]
}

// New returns a leaf array of size zeroed values.
func New[V hwy.Lane, B hwy.Backend[V]](size int) (*Array[V, B], error) {
	rep, err := NewRepresentation[V, B](size)
	if err != nil {
		return nil, err
	}
	return FromRepresentation(rep), nil
}

// Filled returns a leaf array of size values all equal to value.
func Filled[V hwy.Lane, B hwy.Backend[V]](size int, value float32) (*Array[V, B], error) {
	rep, err := NewFilledRepresentation[V, B](size, value)
	if err != nil {
		return nil, err
	}
	return FromRepresentation(rep), nil
}

// FromSlice returns a leaf array holding a copy of values.
func FromSlice[V hwy.Lane, B hwy.Backend[V]](values []float32) (*Array[V, B], error) {
	rep, err := NewRepresentation[V, B](len(values))
	if err != nil {
		return nil, err
	}
	if err := rep.CopyFrom(values); err != nil {
		return nil, err
	}
	return FromRepresentation(rep), nil
}

// FromRepresentation returns a leaf array backed by rep. The array shares
// rep's storage.
func FromRepresentation[V hwy.Lane, B hwy.Backend[V]](rep *Representation[V, B]) *Array[V, B] {
	return &Array[V, B]{rep: rep, expr: rep}
}

// FromExpr returns a composite array wrapping e. A Representation yields a
// leaf array.
func FromExpr[V hwy.Lane, B hwy.Backend[V]](e Expr[V, B]) *Array[V, B] {
	if rep, ok := e.(*Representation[V, B]); ok {
		return FromRepresentation(rep)
	}
	return &Array[V, B]{expr: e}
}

// Size returns the number of values.
func (a *Array[V, B]) Size() int { return a.expr.Size() }

// Elements returns the number of lanes.
func (a *Array[V, B]) Elements() int { return a.expr.Elements() }

// Kind reports the variant of the root node.
func (a *Array[V, B]) Kind() NodeKind { return a.expr.Kind() }

// Ops returns the number of backend primitives run per lane to evaluate a.
func (a *Array[V, B]) Ops() int { return a.expr.Ops() }

// Err returns the error recorded when a composite array was built from
// incompatible operands.
func (a *Array[V, B]) Err() error { return a.expr.Err() }

// IsLeaf reports whether a owns storage.
func (a *Array[V, B]) IsLeaf() bool { return a.rep != nil }

// Expr returns the expression a evaluates.
func (a *Array[V, B]) Expr() Expr[V, B] { return a.expr }

// Representation returns the storage of a leaf array, or nil.
func (a *Array[V, B]) Representation() *Representation[V, B] { return a.rep }

// At returns value i. A composite array evaluates the lane holding i.
func (a *Array[V, B]) At(i int) (float32, error) {
	if a.rep != nil {
		return a.rep.Scalar(i)
	}
	if err := a.expr.Err(); err != nil {
		return 0, err
	}
	if i < 0 || i >= a.expr.Size() {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfRange, i, a.expr.Size())
	}
	var b B
	lane, slot := hwy.SplitIndex(i, b.Lanes())
	return b.GetLane(a.expr.eval(lane), slot), nil
}

// Lane returns lane i, evaluating it for a composite array.
func (a *Array[V, B]) Lane(i int) (V, error) {
	if a.rep != nil {
		return a.rep.Lane(i)
	}
	return Evaluate[V, B](a.expr, i)
}

// SetLane overwrites lane i of a leaf array.
func (a *Array[V, B]) SetLane(i int, v V) error {
	if a.rep == nil {
		return fmt.Errorf("%w: cannot write to a %s expression", ErrInvalidArgument, a.expr.Kind())
	}
	return a.rep.SetLane(i, v)
}

// SetAt overwrites value i of a leaf array.
func (a *Array[V, B]) SetAt(i int, x float32) error {
	if a.rep == nil {
		return fmt.Errorf("%w: cannot write to a %s expression", ErrInvalidArgument, a.expr.Kind())
	}
	return a.rep.SetScalar(i, x)
}

// Assign evaluates src and stores the result in a, which must be a leaf of
// the same size. Each lane of the tree is computed once, in a single pass.
// a may appear in src: lane i is read before it is written. A nil or
// zero-value src, or a zero-value a, is rejected with ErrInvalidArgument.
func (a *Array[V, B]) Assign(src *Array[V, B]) error {
	if a.rep == nil {
		if a.expr == nil {
			return fmt.Errorf("%w: cannot assign to an unallocated array", ErrInvalidArgument)
		}
		return fmt.Errorf("%w: cannot assign to a %s expression", ErrInvalidArgument, a.expr.Kind())
	}
	if src == nil || src.expr == nil {
		return fmt.Errorf("%w: assigning from a nil array", ErrInvalidArgument)
	}
	if err := src.expr.Err(); err != nil {
		return err
	}
	if src.Size() != a.rep.size {
		return fmt.Errorf("%w: assigning size %d to size %d", ErrInvalidArgument, src.Size(), a.rep.size)
	}
	if src.rep != nil {
		return a.rep.Assign(src.rep)
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		var b B
		l.Debug("valarray: evaluating expression",
			"backend", b.Name(), "root", src.expr.Kind().String(),
			"lanes", len(a.rep.lanes), "ops_per_lane", src.expr.Ops())
	}
	lanes := a.rep.lanes
	for i := range lanes {
		lanes[i] = src.expr.eval(i)
	}
	return nil
}

// Eval materializes a into a new leaf array. For a leaf it returns a copy.
func (a *Array[V, B]) Eval() (*Array[V, B], error) {
	if err := a.expr.Err(); err != nil {
		return nil, err
	}
	if a.rep != nil {
		return FromRepresentation(a.rep.Clone()), nil
	}
	dst, err := New[V, B](a.Size())
	if err != nil {
		return nil, err
	}
	if err := dst.Assign(a); err != nil {
		return nil, err
	}
	return dst, nil
}

// ToSlice returns the values of a in a new slice, evaluating a composite
// array first.
func (a *Array[V, B]) ToSlice() ([]float32, error) {
	leaf := a
	if a.rep == nil {
		var err error
		if leaf, err = a.Eval(); err != nil {
			return nil, err
		}
	}
	out := make([]float32, leaf.Size())
	if _, err := leaf.rep.CopyTo(out); err != nil {
		return nil, err
	}
	return out, nil
}

// String summarizes the array without evaluating it.
func (a *Array[V, B]) String() string {
	var b B
	return fmt.Sprintf("valarray.Array[%s](%s, size=%d, lanes=%d)", b.Name(), a.expr.Kind(), a.Size(), a.Elements())
}
