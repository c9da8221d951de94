package valarray

import "github.com/ajroetker/go-valarray/hwy"

// Add returns the composite array a + b. If b is a product y*z the result
// is the multiply-add a + y*z. Nothing is computed until the result is
// assigned or read.
//
// If the sizes differ, the result's Err wraps ErrInvalidArgument.
func Add[V hwy.Lane, B hwy.Backend[V]](a, b *Array[V, B]) *Array[V, B] {
	return &Array[V, B]{expr: NewAdd[V, B](a.expr, b.expr)}
}

// Mul returns the composite array a * b.
//
// If the sizes differ, the result's Err wraps ErrInvalidArgument.
func Mul[V hwy.Lane, B hwy.Backend[V]](a, b *Array[V, B]) *Array[V, B] {
	return &Array[V, B]{expr: NewMul[V, B](a.expr, b.expr)}
}

// MulAdd returns the composite array acc + x*y.
//
// If the sizes differ, the result's Err wraps ErrInvalidArgument.
func MulAdd[V hwy.Lane, B hwy.Backend[V]](acc, x, y *Array[V, B]) *Array[V, B] {
	return &Array[V, B]{expr: NewMulAdd[V, B](acc.expr, x.expr, y.expr)}
}

// Sqrt returns the composite array sqrt(a).
//
// If a is invalid, the result's Err reports the same error.
func Sqrt[V hwy.Lane, B hwy.Backend[V]](a *Array[V, B]) *Array[V, B] {
	return &Array[V, B]{expr: NewSqrt[V, B](a.expr)}
}

// Add returns a + b. See the package-level Add.
func (a *Array[V, B]) Add(b *Array[V, B]) *Array[V, B] { return Add(a, b) }

// Mul returns a * b.
func (a *Array[V, B]) Mul(b *Array[V, B]) *Array[V, B] { return Mul(a, b) }

// Sqrt returns sqrt(a).
func (a *Array[V, B]) Sqrt() *Array[V, B] { return Sqrt(a) }
