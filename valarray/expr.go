package valarray

import (
	"fmt"

	"github.com/ajroetker/go-valarray/hwy"
)

// NodeKind identifies the variant of an expression node.
type NodeKind int

const (
	// KindLeaf is a Representation: stored lanes, no computation.
	KindLeaf NodeKind = iota
	KindAdd
	KindMul
	// KindMulAdd computes acc + x*y with one backend primitive.
	KindMulAdd
	KindSqrt
	// KindInvalid is a node built from mismatched or invalid operands.
	// Its Err method reports why.
	KindInvalid
)

// String returns the lowercase name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindMulAdd:
		return "muladd"
	case KindSqrt:
		return "sqrt"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Expr is a node of an expression tree: a Representation or a composite of
// other expressions. The set of implementations is closed.
//
// Composite nodes hold their operands by reference and compute nothing until
// evaluated; the values seen are those of the operands at evaluation time.
type Expr[V hwy.Lane, B hwy.Backend[V]] interface {
	// Size returns the number of logical values, taken from the first operand.
	Size() int

	// Elements returns the number of lanes, taken from the first operand.
	Elements() int

	Kind() NodeKind

	// Ops returns the number of backend primitives run to evaluate one lane.
	Ops() int

	// Err returns the construction error of an invalid node, or of any
	// invalid node below it.
	Err() error

	// eval computes lane i. It must only be called on a tree with a nil Err
	// and 0 <= i < Elements().
	eval(i int) V
}

type addNode[V hwy.Lane, B hwy.Backend[V]] struct {
	a, b Expr[V, B]
}

func (n *addNode[V, B]) Size() int      { return n.a.Size() }
func (n *addNode[V, B]) Elements() int  { return n.a.Elements() }
func (n *addNode[V, B]) Kind() NodeKind { return KindAdd }
func (n *addNode[V, B]) Ops() int       { return 1 + n.a.Ops() + n.b.Ops() }
func (n *addNode[V, B]) Err() error     { return nil }

func (n *addNode[V, B]) eval(i int) V {
	var b B
	return b.Add(n.a.eval(i), n.b.eval(i))
}

type mulNode[V hwy.Lane, B hwy.Backend[V]] struct {
	a, b Expr[V, B]
}

func (n *mulNode[V, B]) Size() int      { return n.a.Size() }
func (n *mulNode[V, B]) Elements() int  { return n.a.Elements() }
func (n *mulNode[V, B]) Kind() NodeKind { return KindMul }
func (n *mulNode[V, B]) Ops() int       { return 1 + n.a.Ops() + n.b.Ops() }
func (n *mulNode[V, B]) Err() error     { return nil }

func (n *mulNode[V, B]) eval(i int) V {
	var b B
	return b.Mul(n.a.eval(i), n.b.eval(i))
}

// mulAddNode evaluates acc + x*y.
type mulAddNode[V hwy.Lane, B hwy.Backend[V]] struct {
	acc, x, y Expr[V, B]
}

func (n *mulAddNode[V, B]) Size() int      { return n.acc.Size() }
func (n *mulAddNode[V, B]) Elements() int  { return n.acc.Elements() }
func (n *mulAddNode[V, B]) Kind() NodeKind { return KindMulAdd }
func (n *mulAddNode[V, B]) Ops() int       { return 1 + n.acc.Ops() + n.x.Ops() + n.y.Ops() }
func (n *mulAddNode[V, B]) Err() error     { return nil }

func (n *mulAddNode[V, B]) eval(i int) V {
	var b B
	return b.MulAdd(n.acc.eval(i), n.x.eval(i), n.y.eval(i))
}

type sqrtNode[V hwy.Lane, B hwy.Backend[V]] struct {
	a Expr[V, B]
}

func (n *sqrtNode[V, B]) Size() int      { return n.a.Size() }
func (n *sqrtNode[V, B]) Elements() int  { return n.a.Elements() }
func (n *sqrtNode[V, B]) Kind() NodeKind { return KindSqrt }
func (n *sqrtNode[V, B]) Ops() int       { return 1 + n.a.Ops() }
func (n *sqrtNode[V, B]) Err() error     { return nil }

func (n *sqrtNode[V, B]) eval(i int) V {
	var b B
	return b.Sqrt(n.a.eval(i))
}

// invalidNode stands in for a node whose operands could not be combined.
// It keeps the size of its first operand so callers can still report it.
type invalidNode[V hwy.Lane, B hwy.Backend[V]] struct {
	size, elements int
	err            error
}

func (n *invalidNode[V, B]) Size() int      { return n.size }
func (n *invalidNode[V, B]) Elements() int  { return n.elements }
func (n *invalidNode[V, B]) Kind() NodeKind { return KindInvalid }
func (n *invalidNode[V, B]) Ops() int       { return 0 }
func (n *invalidNode[V, B]) Err() error     { return n.err }

func (n *invalidNode[V, B]) eval(int) V {
	panic("valarray: evaluating invalid expression: " + n.err.Error())
}

// checkOperands returns the first operand error, or an ErrInvalidArgument
// if the operand sizes differ.
func checkOperands[V hwy.Lane, B hwy.Backend[V]](op string, operands ...Expr[V, B]) error {
	for _, e := range operands {
		if err := e.Err(); err != nil {
			return err
		}
	}
	first := operands[0]
	for _, e := range operands[1:] {
		if e.Size() != first.Size() {
			return fmt.Errorf("%w: %s of sizes %d and %d", ErrInvalidArgument, op, first.Size(), e.Size())
		}
	}
	return nil
}

func invalid[V hwy.Lane, B hwy.Backend[V]](first Expr[V, B], err error) Expr[V, B] {
	return &invalidNode[V, B]{size: first.Size(), elements: first.Elements(), err: err}
}

// NewAdd returns the expression a + b. When b is a multiplication y*z the
// result is the single multiply-add node a + y*z.
//
// Operands of different sizes produce a KindInvalid node whose Err wraps
// ErrInvalidArgument.
func NewAdd[V hwy.Lane, B hwy.Backend[V]](a, b Expr[V, B]) Expr[V, B] {
	if err := checkOperands[V, B]("add", a, b); err != nil {
		return invalid[V, B](a, err)
	}
	if fused, ok := fuseAdd[V, B](a, b); ok {
		return fused
	}
	return &addNode[V, B]{a: a, b: b}
}

// NewMul returns the expression a * b.
func NewMul[V hwy.Lane, B hwy.Backend[V]](a, b Expr[V, B]) Expr[V, B] {
	if err := checkOperands[V, B]("mul", a, b); err != nil {
		return invalid[V, B](a, err)
	}
	return &mulNode[V, B]{a: a, b: b}
}

// NewMulAdd returns the expression acc + x*y evaluated with the backend's
// multiply-add primitive.
func NewMulAdd[V hwy.Lane, B hwy.Backend[V]](acc, x, y Expr[V, B]) Expr[V, B] {
	if err := checkOperands[V, B]("muladd", acc, x, y); err != nil {
		return invalid[V, B](acc, err)
	}
	return &mulAddNode[V, B]{acc: acc, x: x, y: y}
}

// NewSqrt returns the expression sqrt(a).
func NewSqrt[V hwy.Lane, B hwy.Backend[V]](a Expr[V, B]) Expr[V, B] {
	if err := a.Err(); err != nil {
		return invalid[V, B](a, err)
	}
	return &sqrtNode[V, B]{a: a}
}

// Evaluate computes lane i of e.
func Evaluate[V hwy.Lane, B hwy.Backend[V]](e Expr[V, B], i int) (V, error) {
	var zero V
	if err := e.Err(); err != nil {
		return zero, err
	}
	if i < 0 || i >= e.Elements() {
		return zero, fmt.Errorf("%w: lane %d of %d", ErrOutOfRange, i, e.Elements())
	}
	return e.eval(i), nil
}
