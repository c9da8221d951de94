package valarray

import (
	"context"
	"log/slog"

	"github.com/ajroetker/go-valarray/hwy"
)

// fuseAdd rewrites a + (y*z) into the multiply-add node a + y*z.
// Only the right operand is inspected: (y*z) + a stays an add node.
func fuseAdd[V hwy.Lane, B hwy.Backend[V]](a, right Expr[V, B]) (Expr[V, B], bool) {
	switch m := right.(type) {
	case *mulNode[V, B]:
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			var b B
			l.Debug("valarray: fused add of mul into muladd",
				"backend", b.Name(), "size", a.Size(), "ops", 1+a.Ops()+m.a.Ops()+m.b.Ops())
		}
		return &mulAddNode[V, B]{acc: a, x: m.a, y: m.b}, true
	default:
		return nil, false
	}
}
