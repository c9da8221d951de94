package valarray

import (
	"testing"

	"github.com/ajroetker/go-valarray/hwy"
)

const benchSize = 100_000

func benchmarkDot[V hwy.Lane, B hwy.Backend[V]](b *testing.B, fused bool) {
	arrays := make([]*Array[V, B], 8)
	for i := range arrays {
		a, err := Filled[V, B](benchSize, float32(i+1))
		if err != nil {
			b.Fatal(err)
		}
		arrays[i] = a
	}
	dst, err := New[V, B](benchSize)
	if err != nil {
		b.Fatal(err)
	}

	var expr *Array[V, B]
	if fused {
		expr = arrays[0].Mul(arrays[4]).Add(arrays[1].Mul(arrays[5])).Add(arrays[2].Mul(arrays[6])).Add(arrays[3].Mul(arrays[7]))
	} else {
		// Same tree with add nodes built directly, bypassing the rewrite.
		mul := func(i int) Expr[V, B] { return NewMul[V, B](arrays[i].expr, arrays[i+4].expr) }
		var e Expr[V, B] = mul(0)
		for i := 1; i < 4; i++ {
			e = &addNode[V, B]{a: e, b: mul(i)}
		}
		expr = FromExpr[V, B](e)
	}

	b.SetBytes(int64(benchSize * 4 * 9))
	b.ResetTimer()
	for range b.N {
		if err := dst.Assign(expr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDotFused(b *testing.B) {
	b.Run("scalar", func(b *testing.B) { benchmarkDot[float32, hwy.Scalar](b, true) })
	b.Run("sse2", func(b *testing.B) { benchmarkDot[hwy.Float32x4, hwy.SSE2](b, true) })
	b.Run("avx2", func(b *testing.B) { benchmarkDot[hwy.Float32x8, hwy.AVX2](b, true) })
	b.Run("neon", func(b *testing.B) { benchmarkDot[hwy.Float32x4, hwy.NEON](b, true) })
}

func BenchmarkDotUnfused(b *testing.B) {
	b.Run("scalar", func(b *testing.B) { benchmarkDot[float32, hwy.Scalar](b, false) })
	b.Run("sse2", func(b *testing.B) { benchmarkDot[hwy.Float32x4, hwy.SSE2](b, false) })
	b.Run("avx2", func(b *testing.B) { benchmarkDot[hwy.Float32x8, hwy.AVX2](b, false) })
	b.Run("neon", func(b *testing.B) { benchmarkDot[hwy.Float32x4, hwy.NEON](b, false) })
}

func BenchmarkDotLoop(b *testing.B) {
	xs := make([][]float32, 8)
	for i := range xs {
		xs[i] = make([]float32, benchSize)
		for j := range xs[i] {
			xs[i][j] = float32(i + 1)
		}
	}
	dst := make([]float32, benchSize)

	b.SetBytes(int64(benchSize * 4 * 9))
	b.ResetTimer()
	for range b.N {
		for j := range dst {
			dst[j] = xs[0][j]*xs[4][j] + xs[1][j]*xs[5][j] + xs[2][j]*xs[6][j] + xs[3][j]*xs[7][j]
		}
	}
}
