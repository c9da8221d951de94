package hwy

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

// exactFMA computes x*y + acc exactly and rounds once to float32.
func exactFMA(x, y, acc float32) float32 {
	p := new(big.Float).SetPrec(256).SetFloat64(float64(x))
	p.Mul(p, new(big.Float).SetPrec(256).SetFloat64(float64(y)))
	p.Add(p, new(big.Float).SetPrec(256).SetFloat64(float64(acc)))
	f, _ := p.Float32()
	return f
}

func TestFMAF32MatchesExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20000; i++ {
		x := float32(rng.NormFloat64() * 100)
		y := float32(rng.NormFloat64() * 100)
		acc := -float32(float64(x) * float64(y))
		if i%2 == 0 {
			acc = float32(rng.NormFloat64() * 1e4)
		}
		got := fmaf32(x, y, acc)
		want := exactFMA(x, y, acc)
		if got != want {
			t.Fatalf("fmaf32(%g, %g, %g) = %g, want %g", x, y, acc, got, want)
		}
	}
}

func TestFMAF32SpecialValues(t *testing.T) {
	inf := float32(math.Inf(1))
	tests := []struct {
		name      string
		x, y, acc float32
		want      float32
		wantNaN   bool
	}{
		{"zero", 0, 5, 0, 0, false},
		{"overflow", math.MaxFloat32, 2, 0, inf, false},
		{"inf product", inf, 2, 1, inf, false},
		{"inf minus inf", inf, 1, -inf, 0, true},
		{"nan acc", 1, 1, float32(math.NaN()), 0, true},
		{"cancel", 3, 4, -12, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmaf32(tt.x, tt.y, tt.acc)
			if tt.wantNaN {
				if !math.IsNaN(float64(got)) {
					t.Errorf("got %v, want NaN", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
