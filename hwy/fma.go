package hwy

import "math"

// fmaf32 returns x*y + acc rounded once to float32.
//
// The float64 product of two float32 values is exact, so only the final sum
// rounds. That sum is rounded to odd in float64, which makes the narrowing
// to float32 a single correctly rounded step (53 >= 24+2 bits).
func fmaf32(x, y, acc float32) float32 {
	p := float64(x) * float64(y)
	a := float64(acc)
	s := p + a
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// TwoSum: p + a == s + e exactly.
	bb := s - p
	e := (p - (s - bb)) + (a - bb)
	if e != 0 {
		bits := math.Float64bits(s)
		if bits&1 == 0 {
			if (e > 0) == (s > 0) {
				bits++
			} else {
				bits--
			}
			s = math.Float64frombits(bits)
		}
	}
	return float32(s)
}

// mulAdd2f32 returns acc + x*y with the product rounded before the sum.
// The explicit conversion keeps the compiler from contracting it into an
// FMA instruction.
func mulAdd2f32(x, y, acc float32) float32 {
	return acc + float32(x*y)
}
