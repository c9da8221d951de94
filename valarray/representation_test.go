package valarray

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-valarray/hwy"
)

func testRepresentationShape[V hwy.Lane, B hwy.Backend[V]](t *testing.T) {
	var b B
	w := b.Lanes()
	for _, n := range []int{0, 1, 4, 5, 7, 8, 9, 1000} {
		r, err := NewRepresentation[V, B](n)
		require.NoError(t, err)
		assert.Equal(t, n, r.Size())
		assert.Equal(t, (n+w-1)/w, r.Elements(), "n=%d", n)
		assert.LessOrEqual(t, r.Size(), r.Elements()*w)
		assert.Equal(t, b.Alignment(), r.Alignment())
		assert.Equal(t, w, r.LaneWidth())
		assert.True(t, hwy.IsAligned(r.lanes, b.Alignment()), "n=%d not aligned", n)
	}
}

func TestRepresentationShape(t *testing.T) {
	t.Run("scalar", testRepresentationShape[float32, hwy.Scalar])
	t.Run("sse2", testRepresentationShape[hwy.Float32x4, hwy.SSE2])
	t.Run("avx2", testRepresentationShape[hwy.Float32x8, hwy.AVX2])
	t.Run("neon", testRepresentationShape[hwy.Float32x4, hwy.NEON])
}

func testFilledRoundTrip[V hwy.Lane, B hwy.Backend[V]](t *testing.T) {
	r, err := NewFilledRepresentation[V, B](13, 2.5)
	require.NoError(t, err)
	for i := range r.Size() {
		got, err := r.Scalar(i)
		require.NoError(t, err)
		assert.Equal(t, float32(2.5), got, "element %d", i)
	}
	// Padding slots carry the fill value too.
	var b B
	last, err := r.Lane(r.Elements() - 1)
	require.NoError(t, err)
	for slot := range b.Lanes() {
		assert.Equal(t, float32(2.5), b.GetLane(last, slot))
	}
}

func TestFilledRoundTrip(t *testing.T) {
	t.Run("scalar", testFilledRoundTrip[float32, hwy.Scalar])
	t.Run("sse2", testFilledRoundTrip[hwy.Float32x4, hwy.SSE2])
	t.Run("avx2", testFilledRoundTrip[hwy.Float32x8, hwy.AVX2])
	t.Run("neon", testFilledRoundTrip[hwy.Float32x4, hwy.NEON])
}

func TestRepresentationSizeFiveWidthFour(t *testing.T) {
	r, err := NewRepresentation[hwy.Float32x4, hwy.SSE2](5)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Elements())

	for i := range 5 {
		require.NoError(t, r.SetScalar(i, float32(i*i)))
	}
	for i := range 5 {
		got, err := r.Scalar(i)
		require.NoError(t, err)
		assert.Equal(t, float32(i*i), got)
	}
	last, err := r.Lane(1)
	require.NoError(t, err)
	assert.Equal(t, hwy.Float32x4{16, 0, 0, 0}, last)
}

func TestRepresentationEmpty(t *testing.T) {
	r, err := NewFilledRepresentation[hwy.Float32x8, hwy.AVX2](0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0, r.Elements())

	_, err = r.Scalar(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.Lane(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRepresentationErrors(t *testing.T) {
	_, err := NewRepresentation[float32, hwy.Scalar](-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewRepresentation[hwy.Float32x8, hwy.AVX2](math.MaxInt / 4)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	r, err := NewRepresentation[hwy.Float32x4, hwy.SSE2](6)
	require.NoError(t, err)

	_, err = r.Lane(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, r.SetLane(-1, hwy.Float32x4{}), ErrOutOfRange)
	_, err = r.Scalar(6)
	assert.ErrorIs(t, err, ErrOutOfRange, "padding slots must not be readable")
	assert.ErrorIs(t, r.SetScalar(6, 1), ErrOutOfRange)

	other, err := NewRepresentation[hwy.Float32x4, hwy.SSE2](7)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Assign(other), ErrInvalidArgument)

	// Same lane count is not enough: sizes must match.
	other, err = NewRepresentation[hwy.Float32x4, hwy.SSE2](8)
	require.NoError(t, err)
	assert.Equal(t, r.Elements(), other.Elements())
	assert.ErrorIs(t, r.Assign(other), ErrInvalidArgument)

	assert.ErrorIs(t, r.CopyFrom(make([]float32, 5)), ErrInvalidArgument)
	_, err = r.CopyTo(make([]float32, 5))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRepresentationCloneIsDeep(t *testing.T) {
	r, err := NewFilledRepresentation[hwy.Float32x4, hwy.NEON](9, 1)
	require.NoError(t, err)
	c := r.Clone()
	require.NoError(t, c.SetScalar(8, 42))

	orig, err := r.Scalar(8)
	require.NoError(t, err)
	assert.Equal(t, float32(1), orig)
	cloned, err := c.Scalar(8)
	require.NoError(t, err)
	assert.Equal(t, float32(42), cloned)
	assert.True(t, hwy.IsAligned(c.lanes, 16))
}

func TestRepresentationCopyFromTo(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	r, err := NewFilledRepresentation[hwy.Float32x8, hwy.AVX2](len(src), -1)
	require.NoError(t, err)
	require.NoError(t, r.CopyFrom(src))

	// CopyFrom zeroes the padding.
	last, err := r.Lane(1)
	require.NoError(t, err)
	assert.Equal(t, hwy.Float32x8{9, 10, 11, 0, 0, 0, 0, 0}, last)

	dst := make([]float32, len(src)+2)
	dst[len(src)] = 77
	n, err := r.CopyTo(dst)
	require.NoError(t, err)
	assert.Equal(t, len(src), n)
	if diff := cmp.Diff(src, dst[:len(src)]); diff != "" {
		t.Errorf("CopyTo mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, float32(77), dst[len(src)], "CopyTo wrote past Size()")
}

func TestRepresentationAssign(t *testing.T) {
	a, err := NewFilledRepresentation[float32, hwy.Scalar](3, 1)
	require.NoError(t, err)
	b, err := NewFilledRepresentation[float32, hwy.Scalar](3, 9)
	require.NoError(t, err)
	require.NoError(t, a.Assign(b))

	got := make([]float32, 3)
	_, err = a.CopyTo(got)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 9, 9}, got)

	assert.ErrorIs(t, a.Assign(nil), ErrInvalidArgument)
}
