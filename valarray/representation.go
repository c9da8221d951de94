package valarray

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-valarray/hwy"
)

// Representation owns the lane storage of a leaf array: Elements() lanes of
// type V, each holding B's lane width of float32 values, with the first lane
// aligned to B's alignment.
//
// Slots past Size() in the last lane are padding. They are zero after New
// and hold the fill value after a filled construction; they take part in
// lane arithmetic but are never visible through Scalar.
//
// A Representation is not safe for concurrent mutation. Concurrent reads are
// safe.
type Representation[V hwy.Lane, B hwy.Backend[V]] struct {
	size  int
	lanes []V
}

// NewRepresentation allocates zeroed storage for size values.
func NewRepresentation[V hwy.Lane, B hwy.Backend[V]](size int) (*Representation[V, B], error) {
	var b B
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, size)
	}
	count := hwy.LaneCount(size, b.Lanes())
	lanes, err := hwy.AllocLanes[V](count, b.Alignment())
	if err != nil {
		if errors.Is(err, hwy.ErrAllocTooLarge) {
			return nil, fmt.Errorf("%w: %d values on %s", ErrOutOfMemory, size, b.Name())
		}
		return nil, err
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("valarray: representation allocated",
			"backend", b.Name(), "size", size, "lanes", count,
			"bytes", count*hwy.LaneBytes[V]())
	}
	return &Representation[V, B]{size: size, lanes: lanes}, nil
}

// NewFilledRepresentation allocates storage for size values and broadcasts
// value into every slot, padding included.
func NewFilledRepresentation[V hwy.Lane, B hwy.Backend[V]](size int, value float32) (*Representation[V, B], error) {
	r, err := NewRepresentation[V, B](size)
	if err != nil {
		return nil, err
	}
	if len(r.lanes) == 0 {
		return r, nil
	}
	var b B
	fill := b.Set(value)
	for i := range r.lanes {
		r.lanes[i] = fill
	}
	return r, nil
}

// Size returns the number of logical values.
func (r *Representation[V, B]) Size() int { return r.size }

// Elements returns the number of lanes: ceil(Size() / LaneWidth()).
func (r *Representation[V, B]) Elements() int { return len(r.lanes) }

// LaneWidth returns the number of float32 values per lane.
func (r *Representation[V, B]) LaneWidth() int {
	var b B
	return b.Lanes()
}

// Alignment returns the byte alignment of the lane buffer.
func (r *Representation[V, B]) Alignment() int {
	var b B
	return b.Alignment()
}

// Lane returns lane i.
func (r *Representation[V, B]) Lane(i int) (V, error) {
	if i < 0 || i >= len(r.lanes) {
		var zero V
		return zero, fmt.Errorf("%w: lane %d of %d", ErrOutOfRange, i, len(r.lanes))
	}
	return r.lanes[i], nil
}

// SetLane overwrites lane i.
func (r *Representation[V, B]) SetLane(i int, v V) error {
	if i < 0 || i >= len(r.lanes) {
		return fmt.Errorf("%w: lane %d of %d", ErrOutOfRange, i, len(r.lanes))
	}
	r.lanes[i] = v
	return nil
}

// Scalar returns value i.
func (r *Representation[V, B]) Scalar(i int) (float32, error) {
	if i < 0 || i >= r.size {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfRange, i, r.size)
	}
	var b B
	lane, slot := hwy.SplitIndex(i, b.Lanes())
	return b.GetLane(r.lanes[lane], slot), nil
}

// SetScalar overwrites value i.
func (r *Representation[V, B]) SetScalar(i int, x float32) error {
	if i < 0 || i >= r.size {
		return fmt.Errorf("%w: element %d of %d", ErrOutOfRange, i, r.size)
	}
	var b B
	lane, slot := hwy.SplitIndex(i, b.Lanes())
	r.lanes[lane] = b.InsertLane(r.lanes[lane], slot, x)
	return nil
}

// Assign copies other into r. Both must have the same Size; a nil other is
// rejected with ErrInvalidArgument.
func (r *Representation[V, B]) Assign(other *Representation[V, B]) error {
	if other == nil {
		return fmt.Errorf("%w: assigning nil representation", ErrInvalidArgument)
	}
	if other.size != r.size {
		return fmt.Errorf("%w: assigning size %d to size %d", ErrInvalidArgument, other.size, r.size)
	}
	copy(r.lanes, other.lanes)
	return nil
}

// Clone returns a deep copy of r in freshly allocated aligned storage.
func (r *Representation[V, B]) Clone() *Representation[V, B] {
	c, err := NewRepresentation[V, B](r.size)
	if err != nil {
		// r already holds a buffer of this size.
		panic("valarray: clone of an allocated representation failed: " + err.Error())
	}
	copy(c.lanes, r.lanes)
	return c
}

// CopyFrom loads src into r. len(src) must equal Size(). Padding slots of
// the last lane are zeroed.
func (r *Representation[V, B]) CopyFrom(src []float32) error {
	if len(src) != r.size {
		return fmt.Errorf("%w: slice of length %d for size %d", ErrInvalidArgument, len(src), r.size)
	}
	var b B
	w := b.Lanes()
	for i := range r.lanes {
		r.lanes[i] = b.Load(src[i*w:])
	}
	return nil
}

// CopyTo stores the Size() values of r into dst, which must be at least
// that long. It returns the number of values written.
func (r *Representation[V, B]) CopyTo(dst []float32) (int, error) {
	if len(dst) < r.size {
		return 0, fmt.Errorf("%w: slice of length %d for size %d", ErrInvalidArgument, len(dst), r.size)
	}
	var b B
	w := b.Lanes()
	hwy.ProcessWithTail(r.size, w,
		func(lane int) { b.Store(r.lanes[lane], dst[lane*w:]) },
		func(lane, count int) { b.Store(r.lanes[lane], dst[lane*w:lane*w+count]) },
	)
	return r.size, nil
}

// Kind reports KindLeaf.
func (r *Representation[V, B]) Kind() NodeKind { return KindLeaf }

// Ops reports 0: reading a lane runs no primitive.
func (r *Representation[V, B]) Ops() int { return 0 }

// Err reports nil; storage is always valid.
func (r *Representation[V, B]) Err() error { return nil }

func (r *Representation[V, B]) eval(i int) V { return r.lanes[i] }
