package bench

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/samber/lo"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-valarray/hwy"
	"github.com/ajroetker/go-valarray/valarray"
)

var (
	// ErrUnknown is returned for an unknown implementation or scenario name.
	ErrUnknown = errors.New("bench: unknown name")

	// ErrVerification is returned when a result differs from the reference
	// by more than the kernel's tolerance.
	ErrVerification = errors.New("bench: result mismatch")
)

// exactTolerance bounds the relative error of a correctly rounded float32
// result against its float64 reference, with headroom for one rounding per
// term.
const exactTolerance = 1e-6

// Kernel is a scenario prepared for one implementation and size. Inputs are
// allocated and filled; Run performs the timed computation.
type Kernel struct {
	// Run computes the scenario once.
	Run func() error

	// Result returns the output of the last Run.
	Result func() ([]float32, error)

	// Tolerance is the relative error allowed against the reference.
	Tolerance float64

	// Bytes is the size of the input and output arrays.
	Bytes int64
}

// Impl is a named way of computing scenarios.
type Impl struct {
	Name string

	// Backend is the lane backend name, empty for slice implementations.
	Backend string

	prepare func(sc Scenario, size int) (*Kernel, error)
}

// Prepare allocates and fills the inputs of sc for size elements.
func (im Impl) Prepare(sc Scenario, size int) (*Kernel, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative size %d", size)
	}
	if len(sc.Terms) == 0 {
		return nil, fmt.Errorf("scenario %q has no terms", sc.Name)
	}
	k, err := im.prepare(sc, size)
	if err != nil {
		return nil, fmt.Errorf("%s: prepare %s: %w", im.Name, sc.Name, err)
	}
	return k, nil
}

// Impls returns every implementation in report order.
func Impls() []Impl {
	return []Impl{
		{Name: "naive", prepare: prepareNaive},
		{Name: "loop", prepare: prepareLoop},
		lanesImpl[float32, hwy.Scalar](""),
		lanesImpl[hwy.Float32x4, hwy.SSE2](""),
		lanesImpl[hwy.Float32x8, hwy.AVX2](""),
		lanesImpl[hwy.Float32x4, hwy.NEON](""),
		lanesImpl[hwy.NativeLane, hwy.Native]("native"),
		exprImpl[float32, hwy.Scalar](""),
		exprImpl[hwy.Float32x4, hwy.SSE2](""),
		exprImpl[hwy.Float32x8, hwy.AVX2](""),
		exprImpl[hwy.Float32x4, hwy.NEON](""),
		exprImpl[hwy.NativeLane, hwy.Native]("native"),
	}
}

// SelectImpls returns the implementations named in names, in the given
// order and without duplicates.
func SelectImpls(names []string) ([]Impl, error) {
	byName := lo.KeyBy(Impls(), func(im Impl) string { return im.Name })
	var out []Impl
	for _, name := range lo.Uniq(names) {
		im, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: implementation %q (known: %v)", ErrUnknown, name, ImplNames())
		}
		out = append(out, im)
	}
	return out, nil
}

// ImplNames returns the names of every implementation.
func ImplNames() []string {
	return lo.Map(Impls(), func(im Impl, _ int) string { return im.Name })
}

// SelectScenarios returns the scenarios named in names without duplicates.
func SelectScenarios(names []string) ([]Scenario, error) {
	var out []Scenario
	for _, name := range lo.Uniq(names) {
		sc, err := LookupScenario(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func fillSlices(sc Scenario, size int) [][]float32 {
	in := make([][]float32, sc.Inputs())
	for i, v := range sc.Fills {
		in[i] = vek32.Repeat(v, size)
	}
	return in
}

func footprint(sc Scenario, size, laneWidth int) int64 {
	padded := hwy.LaneCount(size, laneWidth) * laneWidth
	return int64(sc.Inputs()+1) * int64(padded) * 4
}

// prepareNaive evaluates eagerly: every operation allocates and fills a
// temporary slice.
func prepareNaive(sc Scenario, size int) (*Kernel, error) {
	in := fillSlices(sc, size)
	var out []float32
	return &Kernel{
		Run: func() error {
			t := sc.Terms[0]
			acc := vek32.Mul(in[t[0]], in[t[1]])
			for _, t := range sc.Terms[1:] {
				acc = vek32.Add(acc, vek32.Mul(in[t[0]], in[t[1]]))
			}
			if sc.Sqrt {
				acc = vek32.Sqrt(acc)
			}
			out = acc
			return nil
		},
		Result:    func() ([]float32, error) { return out, nil },
		Tolerance: exactTolerance,
		Bytes:     footprint(sc, size, 1),
	}, nil
}

// prepareLoop computes each element in one hand-written loop iteration.
func prepareLoop(sc Scenario, size int) (*Kernel, error) {
	in := fillSlices(sc, size)
	out := make([]float32, size)
	return &Kernel{
		Run: func() error {
			for i := range out {
				var acc float32
				for _, t := range sc.Terms {
					acc += in[t[0]][i] * in[t[1]][i]
				}
				if sc.Sqrt {
					acc = math32.Sqrt(acc)
				}
				out[i] = acc
			}
			return nil
		},
		Result:    func() ([]float32, error) { return out, nil },
		Tolerance: exactTolerance,
		Bytes:     footprint(sc, size, 1),
	}, nil
}

func backendName[V hwy.Lane, B hwy.Backend[V]](alias string) string {
	if alias != "" {
		return alias
	}
	var b B
	return b.Name()
}

func tolerance[V hwy.Lane, B hwy.Backend[V]](sc Scenario) float64 {
	var b B
	if sc.Sqrt {
		return max(b.SqrtTolerance(), exactTolerance)
	}
	return exactTolerance
}

// lanesImpl computes each lane with direct backend calls on aligned lane
// buffers, multiplying and adding separately.
func lanesImpl[V hwy.Lane, B hwy.Backend[V]](alias string) Impl {
	name := backendName[V, B](alias)
	return Impl{
		Name:    "lanes/" + name,
		Backend: name,
		prepare: func(sc Scenario, size int) (*Kernel, error) {
			var b B
			count := hwy.LaneCount(size, b.Lanes())
			in := make([][]V, sc.Inputs())
			for i, v := range sc.Fills {
				lanes, err := hwy.AllocLanes[V](count, b.Alignment())
				if err != nil {
					return nil, err
				}
				fill := b.Set(v)
				for j := range lanes {
					lanes[j] = fill
				}
				in[i] = lanes
			}
			out, err := hwy.AllocLanes[V](count, b.Alignment())
			if err != nil {
				return nil, err
			}

			return &Kernel{
				Run: func() error {
					for j := range out {
						t := sc.Terms[0]
						acc := b.Mul(in[t[0]][j], in[t[1]][j])
						for _, t := range sc.Terms[1:] {
							acc = b.Add(acc, b.Mul(in[t[0]][j], in[t[1]][j]))
						}
						if sc.Sqrt {
							acc = b.Sqrt(acc)
						}
						out[j] = acc
					}
					return nil
				},
				Result: func() ([]float32, error) {
					res := make([]float32, size)
					w := b.Lanes()
					hwy.ProcessWithTail(size, w,
						func(lane int) { b.Store(out[lane], res[lane*w:]) },
						func(lane, n int) { b.Store(out[lane], res[lane*w:lane*w+n]) },
					)
					return res, nil
				},
				Tolerance: tolerance[V, B](sc),
				Bytes:     footprint(sc, size, b.Lanes()),
			}, nil
		},
	}
}

// exprImpl builds the scenario as a valarray expression and assigns it.
// Building the tree is part of the timed region.
func exprImpl[V hwy.Lane, B hwy.Backend[V]](alias string) Impl {
	name := backendName[V, B](alias)
	return Impl{
		Name:    "expr/" + name,
		Backend: name,
		prepare: func(sc Scenario, size int) (*Kernel, error) {
			in := make([]*valarray.Array[V, B], sc.Inputs())
			for i, v := range sc.Fills {
				a, err := valarray.Filled[V, B](size, v)
				if err != nil {
					return nil, err
				}
				in[i] = a
			}
			out, err := valarray.New[V, B](size)
			if err != nil {
				return nil, err
			}

			var b B
			return &Kernel{
				Run: func() error {
					t := sc.Terms[0]
					e := in[t[0]].Mul(in[t[1]])
					for _, t := range sc.Terms[1:] {
						e = e.Add(in[t[0]].Mul(in[t[1]]))
					}
					if sc.Sqrt {
						e = e.Sqrt()
					}
					return out.Assign(e)
				},
				Result:    out.ToSlice,
				Tolerance: tolerance[V, B](sc),
				Bytes:     footprint(sc, size, b.Lanes()),
			}, nil
		},
	}
}
