package hwy

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &Registry{}
	reg.Register(Describe[float32](Scalar{}, cpu.SIMDNone, 0))
	reg.Register(Describe[Float32x4](SSE2{}, cpu.SIMDSSE2, 10))
	reg.Register(Describe[Float32x8](AVX2{}, cpu.SIMDAVX2, 20))
	reg.Register(Describe[Float32x4](NEON{}, cpu.SIMDNEON, 15))

	tests := []struct {
		features cpu.Features
		want     string
	}{
		{cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{cpu.Features{HasSSE2: true}, "sse2"},
		{cpu.Features{HasNEON: true}, "neon"},
		{cpu.Features{}, "scalar"},
		{cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "scalar"},
	}
	for _, tt := range tests {
		entry := reg.Lookup(tt.features)
		if entry == nil || entry.Name != tt.want {
			t.Errorf("Lookup(%+v): expected %s, got %#v", tt.features, tt.want, entry)
		}
	}
}

func TestRegistryLookupEmpty(t *testing.T) {
	reg := &Registry{}
	if entry := reg.Lookup(cpu.Features{HasAVX2: true}); entry != nil {
		t.Fatalf("expected nil from an empty registry, got %#v", entry)
	}
}

func TestRegistryEntriesSorted(t *testing.T) {
	entries := Global.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 backends, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Priority < entries[i].Priority {
			t.Errorf("entries not sorted by priority: %s before %s", entries[i-1].Name, entries[i].Name)
		}
	}
	if entries[0].Name != "avx2" || entries[len(entries)-1].Name != "scalar" {
		t.Errorf("unexpected order: first %s, last %s", entries[0].Name, entries[len(entries)-1].Name)
	}
}

func TestRegistryByName(t *testing.T) {
	info, ok := Global.ByName("neon")
	if !ok {
		t.Fatal("neon not registered")
	}
	if info.SqrtTolerance != NEONSqrtTolerance || info.FusedMulAdd {
		t.Errorf("neon info: %+v", info)
	}
	if _, ok := Global.ByName("avx512"); ok {
		t.Error("avx512 should not be registered")
	}
}

func TestRegistryReset(t *testing.T) {
	reg := &Registry{}
	reg.Register(Describe[float32](Scalar{}, cpu.SIMDNone, 0))
	reg.Reset()
	if n := len(reg.Entries()); n != 0 {
		t.Errorf("expected no entries after Reset, got %d", n)
	}
}
