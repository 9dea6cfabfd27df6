package nbtfix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The byte-array sampler's lengths and fill pattern are part of the fixture
// contract: downstream encode tests reconstruct the expected content from
// the same formula.
func TestByteArraySamples(t *testing.T) {
	samples := ByteArraySamples()

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	wantLens := []int{0, 500, 4096}
	for i, want := range wantLens {
		if got := samples[i].Len(); got != want {
			t.Errorf("sample %d: length %d, want %d", i, got, want)
		}
	}

	mid := samples[1].Bytes
	for i := range mid {
		want := byte(int8((i*i*255 + i*7) % 100))
		if mid[i] != want {
			t.Fatalf("element %d: got %d, want %d", i, mid[i], want)
		}
	}
}

func TestFillBytesDiversity(t *testing.T) {
	b := FillBytes(500)

	seen := map[byte]bool{}
	for _, v := range b {
		seen[v] = true
	}
	// The polynomial fill must not degenerate into a constant or a short
	// cycle; a handful of distinct values would indicate a regression.
	if len(seen) < 20 {
		t.Errorf("fill pattern produced only %d distinct bytes", len(seen))
	}
}

func TestVariableLengthSamplersCoverEmptySmallLarge(t *testing.T) {
	samplers := map[string]Sampler{
		"byte array": ByteArraySamples,
		"string":     StringSamples,
		"int array":  IntArraySamples,
		"long array": LongArraySamples,
	}

	for name, s := range samplers {
		t.Run(name, func(t *testing.T) {
			samples := s()
			if len(samples) != 3 {
				t.Fatalf("expected 3 samples, got %d", len(samples))
			}
			if samples[0].Len() != 0 {
				t.Errorf("first sample should be empty, has length %d", samples[0].Len())
			}
			if samples[1].Len() == 0 || samples[2].Len() <= samples[1].Len() {
				t.Errorf("expected small then large samples, got lengths %d and %d",
					samples[1].Len(), samples[2].Len())
			}
		})
	}
}

func TestSamplersProduceOwnTagType(t *testing.T) {
	reg := NewRegistry()

	for _, tag := range SampledTags() {
		t.Run(tag.String(), func(t *testing.T) {
			samples := reg.Lookup(tag)()
			if len(samples) == 0 {
				t.Fatal("sampler produced no values")
			}
			for i, v := range samples {
				if v.Type != tag {
					t.Errorf("sample %d has type %v, want %v", i, v.Type, tag)
				}
			}
		})
	}
}

func TestSamplersAreDeterministic(t *testing.T) {
	reg := NewRegistry()

	for _, tag := range SampledTags() {
		t.Run(tag.String(), func(t *testing.T) {
			s := reg.Lookup(tag)
			if diff := cmp.Diff(s(), s()); diff != "" {
				t.Errorf("two invocations differ (-first +second):\n%s", diff)
			}
		})
	}
}

// Samplers hand ownership of their output to the caller; mutating one
// returned set must not leak into the next.
func TestSamplersReturnFreshValues(t *testing.T) {
	first := ByteArraySamples()
	first[1].Bytes[0] ^= 0xff

	second := ByteArraySamples()
	if second[1].Bytes[0] != byte(int8(0)) {
		t.Error("mutation of a previous sample set leaked into a fresh one")
	}
}

func TestListSamplesShapes(t *testing.T) {
	samples := ListSamples()

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	if samples[0].Len() != 0 {
		t.Error("first list sample should be empty")
	}
	if samples[1].List.Elem != TagInt {
		t.Errorf("second list sample should hold ints, got %v", samples[1].List.Elem)
	}
	if samples[2].List.Elem != TagCompound {
		t.Errorf("third list sample should hold compounds, got %v", samples[2].List.Elem)
	}
}

func TestCompoundSamplesShapes(t *testing.T) {
	samples := CompoundSamples()

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	if samples[0].Len() != 0 {
		t.Error("first compound sample should be empty")
	}

	nested, ok := samples[2].Compound["nested"]
	if !ok || nested.Type != TagCompound {
		t.Error("large compound sample should contain a nested compound")
	}
}
