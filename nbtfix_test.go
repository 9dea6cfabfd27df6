package nbtfix

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Two full pipeline runs with the same delivery mode must produce
// identical content. Order is not part of the contract, so tuples are
// compared as sorted fingerprint multisets.
func TestPipelineDeterministic(t *testing.T) {
	modes := []Delivery{
		{},
		{IncludeTags: true},
		{AllAtOnce: true},
		{IncludeTags: true, AllAtOnce: true},
	}

	for _, mode := range modes {
		first := collectFingerprints(t, Dispatch(NewRegistry().Aggregate(), mode))
		second := collectFingerprints(t, Dispatch(NewRegistry().Aggregate(), mode))

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("mode %+v: runs differ (-first +second):\n%s", mode, diff)
		}
	}
}

func collectFingerprints(t *testing.T, stream *Stream) []string {
	t.Helper()

	var fps []string
	for args, ok := stream.Next(); ok; args, ok = stream.Next() {
		switch payload := args[0].(type) {
		case Value:
			fps = append(fps, payload.fingerprint())
		case []Value:
			for _, v := range payload {
				fps = append(fps, v.fingerprint())
			}
		case *Aggregate:
			for _, p := range payload.Pairs() {
				fps = append(fps, p.Value.fingerprint())
			}
		default:
			t.Fatalf("unexpected payload %T", payload)
		}
	}
	sort.Strings(fps)
	return fps
}

// Full encode/decode round-trip over every aggregated fixture, driven
// through the dispatch layer the way a parameterized test consumer would.
func TestPipelineRoundTripAllFixtures(t *testing.T) {
	stream := Dispatch(NewRegistry().Aggregate(), Delivery{IncludeTags: true})

	n := 0
	for args, ok := stream.Next(); ok; args, ok = stream.Next() {
		v := args[0].(Value)
		tag := args[1].(TagType)

		encoded, err := PayloadEncoder(tag)(v)
		if err != nil {
			t.Fatalf("encoding %v fixture: %v", tag, err)
		}

		decoded, err := NewDecoder(encoded).DecodeValue(tag)
		if err != nil {
			t.Fatalf("decoding %v fixture: %v", tag, err)
		}
		if !decoded.Equal(v) {
			t.Errorf("%v fixture did not round-trip", tag)
		}
		n++
	}

	if n == 0 {
		t.Fatal("no fixtures dispatched")
	}
}
