package nbtfix

import "fmt"

// EncodeFunc is the per-type codec capability: it serializes one value to
// its canonical payload bytes.
type EncodeFunc func(Value) ([]byte, error)

// EncodedSample pairs a fixture value with its canonical payload encoding.
type EncodedSample struct {
	Value   Value
	Encoded []byte
}

// PayloadEncoder returns the canonical EncodeFunc for the given tag type.
// The returned func rejects values of any other type: samplers must only
// be paired with the encoder for their own tag.
func PayloadEncoder(t TagType) EncodeFunc {
	return func(v Value) ([]byte, error) {
		if v.Type != t {
			return nil, fmt.Errorf("%w: encoding %v payload, got %v value", ErrTagMismatch, t, v.Type)
		}
		enc := NewEncoder(64)
		if err := enc.EncodeValue(v); err != nil {
			return nil, err
		}
		return enc.Bytes(), nil
	}
}

// EncodedSamples runs the sampler and pairs each value with its encoding.
// An encoder failure propagates: a sampler must never produce a value its
// paired encoder cannot serialize, so an error here is a fixture defect.
func EncodedSamples(s Sampler, enc EncodeFunc) ([]EncodedSample, error) {
	values := s()
	out := make([]EncodedSample, 0, len(values))
	for _, v := range values {
		b, err := enc(v)
		if err != nil {
			return nil, fmt.Errorf("nbtfix: encoding %v sample: %w", v.Type, err)
		}
		out = append(out, EncodedSample{Value: v, Encoded: b})
	}
	return out, nil
}

// PairEncoded is the stream form of EncodedSamples: one (Value, []byte)
// tuple per sample.
func PairEncoded(s Sampler, enc EncodeFunc) (*Stream, error) {
	samples, err := EncodedSamples(s, enc)
	if err != nil {
		return nil, err
	}
	tuples := make([]Args, 0, len(samples))
	for _, es := range samples {
		tuples = append(tuples, Args{es.Value, es.Encoded})
	}
	return &Stream{tuples: tuples}, nil
}
