package nbtfix

import "math"

// Sampler produces the fixture values for one tag type. Implementations
// must be pure: no shared state, and identical output on every call, so
// parallel test cases can each build their own fixture set.
type Sampler func() []Value

// FillBytes generates a diverse, deterministic byte array of the given
// length. Each element is a polynomial function of its index, so encode
// bugs that only show up on varied data get exercised without a seeded
// random source.
func FillBytes(length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(int8((i*i*255 + i*7) % 100))
	}
	return out
}

// FillInts generates a deterministic int32 array covering positive and
// negative magnitudes.
func FillInts(length int) []int32 {
	out := make([]int32, length)
	for i := 0; i < length; i++ {
		out[i] = int32((i*i*31+i*17)%65521 - 32760)
	}
	return out
}

// FillLongs generates a deterministic int64 array with values wide enough
// to exercise all eight payload bytes.
func FillLongs(length int) []int64 {
	out := make([]int64, length)
	for i := 0; i < length; i++ {
		n := int64(i)*int64(i)*1000003 + int64(i)*97
		out[i] = n%(1<<40) - (1 << 39)
	}
	return out
}

// fillString generates a deterministic printable string of the given length.
func fillString(length int) string {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(' ' + (i*i*13+i*5)%95)
	}
	return string(out)
}

// ByteSamples covers the byte range boundaries
func ByteSamples() []Value {
	return []Value{
		ByteValue(math.MinInt8),
		ByteValue(0),
		ByteValue(math.MaxInt8),
	}
}

// ShortSamples covers the short range boundaries
func ShortSamples() []Value {
	return []Value{
		ShortValue(math.MinInt16),
		ShortValue(0),
		ShortValue(math.MaxInt16),
	}
}

// IntSamples covers the int range boundaries
func IntSamples() []Value {
	return []Value{
		IntValue(math.MinInt32),
		IntValue(0),
		IntValue(math.MaxInt32),
	}
}

// LongSamples covers the long range boundaries
func LongSamples() []Value {
	return []Value{
		LongValue(math.MinInt64),
		LongValue(0),
		LongValue(math.MaxInt64),
	}
}

// FloatSamples covers zero, a fractional value, and the largest finite float
func FloatSamples() []Value {
	return []Value{
		FloatValue(0),
		FloatValue(-1.5),
		FloatValue(math.MaxFloat32),
	}
}

// DoubleSamples covers zero, a fractional value, and the largest finite double
func DoubleSamples() []Value {
	return []Value{
		DoubleValue(0),
		DoubleValue(math.Pi),
		DoubleValue(math.MaxFloat64),
	}
}

// ByteArraySamples covers the empty, small, and large array cases.
// The lengths and fill pattern are fixed; tests depend on them.
func ByteArraySamples() []Value {
	return []Value{
		ByteArrayValue(FillBytes(0)),
		ByteArrayValue(FillBytes(500)),
		ByteArrayValue(FillBytes(4096)),
	}
}

// StringSamples covers the empty, small, and large string cases.
// The small case includes multi-byte runes to exercise UTF-8 handling.
func StringSamples() []Value {
	return []Value{
		StringValue(""),
		StringValue("héllo wörld § NBT"),
		StringValue(fillString(3000)),
	}
}

// ListSamples covers the empty list, a scalar list, and a list of compounds
func ListSamples() []Value {
	return []Value{
		ListValue(TagEnd),
		ListValue(TagInt,
			IntValue(-1),
			IntValue(0),
			IntValue(12345678),
			IntValue(math.MaxInt32),
		),
		ListValue(TagCompound,
			CompoundValue(Compound{
				"id":    ShortValue(7),
				"label": StringValue("first"),
			}),
			CompoundValue(Compound{
				"id":    ShortValue(8),
				"label": StringValue("second"),
			}),
		),
	}
}

// CompoundSamples covers the empty compound, a flat compound of scalars,
// and a deeply nested compound mixing every container kind
func CompoundSamples() []Value {
	return []Value{
		CompoundValue(Compound{}),
		CompoundValue(Compound{
			"byte":   ByteValue(42),
			"double": DoubleValue(0.5),
			"name":   StringValue("flat"),
		}),
		CompoundValue(Compound{
			"bytes": ByteArrayValue(FillBytes(32)),
			"ints":  IntArrayValue(FillInts(16)),
			"list": ListValue(TagString,
				StringValue("a"),
				StringValue("b"),
			),
			"nested": CompoundValue(Compound{
				"longs": LongArrayValue(FillLongs(8)),
				"pi":    FloatValue(3.14159),
			}),
		}),
	}
}

// IntArraySamples covers the empty, small, and large array cases
func IntArraySamples() []Value {
	return []Value{
		IntArrayValue(FillInts(0)),
		IntArrayValue(FillInts(350)),
		IntArrayValue(FillInts(2048)),
	}
}

// LongArraySamples covers the empty, small, and large array cases
func LongArraySamples() []Value {
	return []Value{
		LongArrayValue(FillLongs(0)),
		LongArrayValue(FillLongs(120)),
		LongArrayValue(FillLongs(1024)),
	}
}
