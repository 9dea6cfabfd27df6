package nbtfix

import (
	"encoding/binary"
	"math"
	"sort"
)

// Value represents one NBT payload of any sampled tag type.
// Exactly one of the per-type fields is meaningful, selected by Type.
// Values are treated as immutable once constructed; samplers hand them
// to the aggregator and nothing mutates them afterwards.
type Value struct {
	Type     TagType
	Byte     int8
	Short    int16
	Int      int32
	Long     int64
	Float    float32
	Double   float64
	Bytes    []byte // TagByteArray
	Str      string // TagString
	Ints     []int32
	Longs    []int64
	List     *List
	Compound Compound
}

// List is an ordered sequence of same-typed payloads.
// Elem is TagEnd only when the list is empty.
type List struct {
	Elem  TagType
	Items []Value
}

// Compound is a string-keyed mapping of payloads.
type Compound map[string]Value

// ByteValue returns a TagByte payload
func ByteValue(v int8) Value {
	return Value{Type: TagByte, Byte: v}
}

// ShortValue returns a TagShort payload
func ShortValue(v int16) Value {
	return Value{Type: TagShort, Short: v}
}

// IntValue returns a TagInt payload
func IntValue(v int32) Value {
	return Value{Type: TagInt, Int: v}
}

// LongValue returns a TagLong payload
func LongValue(v int64) Value {
	return Value{Type: TagLong, Long: v}
}

// FloatValue returns a TagFloat payload
func FloatValue(v float32) Value {
	return Value{Type: TagFloat, Float: v}
}

// DoubleValue returns a TagDouble payload
func DoubleValue(v float64) Value {
	return Value{Type: TagDouble, Double: v}
}

// ByteArrayValue returns a TagByteArray payload
func ByteArrayValue(v []byte) Value {
	return Value{Type: TagByteArray, Bytes: v}
}

// StringValue returns a TagString payload
func StringValue(v string) Value {
	return Value{Type: TagString, Str: v}
}

// IntArrayValue returns a TagIntArray payload
func IntArrayValue(v []int32) Value {
	return Value{Type: TagIntArray, Ints: v}
}

// LongArrayValue returns a TagLongArray payload
func LongArrayValue(v []int64) Value {
	return Value{Type: TagLongArray, Longs: v}
}

// ListValue returns a TagList payload holding items of type elem
func ListValue(elem TagType, items ...Value) Value {
	return Value{Type: TagList, List: &List{Elem: elem, Items: items}}
}

// CompoundValue returns a TagCompound payload
func CompoundValue(m Compound) Value {
	return Value{Type: TagCompound, Compound: m}
}

// Len returns the element count of array-like payloads, the byte length
// of strings, and 0 for scalars.
func (v Value) Len() int {
	switch v.Type {
	case TagByteArray:
		return len(v.Bytes)
	case TagString:
		return len(v.Str)
	case TagIntArray:
		return len(v.Ints)
	case TagLongArray:
		return len(v.Longs)
	case TagList:
		return v.List.len()
	case TagCompound:
		return len(v.Compound)
	default:
		return 0
	}
}

// Equal reports whether two values are structurally equal: same tag type
// and same content, comparing arrays element-wise and recursing through
// lists and compounds. Floats compare by bit pattern so NaN samples stay
// self-equal.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TagByte:
		return v.Byte == o.Byte
	case TagShort:
		return v.Short == o.Short
	case TagInt:
		return v.Int == o.Int
	case TagLong:
		return v.Long == o.Long
	case TagFloat:
		return math.Float32bits(v.Float) == math.Float32bits(o.Float)
	case TagDouble:
		return math.Float64bits(v.Double) == math.Float64bits(o.Double)
	case TagByteArray:
		return bytesEqual(v.Bytes, o.Bytes)
	case TagString:
		return v.Str == o.Str
	case TagIntArray:
		if len(v.Ints) != len(o.Ints) {
			return false
		}
		for i := range v.Ints {
			if v.Ints[i] != o.Ints[i] {
				return false
			}
		}
		return true
	case TagLongArray:
		if len(v.Longs) != len(o.Longs) {
			return false
		}
		for i := range v.Longs {
			if v.Longs[i] != o.Longs[i] {
				return false
			}
		}
		return true
	case TagList:
		a, b := v.List, o.List
		if a.len() != b.len() {
			return false
		}
		if a.len() == 0 {
			// Empty lists are equal regardless of element type.
			return true
		}
		if a.Elem != b.Elem {
			return false
		}
		for i := range a.Items {
			if !a.Items[i].Equal(b.Items[i]) {
				return false
			}
		}
		return true
	case TagCompound:
		if len(v.Compound) != len(o.Compound) {
			return false
		}
		for k, av := range v.Compound {
			bv, ok := o.Compound[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (l *List) len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// fingerprint returns a canonical byte-string identity for the value:
// two values have equal fingerprints exactly when Equal reports true.
// The tag type leads the fingerprint, so values of different types never
// collide. Compound keys are visited in sorted order to keep the result
// independent of map iteration order.
func (v Value) fingerprint() string {
	return string(v.appendKey(make([]byte, 0, 64)))
}

func (v Value) appendKey(dst []byte) []byte {
	dst = append(dst, byte(v.Type))
	switch v.Type {
	case TagByte:
		dst = append(dst, byte(v.Byte))
	case TagShort:
		dst = binary.BigEndian.AppendUint16(dst, uint16(v.Short))
	case TagInt:
		dst = binary.BigEndian.AppendUint32(dst, uint32(v.Int))
	case TagLong:
		dst = binary.BigEndian.AppendUint64(dst, uint64(v.Long))
	case TagFloat:
		dst = binary.BigEndian.AppendUint32(dst, math.Float32bits(v.Float))
	case TagDouble:
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(v.Double))
	case TagByteArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.Bytes)))
		dst = append(dst, v.Bytes...)
	case TagString:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.Str)))
		dst = append(dst, v.Str...)
	case TagIntArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.Ints)))
		for _, n := range v.Ints {
			dst = binary.BigEndian.AppendUint32(dst, uint32(n))
		}
	case TagLongArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.Longs)))
		for _, n := range v.Longs {
			dst = binary.BigEndian.AppendUint64(dst, uint64(n))
		}
	case TagList:
		if v.List.len() == 0 {
			// Empty lists fingerprint identically regardless of Elem,
			// matching Equal.
			dst = append(dst, byte(TagEnd))
			dst = binary.BigEndian.AppendUint32(dst, 0)
			break
		}
		dst = append(dst, byte(v.List.Elem))
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.List.Items)))
		for _, item := range v.List.Items {
			dst = item.appendKey(dst)
		}
	case TagCompound:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.Compound)))
		for _, k := range sortedKeys(v.Compound) {
			dst = binary.BigEndian.AppendUint32(dst, uint32(len(k)))
			dst = append(dst, k...)
			dst = v.Compound[k].appendKey(dst)
		}
	}
	return dst
}

// sortedKeys returns the compound's keys in sorted order
func sortedKeys(m Compound) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bytesEqual compares two byte slices for equality
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
