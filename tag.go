package nbtfix

// TagType identifies the kind of payload an NBT tag carries.
// The numeric values are the tag IDs used on the wire.
type TagType uint8

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// String returns the canonical name of the tag type
func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "TAG_End"
	case TagByte:
		return "TAG_Byte"
	case TagShort:
		return "TAG_Short"
	case TagInt:
		return "TAG_Int"
	case TagLong:
		return "TAG_Long"
	case TagFloat:
		return "TAG_Float"
	case TagDouble:
		return "TAG_Double"
	case TagByteArray:
		return "TAG_Byte_Array"
	case TagString:
		return "TAG_String"
	case TagList:
		return "TAG_List"
	case TagCompound:
		return "TAG_Compound"
	case TagIntArray:
		return "TAG_Int_Array"
	case TagLongArray:
		return "TAG_Long_Array"
	default:
		return "unknown"
	}
}

// IsValid returns true if t is one of the defined tag types, including TagEnd.
func (t TagType) IsValid() bool {
	return t <= TagLongArray
}

// sampledTags lists every tag type that carries a payload, in wire-ID order.
// TagEnd is a terminator, not a value, and is deliberately absent.
var sampledTags = [...]TagType{
	TagByte,
	TagShort,
	TagInt,
	TagLong,
	TagFloat,
	TagDouble,
	TagByteArray,
	TagString,
	TagList,
	TagCompound,
	TagIntArray,
	TagLongArray,
}

// SampledTags returns the tag types that fixtures are generated for,
// in declaration order. The returned slice is a copy.
func SampledTags() []TagType {
	tags := make([]TagType, len(sampledTags))
	copy(tags, sampledTags[:])
	return tags
}
