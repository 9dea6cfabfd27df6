package nbtfix

import (
	"encoding/binary"
	"math"
)

// Decoder reads NBT payload data from a byte slice.
type Decoder struct {
	data  []byte
	pos   int
	cfg   Config
	depth int
}

// NewDecoder creates a new Decoder for the given data with default config
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		data: data,
		cfg:  DefaultConfig(),
	}
}

// NewDecoderWithConfig creates a new Decoder with custom config
func NewDecoderWithConfig(data []byte, cfg Config) *Decoder {
	return &Decoder{
		data: data,
		cfg:  cfg,
	}
}

// Reset resets the decoder to decode new data
func (d *Decoder) Reset(data []byte) {
	d.data = data
	d.pos = 0
	d.depth = 0
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// Position returns the current position in the data
func (d *Decoder) Position() int {
	return d.pos
}

// hasBytes returns true if there are at least n bytes remaining
func (d *Decoder) hasBytes(n int) bool {
	return d.pos+n <= len(d.data)
}

// readByte reads a single byte
func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, ErrUnexpectedEOF
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

// readBytes reads n bytes and returns a slice into the source
func (d *Decoder) readBytes(n int) ([]byte, error) {
	if !d.hasBytes(n) {
		return nil, ErrUnexpectedEOF
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readUint16 reads a big-endian uint16
func (d *Decoder) readUint16() (uint16, error) {
	if !d.hasBytes(2) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint16(d.data[d.pos:])
	d.pos += 2
	return v, nil
}

// readUint32 reads a big-endian uint32
func (d *Decoder) readUint32() (uint32, error) {
	if !d.hasBytes(4) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}

// readUint64 reads a big-endian uint64
func (d *Decoder) readUint64() (uint64, error) {
	if !d.hasBytes(8) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint64(d.data[d.pos:])
	d.pos += 8
	return v, nil
}

// readLength reads an int32 length prefix and rejects negative values
func (d *Decoder) readLength() (int, error) {
	v, err := d.readUint32()
	if err != nil {
		return 0, err
	}
	n := int32(v)
	if n < 0 {
		return 0, ErrNegativeLength
	}
	return int(n), nil
}

// DecodeByte reads a TAG_Byte payload
func (d *Decoder) DecodeByte() (int8, error) {
	b, err := d.readByte()
	return int8(b), err
}

// DecodeShort reads a TAG_Short payload
func (d *Decoder) DecodeShort() (int16, error) {
	v, err := d.readUint16()
	return int16(v), err
}

// DecodeInt reads a TAG_Int payload
func (d *Decoder) DecodeInt() (int32, error) {
	v, err := d.readUint32()
	return int32(v), err
}

// DecodeLong reads a TAG_Long payload
func (d *Decoder) DecodeLong() (int64, error) {
	v, err := d.readUint64()
	return int64(v), err
}

// DecodeFloat reads a TAG_Float payload
func (d *Decoder) DecodeFloat() (float32, error) {
	v, err := d.readUint32()
	return math.Float32frombits(v), err
}

// DecodeDouble reads a TAG_Double payload
func (d *Decoder) DecodeDouble() (float64, error) {
	v, err := d.readUint64()
	return math.Float64frombits(v), err
}

// DecodeByteArray reads a TAG_Byte_Array payload.
// The returned slice is a copy, not a view into the source.
func (d *Decoder) DecodeByteArray() ([]byte, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	if n > d.cfg.MaxArrayLen {
		return nil, ErrArrayTooLong
	}
	b, err := d.readBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// DecodeString reads a TAG_String payload
func (d *Decoder) DecodeString() (string, error) {
	n, err := d.readUint16()
	if err != nil {
		return "", err
	}
	if int(n) > d.cfg.MaxStringLen {
		return "", ErrStringTooLong
	}
	b, err := d.readBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeIntArray reads a TAG_Int_Array payload
func (d *Decoder) DecodeIntArray() ([]int32, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	if n > d.cfg.MaxArrayLen {
		return nil, ErrArrayTooLong
	}
	if !d.hasBytes(n * 4) {
		return nil, ErrUnexpectedEOF
	}
	out := make([]int32, n)
	for i := range out {
		v, _ := d.readUint32()
		out[i] = int32(v)
	}
	return out, nil
}

// DecodeLongArray reads a TAG_Long_Array payload
func (d *Decoder) DecodeLongArray() ([]int64, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	if n > d.cfg.MaxArrayLen {
		return nil, ErrArrayTooLong
	}
	if !d.hasBytes(n * 8) {
		return nil, ErrUnexpectedEOF
	}
	out := make([]int64, n)
	for i := range out {
		v, _ := d.readUint64()
		out[i] = int64(v)
	}
	return out, nil
}

// DecodeList reads a TAG_List payload
func (d *Decoder) DecodeList() (*List, error) {
	if d.depth >= d.cfg.MaxDepth {
		return nil, ErrMaxDepthExceeded
	}
	elemByte, err := d.readByte()
	if err != nil {
		return nil, err
	}
	elem := TagType(elemByte)
	if !elem.IsValid() {
		return nil, ErrInvalidTag
	}
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	if n > d.cfg.MaxListLen {
		return nil, ErrListTooLong
	}
	if elem == TagEnd && n > 0 {
		return nil, ErrInvalidTag
	}
	l := &List{Elem: elem, Items: make([]Value, 0, min(n, 64))}
	d.depth++
	for i := 0; i < n; i++ {
		item, err := d.DecodeValue(elem)
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, item)
	}
	d.depth--
	return l, nil
}

// DecodeCompound reads a TAG_Compound payload
func (d *Decoder) DecodeCompound() (Compound, error) {
	if d.depth >= d.cfg.MaxDepth {
		return nil, ErrMaxDepthExceeded
	}
	m := Compound{}
	d.depth++
	for {
		tagByte, err := d.readByte()
		if err != nil {
			return nil, err
		}
		t := TagType(tagByte)
		if t == TagEnd {
			break
		}
		if !t.IsValid() {
			return nil, ErrInvalidTag
		}
		name, err := d.DecodeString()
		if err != nil {
			return nil, err
		}
		v, err := d.DecodeValue(t)
		if err != nil {
			return nil, err
		}
		m[name] = v
		if len(m) > d.cfg.MaxCompoundLen {
			return nil, ErrCompoundTooLarge
		}
	}
	d.depth--
	return m, nil
}

// DecodeNamed reads a full named tag: tag ID, name, payload.
func (d *Decoder) DecodeNamed() (string, Value, error) {
	tagByte, err := d.readByte()
	if err != nil {
		return "", Value{}, err
	}
	t := TagType(tagByte)
	if t == TagEnd || !t.IsValid() {
		return "", Value{}, ErrInvalidTag
	}
	name, err := d.DecodeString()
	if err != nil {
		return "", Value{}, err
	}
	v, err := d.DecodeValue(t)
	return name, v, err
}

// DecodeValue reads the payload of the given tag type
func (d *Decoder) DecodeValue(t TagType) (Value, error) {
	switch t {
	case TagByte:
		v, err := d.DecodeByte()
		return ByteValue(v), err
	case TagShort:
		v, err := d.DecodeShort()
		return ShortValue(v), err
	case TagInt:
		v, err := d.DecodeInt()
		return IntValue(v), err
	case TagLong:
		v, err := d.DecodeLong()
		return LongValue(v), err
	case TagFloat:
		v, err := d.DecodeFloat()
		return FloatValue(v), err
	case TagDouble:
		v, err := d.DecodeDouble()
		return DoubleValue(v), err
	case TagByteArray:
		v, err := d.DecodeByteArray()
		return ByteArrayValue(v), err
	case TagString:
		v, err := d.DecodeString()
		return StringValue(v), err
	case TagList:
		l, err := d.DecodeList()
		if err != nil {
			return Value{}, err
		}
		return Value{Type: TagList, List: l}, nil
	case TagCompound:
		m, err := d.DecodeCompound()
		if err != nil {
			return Value{}, err
		}
		return CompoundValue(m), nil
	case TagIntArray:
		v, err := d.DecodeIntArray()
		return IntArrayValue(v), err
	case TagLongArray:
		v, err := d.DecodeLongArray()
		return LongArrayValue(v), err
	default:
		return Value{}, ErrInvalidTag
	}
}
