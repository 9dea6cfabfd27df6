package nbtfix

import (
	"encoding/binary"
	"math"
)

// Encoder writes NBT payload data to a byte buffer.
// All multi-byte values are big-endian, per the NBT format.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new Encoder with the given initial capacity.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{
		buf: make([]byte, 0, capacity),
	}
}

// NewEncoderBuffer creates an Encoder that writes to an existing buffer.
// The buffer will be grown as needed.
func NewEncoderBuffer(buf []byte) *Encoder {
	return &Encoder{
		buf: buf[:0], // reset length but keep capacity
	}
}

// Reset resets the encoder for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the length of encoded data.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// grow ensures there's space for n more bytes
func (e *Encoder) grow(n int) {
	if cap(e.buf)-len(e.buf) >= n {
		return
	}
	// Double capacity or add n, whichever is larger
	newCap := cap(e.buf) * 2
	if newCap < len(e.buf)+n {
		newCap = len(e.buf) + n
	}
	newBuf := make([]byte, len(e.buf), newCap)
	copy(newBuf, e.buf)
	e.buf = newBuf
}

// writeByte writes a single byte
func (e *Encoder) writeByte(b byte) {
	e.grow(1)
	e.buf = append(e.buf, b)
}

// writeBytes writes multiple bytes
func (e *Encoder) writeBytes(b []byte) {
	e.grow(len(b))
	e.buf = append(e.buf, b...)
}

// writeUint16 writes a big-endian uint16
func (e *Encoder) writeUint16(v uint16) {
	e.grow(2)
	e.buf = binary.BigEndian.AppendUint16(e.buf, v)
}

// writeUint32 writes a big-endian uint32
func (e *Encoder) writeUint32(v uint32) {
	e.grow(4)
	e.buf = binary.BigEndian.AppendUint32(e.buf, v)
}

// writeUint64 writes a big-endian uint64
func (e *Encoder) writeUint64(v uint64) {
	e.grow(8)
	e.buf = binary.BigEndian.AppendUint64(e.buf, v)
}

// EncodeByte writes a TAG_Byte payload
func (e *Encoder) EncodeByte(v int8) {
	e.writeByte(byte(v))
}

// EncodeShort writes a TAG_Short payload
func (e *Encoder) EncodeShort(v int16) {
	e.writeUint16(uint16(v))
}

// EncodeInt writes a TAG_Int payload
func (e *Encoder) EncodeInt(v int32) {
	e.writeUint32(uint32(v))
}

// EncodeLong writes a TAG_Long payload
func (e *Encoder) EncodeLong(v int64) {
	e.writeUint64(uint64(v))
}

// EncodeFloat writes a TAG_Float payload
func (e *Encoder) EncodeFloat(v float32) {
	e.writeUint32(math.Float32bits(v))
}

// EncodeDouble writes a TAG_Double payload
func (e *Encoder) EncodeDouble(v float64) {
	e.writeUint64(math.Float64bits(v))
}

// EncodeByteArray writes a TAG_Byte_Array payload: int32 length + bytes
func (e *Encoder) EncodeByteArray(v []byte) {
	e.writeUint32(uint32(len(v)))
	e.writeBytes(v)
}

// EncodeString writes a TAG_String payload: uint16 length + UTF-8 bytes.
// Returns ErrStringTooLong if the string does not fit the length prefix.
func (e *Encoder) EncodeString(v string) error {
	if len(v) > math.MaxUint16 {
		return ErrStringTooLong
	}
	e.writeUint16(uint16(len(v)))
	e.writeBytes([]byte(v))
	return nil
}

// EncodeIntArray writes a TAG_Int_Array payload: int32 length + int32s
func (e *Encoder) EncodeIntArray(v []int32) {
	e.writeUint32(uint32(len(v)))
	for _, n := range v {
		e.writeUint32(uint32(n))
	}
}

// EncodeLongArray writes a TAG_Long_Array payload: int32 length + int64s
func (e *Encoder) EncodeLongArray(v []int64) {
	e.writeUint32(uint32(len(v)))
	for _, n := range v {
		e.writeUint64(uint64(n))
	}
}

// EncodeList writes a TAG_List payload: element tag, int32 count, payloads.
// An empty list is written with a TAG_End element tag.
func (e *Encoder) EncodeList(l *List) error {
	if l.len() == 0 {
		e.writeByte(byte(TagEnd))
		e.writeUint32(0)
		return nil
	}
	if l.Elem == TagEnd || !l.Elem.IsValid() {
		return ErrInvalidTag
	}
	e.writeByte(byte(l.Elem))
	e.writeUint32(uint32(len(l.Items)))
	for i := range l.Items {
		if l.Items[i].Type != l.Elem {
			return ErrTagMismatch
		}
		if err := e.EncodeValue(l.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCompound writes a TAG_Compound payload: named tags terminated by
// TAG_End. Entries are written in sorted key order so the encoding is
// canonical.
func (e *Encoder) EncodeCompound(m Compound) error {
	for _, k := range sortedKeys(m) {
		if err := e.EncodeNamed(k, m[k]); err != nil {
			return err
		}
	}
	e.writeByte(byte(TagEnd))
	return nil
}

// EncodeNamed writes a full named tag: tag ID, name, payload.
func (e *Encoder) EncodeNamed(name string, v Value) error {
	if v.Type == TagEnd || !v.Type.IsValid() {
		return ErrInvalidTag
	}
	e.writeByte(byte(v.Type))
	if err := e.EncodeString(name); err != nil {
		return err
	}
	return e.EncodeValue(v)
}

// EncodeValue writes the payload of v according to its tag type
func (e *Encoder) EncodeValue(v Value) error {
	switch v.Type {
	case TagByte:
		e.EncodeByte(v.Byte)
	case TagShort:
		e.EncodeShort(v.Short)
	case TagInt:
		e.EncodeInt(v.Int)
	case TagLong:
		e.EncodeLong(v.Long)
	case TagFloat:
		e.EncodeFloat(v.Float)
	case TagDouble:
		e.EncodeDouble(v.Double)
	case TagByteArray:
		e.EncodeByteArray(v.Bytes)
	case TagString:
		return e.EncodeString(v.Str)
	case TagList:
		return e.EncodeList(v.List)
	case TagCompound:
		return e.EncodeCompound(v.Compound)
	case TagIntArray:
		e.EncodeIntArray(v.Ints)
	case TagLongArray:
		e.EncodeLongArray(v.Longs)
	default:
		return ErrInvalidTag
	}
	return nil
}
