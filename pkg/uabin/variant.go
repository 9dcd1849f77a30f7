package uabin

import (
	"bytes"
	"fmt"
	"io"
)

// Variant holds one decoded value: nil, a Go scalar, string, []byte,
// time.Time, uuid.UUID, or a []Variant for one-dimensional arrays.
type Variant any

// TypeID identifies the built-in type carried by a Variant encoding byte.
type TypeID byte

// Built-in type identifiers, as assigned by the binary encoding.
const (
	TypeNull       TypeID = 0
	TypeBoolean    TypeID = 1
	TypeSByte      TypeID = 2
	TypeByte       TypeID = 3
	TypeInt16      TypeID = 4
	TypeUInt16     TypeID = 5
	TypeInt32      TypeID = 6
	TypeUInt32     TypeID = 7
	TypeInt64      TypeID = 8
	TypeUInt64     TypeID = 9
	TypeFloat      TypeID = 10
	TypeDouble     TypeID = 11
	TypeString     TypeID = 12
	TypeDateTime   TypeID = 13
	TypeGUID       TypeID = 14
	TypeByteString TypeID = 15
)

// Encoding byte flags.
const (
	typeIDMask     = 0x3F
	dimensionsFlag = 0x40
	arrayFlag      = 0x80
)

// Decode reads one Variant from r, honoring the limits in opts.
//
// Decode never panics: arbitrary, even adversarial, byte sequences
// terminate with either a decoded value or an error wrapping ErrDecoding,
// ErrLimitsExceeded or ErrUnsupportedType. Allocation is bounded by the
// limits in opts.
func Decode(r io.Reader, opts DecodingOptions) (Variant, error) {
	d := &decoder{r: r, opts: opts}
	return d.readVariant()
}

// DecodeBytes decodes one Variant from a byte slice. Trailing bytes after
// the value are ignored.
func DecodeBytes(data []byte, opts DecodingOptions) (Variant, error) {
	return Decode(bytes.NewReader(data), opts)
}

func (d *decoder) readVariant() (Variant, error) {
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}
	id := TypeID(b & typeIDMask)

	if b&arrayFlag == 0 {
		if b&dimensionsFlag != 0 {
			return nil, fmt.Errorf("%w: dimensions without array flag", ErrDecoding)
		}
		return d.readScalar(id)
	}

	value, err := d.readArray(id)
	if err != nil {
		return nil, err
	}

	// Multidimensional values carry a dimensions array after the
	// elements. The elements were already bounds-checked; the shape is
	// not reconstructed here, so the dimensions are read and dropped.
	if b&dimensionsFlag != 0 {
		if err := d.skipDimensions(); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func (d *decoder) readScalar(id TypeID) (Variant, error) {
	switch id {
	case TypeNull:
		return nil, nil
	case TypeBoolean:
		return d.readBoolean()
	case TypeSByte:
		b, err := d.readByte()
		return int8(b), err
	case TypeByte:
		return d.readByte()
	case TypeInt16:
		v, err := d.readUint16()
		return int16(v), err
	case TypeUInt16:
		return d.readUint16()
	case TypeInt32:
		return d.readInt32()
	case TypeUInt32:
		return d.readUint32()
	case TypeInt64:
		v, err := d.readUint64()
		return int64(v), err
	case TypeUInt64:
		return d.readUint64()
	case TypeFloat:
		return d.readFloat()
	case TypeDouble:
		return d.readDouble()
	case TypeString:
		return d.readString()
	case TypeDateTime:
		return d.readDateTime()
	case TypeGUID:
		return d.readGUID()
	case TypeByteString:
		return d.readByteString()
	}
	return nil, fmt.Errorf("%w: type id %d", ErrUnsupportedType, id)
}

// readArray reads an int32 element count followed by that many elements of
// one built-in type. A negative count encodes the null array.
func (d *decoder) readArray(id TypeID) (Variant, error) {
	if id == TypeNull {
		return nil, fmt.Errorf("%w: array of null", ErrUnsupportedType)
	}

	n, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return []Variant(nil), nil
	}
	if uint32(n) > d.opts.MaxArrayLength {
		return nil, fmt.Errorf("%w: array length %d exceeds %d", ErrLimitsExceeded, n, d.opts.MaxArrayLength)
	}

	values := make([]Variant, n)
	for i := range values {
		v, err := d.readScalar(id)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (d *decoder) skipDimensions() error {
	n, err := d.readInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return nil
	}
	if uint32(n) > d.opts.MaxArrayLength {
		return fmt.Errorf("%w: dimensions length %d exceeds %d", ErrLimitsExceeded, n, d.opts.MaxArrayLength)
	}
	for i := int32(0); i < n; i++ {
		if _, err := d.readInt32(); err != nil {
			return err
		}
	}
	return nil
}
