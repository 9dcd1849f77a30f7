package uabin

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

// decoder reads primitive OPC UA binary values from a stream. All values
// are little-endian; strings and byte strings carry an int32 length prefix
// where a negative length encodes null.
type decoder struct {
	r    io.Reader
	opts DecodingOptions
	bs   [8]byte
}

func (d *decoder) readByte() (byte, error) {
	if _, err := io.ReadFull(d.r, d.bs[:1]); err != nil {
		return 0, ErrDecoding
	}
	return d.bs[0], nil
}

func (d *decoder) readBoolean() (bool, error) {
	b, err := d.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (d *decoder) readUint16() (uint16, error) {
	if _, err := io.ReadFull(d.r, d.bs[:2]); err != nil {
		return 0, ErrDecoding
	}
	return binary.LittleEndian.Uint16(d.bs[:2]), nil
}

func (d *decoder) readUint32() (uint32, error) {
	if _, err := io.ReadFull(d.r, d.bs[:4]); err != nil {
		return 0, ErrDecoding
	}
	return binary.LittleEndian.Uint32(d.bs[:4]), nil
}

func (d *decoder) readUint64() (uint64, error) {
	if _, err := io.ReadFull(d.r, d.bs[:8]); err != nil {
		return 0, ErrDecoding
	}
	return binary.LittleEndian.Uint64(d.bs[:8]), nil
}

func (d *decoder) readInt32() (int32, error) {
	v, err := d.readUint32()
	return int32(v), err
}

func (d *decoder) readFloat() (float32, error) {
	v, err := d.readUint32()
	return math.Float32frombits(v), err
}

func (d *decoder) readDouble() (float64, error) {
	v, err := d.readUint64()
	return math.Float64frombits(v), err
}

// readString reads an int32 length-prefixed UTF-8 string. A negative
// length encodes the null string, returned as "".
func (d *decoder) readString() (string, error) {
	bs, err := d.readLengthPrefixed(d.opts.MaxStringLength, "string")
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// readByteString reads an int32 length-prefixed byte string. A negative or
// zero length is returned as nil.
func (d *decoder) readByteString() ([]byte, error) {
	bs, err := d.readLengthPrefixed(d.opts.MaxByteStringLength, "byte string")
	if err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, nil
	}
	return bs, nil
}

func (d *decoder) readLengthPrefixed(limit uint32, kind string) ([]byte, error) {
	n, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	if uint32(n) > limit {
		return nil, fmt.Errorf("%w: %s length %d exceeds %d", ErrLimitsExceeded, kind, n, limit)
	}
	bs := make([]byte, n)
	if _, err := io.ReadFull(d.r, bs); err != nil {
		return nil, ErrDecoding
	}
	return bs, nil
}

// readDateTime reads a time.Time from 100 ns ticks since January 1, 1601.
func (d *decoder) readDateTime() (time.Time, error) {
	v, err := d.readUint64()
	if err != nil {
		return time.Time{}, err
	}
	ticks := int64(v)
	if ticks < 0 {
		ticks = 0
	}
	if ticks == math.MaxInt64 {
		ticks = 2650467743990000000
	}
	return time.Unix(ticks/10000000-11644473600, (ticks%10000000)*100).UTC(), nil
}

// readGUID reads a uuid.UUID. The first three GUID fields are
// little-endian on the wire.
func (d *decoder) readGUID() (uuid.UUID, error) {
	if _, err := io.ReadFull(d.r, d.bs[:8]); err != nil {
		return uuid.UUID{}, ErrDecoding
	}
	var v uuid.UUID
	v[0] = d.bs[3]
	v[1] = d.bs[2]
	v[2] = d.bs[1]
	v[3] = d.bs[0]
	v[4] = d.bs[5]
	v[5] = d.bs[4]
	v[6] = d.bs[7]
	v[7] = d.bs[6]
	if _, err := io.ReadFull(d.r, v[8:]); err != nil {
		return uuid.UUID{}, ErrDecoding
	}
	return v, nil
}
