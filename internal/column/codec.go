package column

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Raw wire layout for batches crossing worker or page boundaries:
// a u32 row count followed by fixed-width little-endian values. The type
// descriptor travels separately (it is part of the column metadata, not
// the payload), so DecodeDateTimes/DecodeDateTime64s take it from the
// caller.

var ErrShortBuffer = errors.New("column: buffer too short for declared row count")

var le = binary.LittleEndian

const headerSize = 4

func encodeHeader(buf []byte, rows int) {
	le.PutUint32(buf, uint32(rows))
}

func decodeHeader(buf []byte, width int) (rows int, err error) {
	if len(buf) < headerSize {
		return 0, fmt.Errorf("%w: missing header", ErrShortBuffer)
	}
	rows = int(le.Uint32(buf))
	if len(buf) < headerSize+rows*width {
		return 0, fmt.Errorf("%w: want %d rows of %d bytes, have %d payload bytes",
			ErrShortBuffer, rows, width, len(buf)-headerSize)
	}
	return rows, nil
}

func EncodeDates(d *Dates) []byte {
	buf := make([]byte, headerSize+2*len(d.Days))
	encodeHeader(buf, len(d.Days))
	for i, v := range d.Days {
		le.PutUint16(buf[headerSize+2*i:], v)
	}
	return buf
}

func DecodeDates(buf []byte) (*Dates, error) {
	rows, err := decodeHeader(buf, 2)
	if err != nil {
		return nil, err
	}
	days := make([]uint16, rows)
	for i := range days {
		days[i] = le.Uint16(buf[headerSize+2*i:])
	}
	return NewDates(days), nil
}

func EncodeDateTimes(d *DateTimes) []byte {
	buf := make([]byte, headerSize+4*len(d.Seconds))
	encodeHeader(buf, len(d.Seconds))
	for i, v := range d.Seconds {
		le.PutUint32(buf[headerSize+4*i:], v)
	}
	return buf
}

func DecodeDateTimes(buf []byte, zone string) (*DateTimes, error) {
	rows, err := decodeHeader(buf, 4)
	if err != nil {
		return nil, err
	}
	seconds := make([]uint32, rows)
	for i := range seconds {
		seconds[i] = le.Uint32(buf[headerSize+4*i:])
	}
	return NewDateTimes(seconds, zone), nil
}

func EncodeDateTime64s(d *DateTime64s) []byte {
	buf := make([]byte, headerSize+8*len(d.Raw))
	encodeHeader(buf, len(d.Raw))
	for i, v := range d.Raw {
		le.PutUint64(buf[headerSize+8*i:], uint64(v))
	}
	return buf
}

func DecodeDateTime64s(buf []byte, scale uint8, zone string) (*DateTime64s, error) {
	rows, err := decodeHeader(buf, 8)
	if err != nil {
		return nil, err
	}
	raw := make([]int64, rows)
	for i := range raw {
		raw[i] = int64(le.Uint64(buf[headerSize+8*i:]))
	}
	return NewDateTime64s(raw, scale, zone)
}
