package wave

import (
	"encoding/binary"
	"fmt"
)

// fmtChunkSize is the payload size of a plain (non extended) fmt chunk.
const fmtChunkSize = 16

// FmtChunk holds the six fields of a fmt chunk exactly as stored.
// AvgBytesPerSec and BlockAlign are kept for inspection only; they are
// not checked against the other fields.
type FmtChunk struct {
	FormatTag      FormatCode
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  Bits
}

// ParseFmtChunk reads the fmt fields from a chunk payload. Fields are read
// in storage order and the first one that does not fit in the payload
// aborts parsing with an error wrapping ErrFieldTruncated and the
// field-specific sentinel. Bytes past the first 16 are ignored.
func ParseFmtChunk(payload []byte) (*FmtChunk, error) {
	f := &FmtChunk{}

	b, err := fmtField(payload, 0, 2, ErrInvalidFormatCode)
	if err != nil {
		return nil, err
	}

	f.FormatTag = FormatCode(binary.LittleEndian.Uint16(b))
	if !f.FormatTag.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, f.FormatTag)
	}

	if b, err = fmtField(payload, 2, 2, ErrInvalidChannels); err != nil {
		return nil, err
	}

	f.NumChannels = binary.LittleEndian.Uint16(b)

	if b, err = fmtField(payload, 4, 4, ErrInvalidSampleRate); err != nil {
		return nil, err
	}

	f.SampleRate = binary.LittleEndian.Uint32(b)

	if b, err = fmtField(payload, 8, 4, ErrInvalidBytesPerSecond); err != nil {
		return nil, err
	}

	f.AvgBytesPerSec = binary.LittleEndian.Uint32(b)

	if b, err = fmtField(payload, 12, 2, ErrInvalidBlockAlign); err != nil {
		return nil, err
	}

	f.BlockAlign = binary.LittleEndian.Uint16(b)

	if b, err = fmtField(payload, 14, 2, ErrInvalidBits); err != nil {
		return nil, err
	}

	f.BitsPerSample = Bits(binary.LittleEndian.Uint16(b))
	if !f.BitsPerSample.Valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrNotSupported, ErrInvalidBits, uint16(f.BitsPerSample))
	}

	return f, nil
}

func fmtField(payload []byte, offset, size int, fieldErr error) ([]byte, error) {
	if len(payload) < offset+size {
		return nil, fmt.Errorf("%w: %w (need %d bytes at offset %d, have %d)",
			ErrFieldTruncated, fieldErr, size, offset, len(payload))
	}

	return payload[offset : offset+size], nil
}

// newFmtChunk derives the fmt fields for w. Block align and average bytes
// per second are always recomputed.
func newFmtChunk(w Wave) *FmtChunk {
	return &FmtChunk{
		FormatTag:      w.FormatCode,
		NumChannels:    w.Channels,
		SampleRate:     w.SampleRate,
		AvgBytesPerSec: w.BytesPerSecond(),
		BlockAlign:     w.BlockAlign(),
		BitsPerSample:  w.Bits,
	}
}

// Bytes returns the 16-byte little-endian payload of f.
func (f *FmtChunk) Bytes() []byte {
	out := make([]byte, 0, fmtChunkSize)
	out = binary.LittleEndian.AppendUint16(out, uint16(f.FormatTag))
	out = binary.LittleEndian.AppendUint16(out, f.NumChannels)
	out = binary.LittleEndian.AppendUint32(out, f.SampleRate)
	out = binary.LittleEndian.AppendUint32(out, f.AvgBytesPerSec)
	out = binary.LittleEndian.AppendUint16(out, f.BlockAlign)
	out = binary.LittleEndian.AppendUint16(out, uint16(f.BitsPerSample))

	return out
}
