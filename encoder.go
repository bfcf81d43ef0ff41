package wave

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	// "RIFF" and the size field, which the RIFF size does not count.
	riffHeaderSize  = 8
	chunkHeaderSize = 8
)

// Encode serializes w as a canonical WAV file: the RIFF/WAVE header, a
// 16-byte fmt chunk and the data chunk, in that order.
//
// Block align and average bytes per second are recomputed from
// w.Channels, w.Bits and w.SampleRate. Integer layouts clamp and round
// samples; F32 stores them unchanged. An odd sized data payload is not
// padded.
func Encode(w Wave) ([]byte, error) {
	if !w.FormatCode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, w.FormatCode)
	}

	if !w.Bits.Valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrNotSupported, ErrInvalidBits, uint16(w.Bits))
	}

	payload := encodeSamples(w.Samples, w.Bits)
	fmtPayload := newFmtChunk(w).Bytes()

	e := &chunkWriter{buf: bytes.NewBuffer(make([]byte, 0, riffHeaderSize+4+2*chunkHeaderSize+len(fmtPayload)+len(payload)))}

	e.AddBE(riff.RiffID)
	// "WAVE" plus both chunks with their headers
	e.AddLE(uint32(4 + chunkHeaderSize + len(fmtPayload) + chunkHeaderSize + len(payload)))
	e.AddBE(riff.WavFormatID)
	e.writeChunk(CIDFmt, fmtPayload)
	e.writeChunk(CIDData, payload)

	return e.buf.Bytes(), nil
}

// WriteTo writes the encoded file to dst. It implements io.WriterTo.
func (w Wave) WriteTo(dst io.Writer) (int64, error) {
	data, err := Encode(w)
	if err != nil {
		return 0, err
	}

	n, err := dst.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write wav data: %w", err)
	}

	return int64(n), nil
}

// chunkWriter appends to an in-memory buffer. Writes to a bytes.Buffer
// cannot fail, so the Add methods have no error result.
type chunkWriter struct {
	buf *bytes.Buffer
}

// AddLE serializes and adds the passed value using little endian.
func (e *chunkWriter) AddLE(src any) {
	_ = binary.Write(e.buf, binary.LittleEndian, src)
}

// AddBE serializes and adds the passed value using big endian.
func (e *chunkWriter) AddBE(src any) {
	_ = binary.Write(e.buf, binary.BigEndian, src)
}

func (e *chunkWriter) writeChunk(id [4]byte, payload []byte) {
	e.AddBE(id)
	e.AddLE(uint32(len(payload)))
	e.buf.Write(payload)
}
