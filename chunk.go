package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	// CIDFmt is the chunk ID of the format chunk.
	CIDFmt = riff.FmtID
	// CIDData is the chunk ID of the sample data chunk.
	CIDData = riff.DataFormatID
)

// Chunk is one tagged RIFF record with its header stripped.
type Chunk struct {
	ID   [4]byte
	Data []byte
}

// ReadChunks splits a RIFF/WAVE file into its chunks, in file order.
// A pad byte following an odd-sized chunk is skipped and never ends up in
// a payload. The size in the RIFF header is not checked; chunks are read
// until the buffer is exhausted.
func ReadChunks(data []byte) ([]Chunk, error) {
	r := bytes.NewReader(data)
	parser := riff.New(r)

	if r.Len() < chunkHeaderSize {
		return nil, fmt.Errorf("%w: %d byte RIFF header: %w", ErrContainer, r.Len(), io.ErrUnexpectedEOF)
	}

	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read chunk ID and size: %w", ErrContainer, err)
	}

	if id != riff.RiffID {
		return nil, fmt.Errorf("%w: %s - %w", ErrContainer, id, riff.ErrFmtNotSupported)
	}

	parser.ID = id
	parser.Size = size

	err = binary.Read(r, binary.BigEndian, &parser.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read format: %w", ErrContainer, err)
	}

	if parser.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: %s - %w", ErrContainer, parser.Format, riff.ErrFmtNotSupported)
	}

	var chunks []Chunk

	for {
		chunk, err := nextChunk(parser, r)
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}

		if err != nil {
			return nil, err
		}

		chunks = append(chunks, chunk)
	}
}

// nextChunk returns io.EOF only when r is exhausted on a chunk boundary.
func nextChunk(parser *riff.Parser, r *bytes.Reader) (Chunk, error) {
	if r.Len() == 0 {
		return Chunk{}, io.EOF
	}

	// IDnSize does not report a short size field.
	if r.Len() < chunkHeaderSize {
		return Chunk{}, fmt.Errorf("%w: %d byte chunk header: %w", ErrContainer, r.Len(), io.ErrUnexpectedEOF)
	}

	id, size, err := parser.IDnSize()
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: error reading chunk header - %w", ErrContainer, err)
	}

	chnk := &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(r, int64(size)),
	}

	payload, err := io.ReadAll(chnk)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: failed to read chunk %s: %w", ErrContainer, id, err)
	}

	if int64(len(payload)) < int64(size) {
		return Chunk{}, fmt.Errorf("%w: chunk %s declares %d bytes, %d available: %w",
			ErrContainer, id, size, len(payload), io.ErrUnexpectedEOF)
	}

	// all RIFF chunks must be word aligned, the pad byte is not part of
	// the declared size.
	if size%2 == 1 && r.Len() > 0 {
		_, _ = r.ReadByte()
	}

	return Chunk{ID: id, Data: payload}, nil
}

type chunkRole int

const (
	roleUnrecognized chunkRole = iota
	roleFmt
	roleData
)

// classifiedChunk is a chunk interpreted by its tag. Only the field
// matching role is set.
type classifiedChunk struct {
	role chunkRole
	fmt  *FmtChunk
	data []byte
}

func classifyChunk(c Chunk) (classifiedChunk, error) {
	switch c.ID {
	case CIDFmt:
		f, err := ParseFmtChunk(c.Data)
		if err != nil {
			return classifiedChunk{}, fmt.Errorf("failed to decode fmt chunk: %w", err)
		}

		return classifiedChunk{role: roleFmt, fmt: f}, nil
	case CIDData:
		return classifiedChunk{role: roleData, data: c.Data}, nil
	default:
		return classifiedChunk{role: roleUnrecognized}, nil
	}
}
