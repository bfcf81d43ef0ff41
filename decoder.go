package wave

import "fmt"

// Decode parses a complete RIFF/WAVE file.
//
// The file must start with a fmt chunk immediately followed by a data
// chunk; any other arrangement fails with ErrInvalidFormat, even when
// both chunks are present further down. Only the PCM format code is
// accepted. A 32-bit PCM payload is read as IEEE floats.
func Decode(data []byte) (Wave, error) {
	chunks, err := ReadChunks(data)
	if err != nil {
		return Wave{}, err
	}

	return DecodeChunks(chunks)
}

// DecodeChunks builds a Wave from an already split chunk sequence.
// Every fmt chunk in the sequence must parse; chunks with other tags are
// classified and ignored.
func DecodeChunks(chunks []Chunk) (Wave, error) {
	classified := make([]classifiedChunk, len(chunks))

	for i, c := range chunks {
		cc, err := classifyChunk(c)
		if err != nil {
			return Wave{}, err
		}

		classified[i] = cc
	}

	if len(classified) < 2 || classified[0].role != roleFmt || classified[1].role != roleData {
		return Wave{}, fmt.Errorf("%w: found %s", ErrInvalidFormat, leadingIDs(chunks))
	}

	header, payload := classified[0].fmt, classified[1].data

	if header.FormatTag != PCM {
		return Wave{}, fmt.Errorf("%w: %s", ErrNotSupported, header.FormatTag)
	}

	return Wave{
		FormatCode: header.FormatTag,
		SampleRate: header.SampleRate,
		Channels:   header.NumChannels,
		Bits:       header.BitsPerSample,
		Samples:    decodeSamples(payload, header.BitsPerSample),
	}, nil
}

func leadingIDs(chunks []Chunk) string {
	switch len(chunks) {
	case 0:
		return "no chunks"
	case 1:
		return fmt.Sprintf("[%q]", chunks[0].ID)
	default:
		return fmt.Sprintf("[%q %q]", chunks[0].ID, chunks[1].ID)
	}
}
