package wave

import (
	"encoding/binary"
	"testing"
)

func newTestChunk(id string, data []byte) Chunk {
	var c Chunk
	copy(c.ID[:], id)
	c.Data = data

	return c
}

// buildRIFF wraps chunks in a RIFF/WAVE header. Odd sized chunks get a
// pad byte unless they are the last one.
func buildRIFF(chunks ...Chunk) []byte {
	body := []byte("WAVE")

	for i, c := range chunks {
		body = append(body, c.ID[:]...)
		body = binary.LittleEndian.AppendUint32(body, uint32(len(c.Data)))
		body = append(body, c.Data...)

		if len(c.Data)%2 == 1 && i < len(chunks)-1 {
			body = append(body, 0)
		}
	}

	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func testFmtPayload(code FormatCode, channels uint16, sampleRate uint32, bits Bits) []byte {
	return newFmtChunk(Wave{FormatCode: code, SampleRate: sampleRate, Channels: channels, Bits: bits}).Bytes()
}

func float32ApproxEqual(value, expected, epsilon float32) bool {
	diff := value - expected
	if diff < 0 {
		diff = -diff
	}

	return diff <= epsilon
}

func assertFloat32SlicesClose(t *testing.T, got, expected []float32, epsilon float32) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("expected %d samples but got %d", len(expected), len(got))
	}

	for i := range got {
		if !float32ApproxEqual(got[i], expected[i], epsilon) {
			t.Fatalf("expected %.6f at position %d, but got %.6f", expected[i], i, got[i])
		}
	}
}
