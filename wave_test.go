package wave

import (
	"errors"
	"testing"
	"time"

	"github.com/go-audio/audio"
)

func TestBitsSize(t *testing.T) {
	tests := []struct {
		bits Bits
		want int
	}{
		{U8, 1},
		{I16, 2},
		{I24, 3},
		{F32, 4},
		{Bits(12), 0},
		{Bits(64), 0},
	}

	for _, tt := range tests {
		if got := tt.bits.Size(); got != tt.want {
			t.Fatalf("%s.Size()=%d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestFormatCodeValid(t *testing.T) {
	for _, code := range []FormatCode{PCM, IEEEFloat, ALaw, MuLaw, Extensible} {
		if !code.Valid() {
			t.Fatalf("%s should be valid", code)
		}
	}

	for _, code := range []FormatCode{0, 2, 0x55, 0xFFFF} {
		if code.Valid() {
			t.Fatalf("%s should not be valid", code)
		}
	}

	if got := FormatCode(2).String(); got != "format code 2" {
		t.Fatalf("String()=%q", got)
	}
}

func TestWaveDerivedFields(t *testing.T) {
	tests := []struct {
		name           string
		w              Wave
		blockAlign     uint16
		bytesPerSecond uint32
	}{
		{"mono 16bit", Wave{SampleRate: 44100, Channels: 1, Bits: I16}, 2, 88200},
		{"stereo 24bit", Wave{SampleRate: 48000, Channels: 2, Bits: I24}, 6, 288000},
		{"stereo 8bit", Wave{SampleRate: 22050, Channels: 2, Bits: U8}, 2, 44100},
		{"quad float", Wave{SampleRate: 96000, Channels: 4, Bits: F32}, 16, 1536000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.BlockAlign(); got != tt.blockAlign {
				t.Fatalf("BlockAlign()=%d, want %d", got, tt.blockAlign)
			}

			if got := tt.w.BytesPerSecond(); got != tt.bytesPerSecond {
				t.Fatalf("BytesPerSecond()=%d, want %d", got, tt.bytesPerSecond)
			}
		})
	}
}

func TestWaveDuration(t *testing.T) {
	w := Wave{SampleRate: 1000, Channels: 2, Bits: I16, Samples: make([]float32, 1001)}

	if got := w.NumFrames(); got != 500 {
		t.Fatalf("NumFrames()=%d, want 500", got)
	}

	if got := w.Duration(); got != 500*time.Millisecond {
		t.Fatalf("Duration()=%s, want 500ms", got)
	}

	if got := (Wave{Samples: make([]float32, 4)}).Duration(); got != 0 {
		t.Fatalf("Duration() without sample rate=%s, want 0", got)
	}
}

func TestWaveFloat32Buffer(t *testing.T) {
	w := Wave{FormatCode: PCM, SampleRate: 8000, Channels: 2, Bits: I24, Samples: []float32{0.5, -0.5}}

	buf := w.Float32Buffer()
	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 8000 || buf.SourceBitDepth != 24 {
		t.Fatalf("unexpected buffer format %+v depth %d", *buf.Format, buf.SourceBitDepth)
	}

	buf.Data[0] = 1
	if w.Samples[0] != 0.5 {
		t.Fatal("buffer should not share samples with the wave")
	}

	back, err := FromFloat32Buffer(buf, I16)
	if err != nil {
		t.Fatalf("FromFloat32Buffer failed: %v", err)
	}

	if back.FormatCode != PCM || back.Bits != I16 || back.Channels != 2 || back.SampleRate != 8000 {
		t.Fatalf("unexpected wave %s", back)
	}

	assertFloat32SlicesClose(t, back.Samples, []float32{1, -0.5}, 0)
}

func TestFromFloat32BufferErrors(t *testing.T) {
	format := &audio.Format{NumChannels: 1, SampleRate: 8000}

	tests := []struct {
		name string
		buf  *audio.Float32Buffer
		bits Bits
		want error
	}{
		{"nil buffer", nil, I16, errNilBuffer},
		{"nil format", &audio.Float32Buffer{}, I16, errNilFormat},
		{"bad bits", &audio.Float32Buffer{Format: format}, Bits(20), ErrInvalidBits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFloat32Buffer(tt.buf, tt.bits)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}
