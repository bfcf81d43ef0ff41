package wave

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// FormatCode is the WAVE format category stored in the first fmt field.
type FormatCode uint16

const (
	// PCM is linear integer quantization, the only code accepted by Decode.
	PCM FormatCode = 1
	// IEEEFloat is WAVE_FORMAT_IEEE_FLOAT.
	IEEEFloat FormatCode = 3
	// ALaw is ITU G.711 A-law.
	ALaw FormatCode = 6
	// MuLaw is ITU G.711 mu-law.
	MuLaw FormatCode = 7
	// Extensible is WAVE_FORMAT_EXTENSIBLE.
	Extensible FormatCode = 0xFFFE
)

// Valid reports whether c is one of the known format codes.
func (c FormatCode) Valid() bool {
	switch c {
	case PCM, IEEEFloat, ALaw, MuLaw, Extensible:
		return true
	default:
		return false
	}
}

func (c FormatCode) String() string {
	switch c {
	case PCM:
		return "PCM"
	case IEEEFloat:
		return "IEEE float"
	case ALaw:
		return "A-law"
	case MuLaw:
		return "mu-law"
	case Extensible:
		return "extensible"
	default:
		return fmt.Sprintf("format code %d", uint16(c))
	}
}

// Bits is the sample layout, named after its bits per sample.
type Bits uint16

const (
	// U8 samples are unsigned bytes centered on 128.
	U8 Bits = 8
	// I16 samples are signed little-endian 16-bit integers.
	I16 Bits = 16
	// I24 samples are signed little-endian 24-bit integers.
	I24 Bits = 24
	// F32 samples are little-endian IEEE-754 floats, stored unscaled.
	F32 Bits = 32
)

// Valid reports whether b is one of the supported sample layouts.
func (b Bits) Valid() bool {
	switch b {
	case U8, I16, I24, F32:
		return true
	default:
		return false
	}
}

// Size returns the number of bytes used by one sample, or 0 if b is not valid.
func (b Bits) Size() int {
	if !b.Valid() {
		return 0
	}

	return int(b) / 8
}

func (b Bits) String() string {
	switch b {
	case U8:
		return "8-bit unsigned integer"
	case I16:
		return "16-bit signed integer"
	case I24:
		return "24-bit signed integer"
	case F32:
		return "32-bit float"
	default:
		return fmt.Sprintf("%d-bit", uint16(b))
	}
}

// Wave is a decoded WAV file.
//
// Samples holds the interleaved, normalized amplitudes in playback order.
// Its length does not have to be a multiple of Channels.
type Wave struct {
	FormatCode FormatCode
	SampleRate uint32
	Channels   uint16
	Bits       Bits
	Samples    []float32
}

// BlockAlign returns the byte size of one frame.
func (w Wave) BlockAlign() uint16 {
	return w.Channels * uint16(w.Bits.Size())
}

// BytesPerSecond returns the average data rate of the encoded samples.
func (w Wave) BytesPerSecond() uint32 {
	return w.SampleRate * uint32(w.BlockAlign())
}

// NumFrames returns the number of complete frames in Samples.
func (w Wave) NumFrames() int {
	if w.Channels == 0 {
		return 0
	}

	return len(w.Samples) / int(w.Channels)
}

// Duration returns the playback time of the complete frames.
func (w Wave) Duration() time.Duration {
	if w.SampleRate == 0 {
		return 0
	}

	return time.Duration(float64(w.NumFrames()) / float64(w.SampleRate) * float64(time.Second))
}

func (w Wave) String() string {
	return fmt.Sprintf("%s, %d Hz @ %s, %d channel(s), %d avg bytes/sec, duration: %s",
		w.FormatCode, w.SampleRate, w.Bits, w.Channels, w.BytesPerSecond(), w.Duration())
}

// Format returns the go-audio format matching w.
func (w Wave) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(w.Channels),
		SampleRate:  int(w.SampleRate),
	}
}

// Float32Buffer returns a copy of the samples as a go-audio buffer.
func (w Wave) Float32Buffer() *audio.Float32Buffer {
	return &audio.Float32Buffer{
		Format:         w.Format(),
		Data:           append([]float32(nil), w.Samples...),
		SourceBitDepth: int(w.Bits),
	}
}

var (
	errNilBuffer = errors.New("can't convert a nil buffer")
	errNilFormat = errors.New("buffer has no format")
)

// FromFloat32Buffer builds a PCM Wave holding a copy of buf's samples,
// to be encoded with the given sample layout.
func FromFloat32Buffer(buf *audio.Float32Buffer, bits Bits) (Wave, error) {
	if buf == nil {
		return Wave{}, errNilBuffer
	}

	if buf.Format == nil {
		return Wave{}, errNilFormat
	}

	if !bits.Valid() {
		return Wave{}, fmt.Errorf("%w: %d", ErrInvalidBits, uint16(bits))
	}

	return Wave{
		FormatCode: PCM,
		SampleRate: uint32(buf.Format.SampleRate),
		Channels:   uint16(buf.Format.NumChannels),
		Bits:       bits,
		Samples:    append([]float32(nil), buf.Data...),
	}, nil
}
