package wave

import (
	"encoding/binary"
	"math"

	"github.com/go-audio/audio"
)

const (
	pcm8Center    = 128.0
	scalePCMInt8  = 128.0
	scalePCMInt16 = 32768.0
	scalePCMInt24 = 8388608.0
	maxPCMUint8   = 255
	maxPCMInt16   = 32767
	maxPCMInt24   = 8388607
)

// decodeSamples converts a data payload to normalized samples. Trailing
// bytes that do not make up a whole sample are dropped.
func decodeSamples(payload []byte, bits Bits) []float32 {
	size := bits.Size()
	if size == 0 {
		return nil
	}

	out := make([]float32, len(payload)/size)
	for i := range out {
		out[i] = decodeSample(payload[i*size:(i+1)*size], bits)
	}

	return out
}

func decodeSample(b []byte, bits Bits) float32 {
	switch bits {
	case U8:
		return float32((float64(b[0]) - pcm8Center) / scalePCMInt8)
	case I16:
		return float32(float64(int16(binary.LittleEndian.Uint16(b))) / scalePCMInt16)
	case I24:
		return float32(float64(audio.Int24LETo32(b)) / scalePCMInt24)
	case F32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	default:
		return 0
	}
}

// encodeSamples quantizes samples to the given layout. bits must be valid.
func encodeSamples(samples []float32, bits Bits) []byte {
	out := make([]byte, 0, len(samples)*bits.Size())

	for _, v := range samples {
		switch bits {
		case U8:
			out = append(out, float32ToPCMUint8(v))
		case I16:
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(float32ToPCMInt32(v, I16))))
		case I24:
			out = append(out, audio.Int32toInt24LEBytes(float32ToPCMInt32(v, I24))...)
		case F32:
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	}

	return out
}

// quantize scales value, clamps it to [min, max] and rounds half away
// from zero. NaN maps to 0.
func quantize(value float32, scale, offset, min, max float64) int64 {
	scaled := float64(value)*scale + offset
	if math.IsNaN(scaled) {
		return int64(offset)
	}

	if scaled < min {
		scaled = min
	}

	if scaled > max {
		scaled = max
	}

	return int64(math.Round(scaled))
}

func float32ToPCMUint8(value float32) uint8 {
	return uint8(quantize(value, scalePCMInt8, pcm8Center, 0, maxPCMUint8))
}

func float32ToPCMInt32(value float32, bits Bits) int32 {
	switch bits {
	case I16:
		return int32(quantize(value, scalePCMInt16, 0, -scalePCMInt16, maxPCMInt16))
	case I24:
		return int32(quantize(value, scalePCMInt24, 0, -scalePCMInt24, maxPCMInt24))
	default:
		return 0
	}
}
