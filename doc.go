// Package wave decodes and encodes uncompressed WAV files held in memory.
//
// A file is decoded into a Wave value: the fmt chunk parameters plus the
// sample payload normalized to float32 amplitudes, interleaved across
// channels. Four sample layouts are supported: 8-bit unsigned, 16-bit and
// 24-bit signed PCM, and 32-bit IEEE float.
//
// Decoding is strict about layout: the fmt chunk must be the first chunk
// after the RIFF/WAVE header and the data chunk must immediately follow it.
// Encoding always writes that canonical layout and recomputes block align
// and average bytes per second from the channel count, bit depth and
// sample rate.
//
// Integer depths are quantized with clamp-then-round semantics
// (round half away from zero), so out of range samples saturate instead
// of wrapping.
package wave
