package wave

import "errors"

var (
	// ErrContainer is returned when the RIFF/WAVE wrapper itself is malformed.
	ErrContainer = errors.New("malformed RIFF container")
	// ErrNotSupported is returned for format codes other than PCM on decode,
	// unknown format codes and unknown bit depths.
	ErrNotSupported = errors.New("format not supported")
	// ErrInvalidFormat is returned when the first two chunks are not fmt
	// followed by data.
	ErrInvalidFormat = errors.New("fmt and data chunks are not the leading chunks")
	// ErrFieldTruncated is wrapped by every error reporting a fmt field
	// whose byte range runs past the end of the chunk payload.
	ErrFieldTruncated = errors.New("fmt field truncated")

	// ErrInvalidFormatCode reports a missing format code field (offset 0).
	ErrInvalidFormatCode = errors.New("invalid format code")
	// ErrInvalidChannels reports a missing channel count field (offset 2).
	ErrInvalidChannels = errors.New("invalid channel count")
	// ErrInvalidSampleRate reports a missing sample rate field (offset 4).
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrInvalidBytesPerSecond reports a missing bytes per second field (offset 8).
	ErrInvalidBytesPerSecond = errors.New("invalid bytes per second")
	// ErrInvalidBlockAlign reports a missing block align field (offset 12).
	ErrInvalidBlockAlign = errors.New("invalid block align")
	// ErrInvalidBits reports a missing bits per sample field (offset 14) or
	// a bit depth other than 8, 16, 24 or 32.
	ErrInvalidBits = errors.New("invalid bits per sample")
)
