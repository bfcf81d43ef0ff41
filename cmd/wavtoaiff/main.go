// This tool converts a wav file into an aiff file and stores it in the
// same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wave"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	outPath, err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func run(args []string) (string, error) {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return "", err
	}

	if *path == "" {
		return "", errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}

	w, err := wave.Decode(data)
	if err != nil {
		return "", fmt.Errorf("invalid WAV file: %w", err)
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	intBuf := waveToIntBuffer(w)
	encoder := aiff.NewEncoder(outFile, int(w.SampleRate), intBuf.SourceBitDepth, int(w.Channels))

	err = encoder.Write(intBuf)
	if err != nil {
		return "", fmt.Errorf("failed to write aiff data: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return "", fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	return outPath, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

// waveToIntBuffer converts samples to signed integers at the source bit
// depth. AIFF has no unsigned or float PCM, so 8-bit samples are
// re-centered on zero and float samples are stored as 32-bit integers.
func waveToIntBuffer(w wave.Wave) *audio.IntBuffer {
	intBuf := &audio.IntBuffer{
		Format:         w.Format(),
		SourceBitDepth: int(w.Bits),
		Data:           make([]int, len(w.Samples)),
	}

	for i, v := range w.Samples {
		intBuf.Data[i] = float32ToPCMInt(v, w.Bits)
	}

	return intBuf
}

func float32ToPCMInt(value float32, bits wave.Bits) int {
	switch bits {
	case wave.U8:
		return int(clampScaledPCM(value, 128.0, 127))
	case wave.I16:
		return int(clampScaledPCM(value, 32768.0, 32767))
	case wave.I24:
		return int(clampScaledPCM(value, 8388608.0, 8388607))
	case wave.F32:
		return int(clampScaledPCM(value, 2147483648.0, 2147483647))
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int32 {
	if math.IsNaN(float64(value)) {
		return 0
	}

	scaled := float64(value) * scale
	if scaled > float64(max) {
		scaled = float64(max)
	}

	if scaled < -scale {
		scaled = -scale
	}

	return int32(math.Round(scaled))
}
