package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wave"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errInvalidChannels = errors.New("channel count must be at least 1")

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Uint("rate", 48000, "sample rate in hertz")
	bitDepth := flagSet.Uint("bits", 16, "bits per sample: 8, 16, 24 or 32 (float)")
	numChans := flagSet.Uint("channels", 1, "number of channels, each carrying the same tone")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	bits := wave.Bits(*bitDepth)
	if !bits.Valid() {
		return fmt.Errorf("%w: %d", wave.ErrInvalidBits, *bitDepth)
	}

	if *numChans < 1 {
		return errInvalidChannels
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	rate := float64(*sampleRate)
	numFrames := int(rate * *length)
	samples := make([]float32, 0, numFrames*int(*numChans))

	for i := 0; i < numFrames; i++ {
		v := float32(math.Sin(float64(i) / rate * *frequency * 2 * math.Pi))
		for c := uint(0); c < *numChans; c++ {
			samples = append(samples, v)
		}
	}

	w := wave.Wave{
		FormatCode: wave.PCM,
		SampleRate: uint32(*sampleRate),
		Channels:   uint16(*numChans),
		Bits:       bits,
		Samples:    samples,
	}

	data, err := wave.Encode(w)
	if err != nil {
		return err
	}

	err = os.WriteFile(*output, data, 0o644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	return nil
}
