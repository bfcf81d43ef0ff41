// This tool prints the format of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wave"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	chunks, err := wave.ReadChunks(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Chunks:")

	for i, c := range chunks {
		fmt.Fprintf(out, "\tchunk [%d]:\t%q %d bytes\n", i, c.ID, len(c.Data))

		if c.ID != wave.CIDFmt {
			continue
		}

		header, err := wave.ParseFmtChunk(c.Data)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\t\tdeclared block align: %d\n", header.BlockAlign)
		fmt.Fprintf(out, "\t\tdeclared avg bytes/sec: %d\n", header.AvgBytesPerSec)
	}

	w, err := wave.DecodeChunks(chunks)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Format: %s\n", w.FormatCode)
	fmt.Fprintf(out, "Channels: %d\n", w.Channels)
	fmt.Fprintf(out, "SampleRate: %d\n", w.SampleRate)
	fmt.Fprintf(out, "Bits: %s\n", w.Bits)
	fmt.Fprintf(out, "BlockAlign: %d\n", w.BlockAlign())
	fmt.Fprintf(out, "BytesPerSecond: %d\n", w.BytesPerSecond())
	fmt.Fprintf(out, "Samples: %d\n", len(w.Samples))
	fmt.Fprintf(out, "Frames: %d\n", w.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", w.Duration())

	return nil
}
