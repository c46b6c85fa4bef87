package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/JackT-C/qrgen"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	stage    = color.New(color.FgYellow)
)

// printTrace dumps the intermediate artifacts of symbol construction.
func printTrace(w io.Writer, trace *qrgen.Trace) {
	stage.Fprintln(w, "== payload ==")
	fmt.Fprintf(w, "%d bytes: % x\n", len(trace.Payload), trace.Payload)

	stage.Fprintln(w, "== bitstream ==")
	fmt.Fprintf(w, "%d bits\n%s\n", trace.Bitstream.Size(), trace.Bitstream)

	stage.Fprintln(w, "== data codewords ==")
	for i, cw := range trace.DataCodewords {
		if i > 0 && i%8 == 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%02x ", cw)
	}
	fmt.Fprintln(w)

	stage.Fprintln(w, "== error correction codewords ==")
	for _, cw := range trace.ECCodewords {
		fmt.Fprintf(w, "%02x ", cw)
	}
	fmt.Fprintln(w)

	if len(trace.Scores) > 0 {
		stage.Fprintln(w, "== mask penalty scores ==")
		for mask, score := range trace.Scores {
			marker := "  "
			if mask == trace.Symbol.Mask {
				marker = "->"
			}
			fmt.Fprintf(w, "%s mask %d: %d\n", marker, mask, score)
		}
	}

	stage.Fprintln(w, "== masked matrix ==")
	fmt.Fprint(w, trace.Symbol.Grid)
}
