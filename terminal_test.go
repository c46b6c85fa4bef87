package qrgen

import (
	"strings"
	"testing"
)

func TestWriteTerminalPlain(t *testing.T) {
	symbol, err := Encode("terminal")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	opts := &TerminalOptions{DarkChar: "#", LightChar: "."}
	if err := WriteTerminal(&sb, symbol, opts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	size := symbol.Grid.Size()
	if len(lines) != size {
		t.Fatalf("%d lines, want %d", len(lines), size)
	}
	for r, line := range lines {
		if len(line) != size {
			t.Fatalf("line %d is %d characters, want %d", r, len(line), size)
		}
		for c := 0; c < size; c++ {
			want := byte('.')
			if symbol.Grid.Dark(r, c) {
				want = '#'
			}
			if line[c] != want {
				t.Fatalf("cell (%d,%d) rendered %q, want %q", r, c, line[c], want)
			}
		}
	}
}

func TestWriteTerminalScale(t *testing.T) {
	symbol, err := Encode("scaled")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	opts := &TerminalOptions{Scale: 2, DarkChar: "#", LightChar: "."}
	if err := WriteTerminal(&sb, symbol, opts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	size := symbol.Grid.Size()
	if len(lines) != 2*size {
		t.Fatalf("%d lines, want %d", len(lines), 2*size)
	}
	if lines[0] != lines[1] {
		t.Error("scaled rows are not repeated")
	}
	if len(lines[0]) != 2*size {
		t.Errorf("line width = %d, want %d", len(lines[0]), 2*size)
	}
}

func TestWriteTerminalScaleOutOfRange(t *testing.T) {
	symbol, err := Encode("x")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := WriteTerminal(&sb, symbol, &TerminalOptions{Scale: 4}); err == nil {
		t.Error("scale 4 accepted, want error")
	}
}

func TestWriteTerminalFrame(t *testing.T) {
	symbol, err := Encode("framed")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	opts := &TerminalOptions{Frame: true, DarkChar: "#", LightChar: "."}
	if err := WriteTerminal(&sb, symbol, opts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if want := symbol.Grid.Size() + 2; len(lines) != want {
		t.Errorf("%d lines with frame, want %d", len(lines), want)
	}
}
