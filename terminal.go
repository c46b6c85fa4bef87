package qrgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default module characters: a full block pair and two spaces, so one module
// is roughly square in a terminal cell grid.
const (
	defaultDarkChar  = "██"
	defaultLightChar = "  "
)

// TerminalOptions configures WriteTerminal. The zero value renders with the
// default block characters at scale 1, no frame and the terminal's colours.
type TerminalOptions struct {
	Scale     int    // module repetition factor, 1-3 (0 means 1)
	Frame     bool   // draw a border around the symbol
	DarkChar  string // characters for a dark module (default "██")
	LightChar string // characters for a light module (default "  ")
	Dark      string // lipgloss colour for dark modules ("" = default)
	Light     string // lipgloss colour for light modules ("" = default)
}

const maxTerminalScale = 3

// WriteTerminal renders the symbol to w as text.
func WriteTerminal(w io.Writer, symbol *Symbol, opts *TerminalOptions) error {
	if opts == nil {
		opts = &TerminalOptions{}
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 1 || scale > maxTerminalScale {
		return fmt.Errorf("qrgen: terminal scale %d out of range 1-%d", opts.Scale, maxTerminalScale)
	}

	darkChar := opts.DarkChar
	if darkChar == "" {
		darkChar = defaultDarkChar
	}
	lightChar := opts.LightChar
	if lightChar == "" {
		lightChar = defaultLightChar
	}

	dark := strings.Repeat(darkChar, scale)
	light := strings.Repeat(lightChar, scale)
	if opts.Dark != "" {
		dark = lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Dark)).Render(dark)
	}
	if opts.Light != "" {
		light = lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Light)).Render(light)
	}

	grid := symbol.Grid
	var lines []string
	for r := 0; r < grid.Size(); r++ {
		var sb strings.Builder
		for c := 0; c < grid.Size(); c++ {
			if grid.Dark(r, c) {
				sb.WriteString(dark)
			} else {
				sb.WriteString(light)
			}
		}
		line := sb.String()
		for i := 0; i < scale; i++ {
			lines = append(lines, line)
		}
	}

	out := strings.Join(lines, "\n")
	if opts.Frame {
		out = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Render(out)
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
