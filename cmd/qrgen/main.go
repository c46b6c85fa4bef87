// Command qrgen encodes short text as a QR code symbol and renders it to
// the terminal or a PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/JackT-C/qrgen"
)

var (
	flagScale     int
	flagFrame     bool
	flagDarkChar  string
	flagLightChar string
	flagFg        string
	flagBg        string
	flagOut       string
	flagPNGScale  int
	flagQRVersion int
	flagMask      int
	flagExplain   bool
	flagColor     string
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "qrgen <text>",
	Short: "Generate QR code symbols (versions 1-2, byte mode, level L)",
	Long: `qrgen encodes text of up to 34 Latin-1 bytes into a QR code symbol,
picks the mask pattern with the lowest penalty score, and renders the
result to the terminal and optionally to a PNG file.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runEncode,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&flagScale, "scale", 1, "terminal module scale (1-3)")
	flags.BoolVar(&flagFrame, "frame", false, "draw a frame around the symbol")
	flags.StringVar(&flagDarkChar, "dark-char", "", "characters for dark modules")
	flags.StringVar(&flagLightChar, "light-char", "", "characters for light modules")
	flags.StringVar(&flagFg, "fg", "", "dark module colour (#rrggbb or ANSI code)")
	flags.StringVar(&flagBg, "bg", "", "light module colour (#rrggbb or ANSI code)")
	flags.StringVarP(&flagOut, "out", "o", "", "also write the symbol to a PNG file")
	flags.IntVar(&flagPNGScale, "png-scale", 10, "pixels per module in PNG output")
	flags.IntVar(&flagQRVersion, "qr-version", 0, "force symbol version 1 or 2 (0 = auto)")
	flags.IntVar(&flagMask, "mask", -1, "force mask pattern 0-7 (-1 = choose by penalty)")
	flags.BoolVar(&flagExplain, "explain", false, "print each construction stage")
	flags.StringVar(&flagColor, "color", "auto", "colorize output (auto|on|off)")
	flags.StringVar(&flagConfig, "config", "", "TOML file with default render options")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qrgen: %v\n", err)
		os.Exit(1)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	setupColor()
	if err := applyConfig(cmd); err != nil {
		return err
	}

	opts := &qrgen.Options{}
	if flagQRVersion != 0 {
		opts.Version = qrgen.Version(flagQRVersion)
	}
	if flagMask >= 0 {
		mask := flagMask
		opts.Mask = &mask
	}

	trace, err := qrgen.EncodeTrace(args[0], opts)
	if err != nil {
		return err
	}
	if flagExplain {
		printTrace(cmd.OutOrStdout(), trace)
	}

	symbol := trace.Symbol
	headline.Fprintf(cmd.OutOrStdout(), "version %s, mask %d (score %d)\n",
		symbol.Version, symbol.Mask, symbol.Score)

	termOpts := &qrgen.TerminalOptions{
		Scale:     flagScale,
		Frame:     flagFrame,
		DarkChar:  flagDarkChar,
		LightChar: flagLightChar,
		Dark:      flagFg,
		Light:     flagBg,
	}
	if err := qrgen.WriteTerminal(cmd.OutOrStdout(), symbol, termOpts); err != nil {
		return err
	}

	if flagOut != "" {
		pngOpts := &qrgen.PNGOptions{Scale: flagPNGScale, Frame: flagFrame}
		if flagFg != "" {
			rgb, err := qrgen.ParseColor(flagFg)
			if err != nil {
				return err
			}
			pngOpts.Dark = rgb
		}
		if flagBg != "" {
			rgb, err := qrgen.ParseColor(flagBg)
			if err != nil {
				return err
			}
			pngOpts.Light = rgb
		}
		if err := qrgen.SavePNG(flagOut, symbol, pngOpts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", flagOut)
	}
	return nil
}

// setupColor wires the --color flag into fatih/color's global switch.
func setupColor() {
	switch flagColor {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) &&
			!isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
