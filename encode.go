package qrgen

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"github.com/JackT-C/qrgen/bitutil"
)

// Symbol is a finished QR symbol: the best-scoring module grid together with
// the mask that produced it.
type Symbol struct {
	Version Version
	Mask    int
	Score   int
	Grid    *Grid
}

// Options configures encoding. The zero value selects everything
// automatically.
type Options struct {
	// Version forces a symbol version; 0 chooses the smallest version whose
	// data capacity holds the input.
	Version Version

	// Mask forces a mask identifier (0-7); nil evaluates all eight and keeps
	// the lowest penalty score.
	Mask *int
}

// Trace records the intermediate artifacts of one encoding run, for
// step-by-step inspection.
type Trace struct {
	Version       Version
	Payload       []byte            // input transformed to Latin-1 bytes
	Bitstream     *bitutil.BitArray // padded data bitstream
	DataCodewords []byte
	ECCodewords   []byte
	Scores        []int // penalty per mask identifier; nil when a mask was forced
	Symbol        *Symbol
}

// Encode encodes text into a QR symbol, choosing the smallest version that
// fits and the mask with the lowest penalty score.
func Encode(text string) (*Symbol, error) {
	return EncodeWithOptions(text, nil)
}

// EncodeWithOptions is Encode with explicit version and mask control.
func EncodeWithOptions(text string, opts *Options) (*Symbol, error) {
	trace, err := encode(text, opts)
	if err != nil {
		return nil, err
	}
	return trace.Symbol, nil
}

// EncodeTrace runs the full pipeline and returns every intermediate
// artifact along with the finished symbol.
func EncodeTrace(text string, opts *Options) (*Trace, error) {
	return encode(text, opts)
}

func encode(text string, opts *Options) (*Trace, error) {
	if opts == nil {
		opts = &Options{}
	}

	payload, err := latin1Bytes(text)
	if err != nil {
		return nil, err
	}

	version := opts.Version
	if version == 0 {
		version, err = ChooseVersion(len(payload))
		if err != nil {
			return nil, err
		}
	} else {
		if !version.valid() {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrOptions, version)
		}
		if len(payload) > version.DataCodewords() {
			return nil, fmt.Errorf("%w: %d bytes exceed the %d-byte capacity of version %s",
				ErrInputTooLarge, len(payload), version.DataCodewords(), version)
		}
	}

	bits, err := buildBitstream(payload, version)
	if err != nil {
		return nil, err
	}
	dataCodewords, err := splitCodewords(bits, version)
	if err != nil {
		return nil, err
	}
	full, err := addErrorCorrection(dataCodewords, version)
	if err != nil {
		return nil, err
	}
	flat := flattenCodewords(full)

	trace := &Trace{
		Version:       version,
		Payload:       payload,
		Bitstream:     bits,
		DataCodewords: dataCodewords,
		ECCodewords:   full[len(dataCodewords):],
	}

	if opts.Mask != nil {
		maskID := *opts.Mask
		if maskID < 0 || maskID >= numMasks {
			return nil, fmt.Errorf("%w: mask identifier %d out of range 0-%d", ErrOptions, maskID, numMasks-1)
		}
		grid, score, err := buildCandidate(version, flat, maskID)
		if err != nil {
			return nil, err
		}
		trace.Symbol = &Symbol{Version: version, Mask: maskID, Score: score, Grid: grid}
		return trace, nil
	}

	symbol, scores, err := chooseMask(version, flat)
	if err != nil {
		return nil, err
	}
	trace.Scores = scores
	trace.Symbol = symbol
	return trace, nil
}

// latin1Bytes transforms text to one byte per character, the encoding the
// count field and payload are defined over.
func latin1Bytes(text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	payload, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrText, err)
	}
	return payload, nil
}

// buildCandidate runs one construction pass: a fresh grid and a fresh
// reserved-cell set, function patterns, format information for maskID, data
// placement, masking and scoring. The reserved set is owned by this pass
// alone; nothing leaks between trials.
func buildCandidate(v Version, flat *bitutil.BitArray, maskID int) (*Grid, int, error) {
	size := v.Size()
	grid := newGrid(size)
	reserved := bitutil.NewBitMatrix(size)

	stampFunctionPatterns(grid, reserved, v)
	writeFormatInfo(grid, reserved, maskID)
	if err := placeData(grid, flat); err != nil {
		return nil, 0, err
	}
	applyMask(grid, reserved, maskID)
	return grid, PenaltyScore(grid), nil
}

// chooseMask evaluates all eight mask candidates and keeps the one with the
// strictly lowest score. The trials are independent, so they run
// concurrently; the winner is still chosen by an ascending scan over the
// mask identifiers, which preserves the first-seen-lowest tie-break of a
// sequential evaluation.
func chooseMask(v Version, flat *bitutil.BitArray) (*Symbol, []int, error) {
	type candidate struct {
		grid  *Grid
		score int
	}
	var candidates [numMasks]candidate

	var group errgroup.Group
	for maskID := 0; maskID < numMasks; maskID++ {
		maskID := maskID
		group.Go(func() error {
			grid, score, err := buildCandidate(v, flat, maskID)
			if err != nil {
				return err
			}
			candidates[maskID] = candidate{grid: grid, score: score}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	best := 0
	scores := make([]int, numMasks)
	for maskID, c := range candidates {
		scores[maskID] = c.score
		if c.score < candidates[best].score {
			best = maskID
		}
	}
	symbol := &Symbol{
		Version: v,
		Mask:    best,
		Score:   candidates[best].score,
		Grid:    candidates[best].grid,
	}
	return symbol, scores, nil
}
