package picking

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// Strategy names a picking implementation.
type Strategy string

const (
	StrategyAuto      Strategy = "auto"
	StrategyColor     Strategy = "color"
	StrategyHitRecord Strategy = "hitrecord"
)

// Defaults for Options.
const (
	DefaultMinDragPixels    = 5
	DefaultSelectBufferSize = 512
)

// Options tunes the pickers.
type Options struct {
	// MinDragPixels is the smallest rectangle side the hit-record strategy
	// treats as a selection. Anything smaller is a click and skips the pass.
	MinDragPixels float64
	// SelectBufferSize is the hit-record stream capacity in uint32 words.
	SelectBufferSize int
	// ValidateIDs drops decoded IDs that are not in the request's live table.
	ValidateIDs bool
	// Dump, if set, receives every color readback (RGBA, bottom-up rows).
	Dump func(pixels []byte, width, height int)
}

// DefaultOptions returns the options the viewer ships with.
func DefaultOptions() Options {
	return Options{
		MinDragPixels:    DefaultMinDragPixels,
		SelectBufferSize: DefaultSelectBufferSize,
		ValidateIDs:      true,
	}
}

// Request is one rubberband pick.
type Request struct {
	Start, End Point // drag corners in window pixels, top-left origin
	Viewport   Viewport
	View       math.Mat4
	Projection math.Mat4
	Live       IDTable // may be nil when validation is off
}

// Result is the outcome of a pick.
type Result struct {
	IDs []uint32 // sorted, unique
	// Rect is the normalized drag rectangle in window pixels.
	Rect Rect
	// Performed is false when the rectangle was too small or off-screen and
	// no render pass ran.
	Performed bool
}

// Picker maps a screen rectangle to the set of object IDs under it.
type Picker interface {
	Pick(req Request) (Result, error)
	Strategy() Strategy
}

// New returns a picker for the strategy. StrategyAuto prefers hit records when
// the backend has a selection buffer and falls back to color readback.
func New(strategy Strategy, backend Backend, opts Options) (Picker, error) {
	if opts.MinDragPixels <= 0 {
		opts.MinDragPixels = DefaultMinDragPixels
	}
	if opts.SelectBufferSize <= 0 {
		opts.SelectBufferSize = DefaultSelectBufferSize
	}

	caps := backend.Capabilities()
	if strategy == StrategyAuto {
		switch {
		case caps.SelectionBuffer:
			strategy = StrategyHitRecord
		case caps.Readback:
			strategy = StrategyColor
		default:
			return nil, fmt.Errorf("%w: no picking capability", ErrUnsupported)
		}
	}

	switch strategy {
	case StrategyHitRecord:
		if !caps.SelectionBuffer {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, strategy)
		}
		return &HitRecordPicker{backend: backend, opts: opts}, nil
	case StrategyColor:
		if !caps.Readback {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, strategy)
		}
		return &ColorPicker{backend: backend, opts: opts}, nil
	default:
		return nil, fmt.Errorf("picking: unknown strategy %q", strategy)
	}
}

// filterLive drops IDs the live table does not know. Blended or filtered edge
// pixels can decode to values no object owns.
func filterLive(ids []uint32, live IDTable, strategy Strategy) []uint32 {
	if live == nil {
		return ids
	}
	kept := ids[:0]
	for _, id := range ids {
		if !live.Contains(id) {
			logger.Debug("discarding phantom pick",
				zap.String("strategy", string(strategy)),
				zap.Uint32("id", id),
			)
			continue
		}
		kept = append(kept, id)
	}
	return kept
}
