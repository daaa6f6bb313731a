package picking

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/logger"
)

// ColorPicker renders objects in flat ID colors offscreen and decodes the
// pixels under the rectangle.
type ColorPicker struct {
	backend Backend
	opts    Options
}

// Strategy implements Picker.
func (p *ColorPicker) Strategy() Strategy { return StrategyColor }

// Pick implements Picker.
func (p *ColorPicker) Pick(req Request) (Result, error) {
	res := Result{Rect: RectFromCorners(req.Start, req.End)}

	region := res.Rect.ToViewport(req.Viewport).Intersect(req.Viewport.Bounds())
	x, y, w, h := region.Pixels()
	if w <= 0 || h <= 0 {
		logger.Debug("color pick skipped: empty region",
			zap.Float64("width", res.Rect.Width()),
			zap.Float64("height", res.Rect.Height()),
		)
		return res, nil
	}

	if err := p.backend.RenderIDPass(req.View, req.Projection, req.Viewport); err != nil {
		return res, fmt.Errorf("id pass: %w", err)
	}
	defer p.backend.EndIDPass()

	pixels, err := p.backend.ReadRegion(x, y, w, h)
	if err != nil {
		return res, fmt.Errorf("reading id region: %w", err)
	}
	res.Performed = true

	if p.opts.Dump != nil {
		p.opts.Dump(pixels, int(w), int(h))
	}

	ids := DecodePixels(pixels)
	if p.opts.ValidateIDs {
		ids = filterLive(ids, req.Live, StrategyColor)
	}
	res.IDs = ids

	logger.Info("color pick",
		zap.Int32("x", x), zap.Int32("y", y),
		zap.Int32("w", w), zap.Int32("h", h),
		zap.Uint32s("ids", ids),
	)
	return res, nil
}
