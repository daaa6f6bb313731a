package picking

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// HitRecordPicker renders name-tagged objects through a projection narrowed to
// the rectangle and parses the resulting hit records.
type HitRecordPicker struct {
	backend Backend
	opts    Options
}

// Strategy implements Picker.
func (p *HitRecordPicker) Strategy() Strategy { return StrategyHitRecord }

// Pick implements Picker.
func (p *HitRecordPicker) Pick(req Request) (Result, error) {
	res := Result{Rect: RectFromCorners(req.Start, req.End)}

	region := res.Rect.ToViewport(req.Viewport)
	if region.Width() < p.opts.MinDragPixels || region.Height() < p.opts.MinDragPixels {
		logger.Debug("hit-record pick skipped: drag below threshold",
			zap.Float64("width", region.Width()),
			zap.Float64("height", region.Height()),
			zap.Float64("min", p.opts.MinDragPixels),
		)
		return res, nil
	}
	if region.Intersect(req.Viewport.Bounds()).Empty() {
		logger.Debug("hit-record pick skipped: rectangle outside viewport")
		return res, nil
	}

	// PickMatrix wants window coordinates, so add the viewport origin back.
	c := region.Center()
	restricted := math.PickMatrix(
		float32(c.X)+float32(req.Viewport.X),
		float32(c.Y)+float32(req.Viewport.Y),
		float32(region.Width()),
		float32(region.Height()),
		req.Viewport.Array(),
	).Mul(req.Projection)

	hits, buf, err := p.backend.SelectPass(req.View, restricted, req.Viewport, p.opts.SelectBufferSize)
	if err != nil {
		return res, fmt.Errorf("select pass: %w", err)
	}
	res.Performed = true

	if hits < 0 {
		logger.Warn("selection buffer overflow, keeping complete records",
			zap.Int("capacity", p.opts.SelectBufferSize),
		)
	}

	records, err := ParseHitRecords(hits, buf)
	if err != nil {
		if !errors.Is(err, ErrTruncatedHitRecord) {
			return res, err
		}
		logger.Warn("malformed hit records", zap.Error(err), zap.Int("parsed", len(records)))
	}

	ids := HitRecordIDs(records)
	if p.opts.ValidateIDs {
		ids = filterLive(ids, req.Live, StrategyHitRecord)
	}
	res.IDs = ids

	logger.Info("hit-record pick",
		zap.Int("hits", hits),
		zap.Uint32s("ids", ids),
	)
	return res, nil
}
