// Package debug writes picking readbacks to disk for inspection.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/logger"
)

// PickDumper saves each color-ID readback as a PNG.
type PickDumper struct {
	outputDir string
	prefix    string
	seq       atomic.Uint64
	now       func() time.Time
}

// NewPickDumper creates a dumper writing into outputDir.
func NewPickDumper(outputDir, prefix string) *PickDumper {
	return &PickDumper{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// Image converts bottom-up RGBA rows, as read back from GL, into a top-down image.
func Image(pixels []byte, width, height int) (*image.RGBA, error) {
	if width < 0 || height < 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save writes one readback and returns the file name.
func (d *PickDumper) Save(pixels []byte, width, height int) (string, error) {
	img, err := Image(pixels, width, height)
	if err != nil {
		return "", err
	}
	if d.outputDir != "" {
		if err := os.MkdirAll(d.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := fmt.Sprintf("%s_%s_%03d.png", d.prefix, d.now().Format("2006-01-02_15-04-05"), d.seq.Add(1))
	name = filepath.Join(d.outputDir, name)

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

// Dump matches picking.Options.Dump. Errors are logged, never returned, so a
// full disk cannot fail a pick.
func (d *PickDumper) Dump(pixels []byte, width, height int) {
	name, err := d.Save(pixels, width, height)
	if err != nil {
		logger.Warn("pick dump failed", zap.Error(err))
		return
	}
	logger.Debug("pick readback saved", zap.String("file", name), zap.Int("width", width), zap.Int("height", height))
}
