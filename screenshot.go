package sortable

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. Files are
// named "<seq>_<label>.png" inside ScreenshotDir, where seq counts every
// capture the scene has taken, so a replayed script always produces the same
// names. Headless scenes never draw and leave the queue untouched.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes the queued captures of screen. Called at the end of
// Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil

	paths, err := s.writeScreenshots(captureFrame(screen), labels)
	for _, p := range paths {
		s.logger.Debug("screenshot written", slog.String("path", p))
	}
	if err != nil {
		s.logger.Error("screenshot", slog.String("dir", s.ScreenshotDir), slog.Any("error", err))
	}
}

// captureFrame reads screen back as a straight-alpha image.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	return toNRGBA(pixels, b.Dx(), b.Dy())
}

// toNRGBA converts premultiplied RGBA pixels, as ebiten stores them, to
// straight alpha for PNG encoding.
func toNRGBA(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

// writeScreenshots encodes img once per label and returns the paths written
// before the first failure.
func (s *Scene) writeScreenshots(img *image.NRGBA, labels []string) ([]string, error) {
	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	var written []string
	for _, label := range labels {
		s.screenshotSeq++
		path := filepath.Join(s.ScreenshotDir, fmt.Sprintf("%03d_%s.png", s.screenshotSeq, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.'; anything else becomes
// '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
