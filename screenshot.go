package nodeboard

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir with a timestamped filename. Safe to call from
// Update or Draw.
func (e *Editor) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// flushScreenshots writes the drawn frame once per queued label. Called at
// the end of Draw. Failures are logged, never returned.
func (e *Editor) flushScreenshots(screen *ebiten.Image) {
	if len(e.screenshotQueue) == 0 {
		return
	}
	defer func() { e.screenshotQueue = e.screenshotQueue[:0] }()

	if err := os.MkdirAll(e.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[nodeboard] screenshot: mkdir %s: %v\n", e.ScreenshotDir, err)
		return
	}

	b := screen.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	// ReadPixels yields premultiplied RGBA, the layout image.RGBA uses.
	screen.ReadPixels(frame.Pix)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range e.screenshotQueue {
		if err := saveFrame(screenshotPath(e.ScreenshotDir, stamp, label), frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[nodeboard] screenshot: %v\n", err)
		}
	}
}

// saveFrame writes a captured frame as PNG.
func saveFrame(path string, frame *image.RGBA) error {
	if err := gg.NewContextForRGBA(frame).SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func screenshotPath(dir, stamp, label string) string {
	return filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps every other
// rune to '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, label)
}
