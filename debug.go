package nodeboard

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and scene counts.
// Only populated when the editor is in debug mode.
type debugStats struct {
	updateTime time.Duration
	buildTime  time.Duration
	paintTime  time.Duration
	gridLines  int
	nodeCount  int
	mode       Mode
}

// debugLog prints timing and counts to stderr.
func (e *Editor) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[nodeboard] update: %v | build: %v | paint: %v | total: %v\n",
		stats.updateTime, stats.buildTime, stats.paintTime,
		stats.updateTime+stats.buildTime+stats.paintTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[nodeboard] nodes: %d | grid lines: %d | mode: %s | scale: %.2f\n",
		stats.nodeCount, stats.gridLines, stats.mode, e.camera.Scale)
	if stats.gridLines >= maxGridLines {
		_, _ = fmt.Fprintf(os.Stderr, "[nodeboard] warning: grid near the %d lines per axis cap\n", maxGridLines)
	}
}
