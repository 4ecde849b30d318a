package nebula

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing metrics.
// Only populated when the animator's debug mode is on.
type frameStats struct {
	updateTime  time.Duration
	renderTime  time.Duration
	nodes       int
	streams     int
	fieldPoints int
}

// debugLog prints timing and scene-size stats to stderr.
func (a *Animator) debugLog(stats frameStats) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[nebula] update: %v | render: %v | total: %v\n",
		stats.updateTime, stats.renderTime, stats.updateTime+stats.renderTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[nebula] nodes: %d | streams: %d | field points: %d\n",
		stats.nodes, stats.streams, stats.fieldPoints)
}
