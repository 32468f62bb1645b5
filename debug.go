package wires

import "time"

// frameStats holds per-frame timing and draw metrics.
// Only populated when the screen is in debug mode.
type frameStats struct {
	frameTime time.Duration
	entities  int
	draws     int
	dirty     int
}

// debugLog writes the frame's stats at debug level.
func (s *Screen) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		"n", s.frameCount,
		"time", stats.frameTime,
		"entities", stats.entities,
		"draws", stats.draws,
		"dirty", stats.dirty,
	)
	if budget := time.Second / time.Duration(s.fps); stats.frameTime > budget {
		s.logger.Warn("frame exceeded budget", "n", s.frameCount, "time", stats.frameTime, "budget", budget)
	}
}

// debugMaxEntities is the registered entity count above which Add warns in
// debug mode.
const debugMaxEntities = 1000

func (s *Screen) debugCheckEntityCount() {
	if len(s.entities) > debugMaxEntities {
		s.logger.Warn("many entities registered", "count", len(s.entities), "threshold", debugMaxEntities)
	}
}
