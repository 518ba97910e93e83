package debug

// Frame-rate logger enabled when config.Debug is true.
// Tick is called from the frame loop; it starts no goroutine.

import (
	"log/slog"
	"time"
)

// Sampler reports the measured frames and ticks per second.
type Sampler func() (fps, tps float64)

// FrameStats logs frame counts and rates at a fixed interval.
type FrameStats struct {
	interval time.Duration
	logger   *slog.Logger
	sample   Sampler
	start    time.Time
	frames   int
}

// NewFrameStats returns a FrameStats; a non-positive interval means one second.
func NewFrameStats(interval time.Duration, logger *slog.Logger, sample Sampler) *FrameStats {
	if interval <= 0 {
		interval = time.Second
	}
	return &FrameStats{interval: interval, logger: logger, sample: sample}
}

// Tick counts one frame and logs once the interval has elapsed.
// It returns true when a record was emitted.
func (s *FrameStats) Tick(now time.Time) bool {
	if s == nil || s.logger == nil {
		return false
	}
	if s.start.IsZero() {
		s.start = now
	}
	s.frames++
	elapsed := now.Sub(s.start)
	if elapsed < s.interval {
		return false
	}
	attrs := []any{
		slog.Int("frames", s.frames),
		slog.Duration("window", elapsed),
	}
	if s.sample != nil {
		fps, tps := s.sample()
		attrs = append(attrs, slog.Float64("fps", fps), slog.Float64("tps", tps))
	}
	s.logger.Info("frame-stats", attrs...)
	s.start = now
	s.frames = 0
	return true
}
