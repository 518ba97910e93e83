package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func TestFrameStats_LogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	s := NewFrameStats(time.Second, logger, func() (float64, float64) { return 60, 60 })
	base := time.Unix(0, 0)
	for i := 0; i < 60; i++ {
		if s.Tick(base.Add(time.Duration(i) * 16 * time.Millisecond)) {
			t.Fatalf("logged early at frame %d", i)
		}
	}
	if !s.Tick(base.Add(time.Second)) {
		t.Fatal("expected a record once the interval elapsed")
	}
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "frame-stats" || rec["frames"] != float64(61) || rec["fps"] != float64(60) {
		t.Fatalf("unexpected record %v", rec)
	}
	if s.Tick(base.Add(time.Second + time.Millisecond)) {
		t.Fatal("counter should restart after logging")
	}
}

func TestFrameStats_NilSafe(t *testing.T) {
	var s *FrameStats
	if s.Tick(time.Now()) {
		t.Fatal("nil stats must not log")
	}
	if NewFrameStats(0, nil, nil).Tick(time.Now()) {
		t.Fatal("stats without logger must not log")
	}
}
