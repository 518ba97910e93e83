package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soocke/radial-select-go/config"
	"github.com/soocke/radial-select-go/domain/geometry"
)

func testSynchronizer(t *testing.T, segments int) *Synchronizer {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Segments = segments
	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	return NewSynchronizer(cfg.Menu(), p)
}

func TestSynchronizer_FrameTracksCursor(t *testing.T) {
	s := testSynchronizer(t, 4)
	f := s.Frame(360, 120, 480, 480)
	if f.Active != geometry.Segment(0) || f.ActiveCode() != 0 {
		t.Fatalf("expected segment 0, got %v", f.Active)
	}
	f = s.Frame(120, 120, 480, 480)
	if f.Active != geometry.Segment(1) {
		t.Fatalf("expected segment 1 for north-west, got %v", f.Active)
	}
	f = s.Frame(240, 240, 480, 480)
	if !f.Active.IsCenter() || f.ActiveCode() != 4 {
		t.Fatalf("expected center code 4, got %v (%d)", f.Active, f.ActiveCode())
	}
}

func TestFrame_Uniforms(t *testing.T) {
	s := testSynchronizer(t, 10)
	u := s.Frame(360, 120, 480, 320).Uniforms()
	want := map[string]any{
		"ViewportSize":    []float32{480, 320},
		"MousePos":        []float32{0.25, float32(-(120.0/320 - 0.5))},
		"Segments":        float32(10),
		"ActiveSegment":   float32(0),
		"InnerRadius":     float32(0.1),
		"OuterRadius":     float32(0.4),
		"BorderWidth":     float32(0.01),
		"ActiveColor":     []float32{198.0 / 255, 83.0 / 255, 51.0 / 255, 1},
		"InactiveColor":   []float32{0x69 / 255.0, 0x78 / 255.0, 0x93 / 255.0, 1},
		"BackgroundColor": []float32{0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Fatalf("uniforms (-want +got):\n%s", diff)
	}
}

func TestLayoutLabels(t *testing.T) {
	m := geometry.Menu{Segments: 4, InnerRadius: 0.1, OuterRadius: 0.4}
	got := LayoutLabels(m, []string{"east", "", "west", "south", "extra"}, 400, 400)
	if len(got) != 3 {
		t.Fatalf("expected 3 labels, got %+v", got)
	}
	// Wedge 0 bisector is 45°, mid radius 0.25.
	r := 0.25 / math.Sqrt2 * 400
	if math.Abs(got[0].X-(200+r)) > 1e-9 || math.Abs(got[0].Y-(200-r)) > 1e-9 {
		t.Fatalf("label 0 misplaced: %+v", got[0])
	}
	for _, l := range got {
		p := geometry.PolarFromCursor(l.X, l.Y, 400, 400)
		if res := geometry.Classify(p, m); res != geometry.Segment(l.Segment) {
			t.Fatalf("label %q sits in %v, want segment %d", l.Text, res, l.Segment)
		}
	}
	if LayoutLabels(m, nil, 400, 400) != nil {
		t.Fatal("no labels should yield nil")
	}
}
