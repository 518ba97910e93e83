package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig_Menu(t *testing.T) {
	m := DefaultConfig().Menu()
	if m.Segments != 10 || m.InnerRadius != 0.1 || m.OuterRadius != 0.4 || m.BorderWidth != 0.01 {
		t.Fatalf("unexpected default menu %+v", m)
	}
}

func TestValidate_ClampsGeometry(t *testing.T) {
	c := DefaultConfig()
	c.WindowSize = -1
	c.Segments = 0
	c.InnerRadius = 0.5
	c.OuterRadius = 0.2
	c.BorderWidth = 1
	c.QuitKey = ""
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.WindowSize != 480 || c.Segments != 10 {
		t.Fatalf("window/segments not restored: %d %d", c.WindowSize, c.Segments)
	}
	if c.InnerRadius != 0.1 || c.OuterRadius != 0.4 {
		t.Fatalf("radii not restored: %v %v", c.InnerRadius, c.OuterRadius)
	}
	if c.BorderWidth != 0.01 || c.QuitKey != "Q" {
		t.Fatalf("border/quit not restored: %v %q", c.BorderWidth, c.QuitKey)
	}
}

func TestValidate_BadColor(t *testing.T) {
	c := DefaultConfig()
	c.InactiveColor = "#12345"
	err := c.Validate()
	if err == nil || !errors.Is(err, errBadColor) {
		t.Fatalf("expected color error, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"#C65333FF", RGBA{198.0 / 255, 83.0 / 255, 51.0 / 255, 1}},
		{"#00000000", RGBA{0, 0, 0, 0}},
		{"#ffffff", RGBA{1, 1, 1, 1}},
		{"Red", RGBA{1, 0, 0, 1}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, diff)
		}
	}
	for _, bad := range []string{"", "#zzzzzz", "#123", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestRGBA_NRGBARoundTrip(t *testing.T) {
	c, _ := ParseColor("#697893FF")
	n := c.NRGBA()
	if n.R != 0x69 || n.G != 0x78 || n.B != 0x93 || n.A != 0xff {
		t.Fatalf("unexpected %+v", n)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	c := DefaultConfig()
	c.Segments = 6
	c.Labels = []string{"a", "b"}
	c.ActiveColor = "gold"
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte("{segments:"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if cfg == nil || cfg.Segments != 10 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}
