package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soocke/radial-select-go/config"
)

func TestParseArgs_Defaults(t *testing.T) {
	o, err := parseArgs(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(options{}, o); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	cfg := config.DefaultConfig()
	o.apply(cfg)
	if cfg.WindowSize != 480 || cfg.Segments != 10 {
		t.Fatalf("defaults overridden: %d %d", cfg.WindowSize, cfg.Segments)
	}
}

func TestParseArgs_Positional(t *testing.T) {
	o, err := parseArgs([]string{"-debug", "600", "4"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := config.DefaultConfig()
	o.apply(cfg)
	if cfg.WindowSize != 600 || cfg.Segments != 4 || !cfg.Debug {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseArgs_Rejects(t *testing.T) {
	for _, args := range [][]string{{"0"}, {"abc"}, {"480", "0"}, {"480", "x"}, {"1", "2", "3"}} {
		if _, err := parseArgs(args, &bytes.Buffer{}); !errors.Is(err, ErrUsage) {
			t.Errorf("%v: expected usage error, got %v", args, err)
		}
	}
}

func TestRun_BadArgsExitTwo(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-1"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout must stay empty, got %q", out.String())
	}
}

func TestRun_BadConfigExitOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"active_color": "#nope"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	if code := run([]string{"-config", path}, &out, &errOut); code != 1 {
		t.Fatalf("expected exit 1, got %d (%s)", code, errOut.String())
	}
}

func TestRun_SnapshotWritesPNG(t *testing.T) {
	dir := t.TempDir()
	png1 := filepath.Join(dir, "ring.png")
	cfgOut := filepath.Join(dir, "cfg.json")
	var out, errOut bytes.Buffer
	if code := run([]string{"-snapshot", png1, "-write-config", cfgOut, "64", "6"}, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, errOut.String())
	}
	f, err := os.Open(png1)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("unexpected snapshot size %v", b)
	}
	saved, err := config.Load(cfgOut)
	if err != nil || saved.Segments != 6 || saved.WindowSize != 64 {
		t.Fatalf("written config %+v err=%v", saved, err)
	}
}
