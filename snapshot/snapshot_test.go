package snapshot

import (
	"bytes"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/disintegration/imaging"
)

func TestRenderIsDeterministic(t *testing.T) {
	o := Options{Settings: settings.Defaults(), Frames: 90, Seed: 7}
	a, err := Render(o)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("same seed produced different images")
	}
	if a.Bounds().Dx() != cfg.Editor.PreviewWidth || a.Bounds().Dy() != cfg.Editor.PreviewHeight {
		t.Errorf("size = %v", a.Bounds())
	}
}

func TestTrailShowsInRender(t *testing.T) {
	with := settings.Defaults()
	without := with
	without.Trail = settings.TrailNone

	a, _ := Render(Options{Settings: with, Frames: 90, Seed: 1})
	b, _ := Render(Options{Settings: without, Frames: 90, Seed: 1})
	if bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("trail made no visible difference")
	}
}

func TestCaption(t *testing.T) {
	s := settings.Defaults()
	s.Trail = settings.TrailNone
	want := "arrow / no trail / #ff69b4 / size 24 / intensity 5"
	if got := Caption(s); got != want {
		t.Fatalf("Caption = %q, want %q", got, want)
	}
}

func TestSaveWritesPNG(t *testing.T) {
	img, err := Render(Options{Settings: settings.Defaults(), Frames: 10, Caption: true})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := Save(img, path); err != nil {
		t.Fatal(err)
	}
	back, err := imaging.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Bounds() != img.Bounds() {
		t.Errorf("read back %v, want %v", back.Bounds(), img.Bounds())
	}
}
