package store

import (
	"errors"
	"testing"

	"github.com/automoto/sparkle-cursor/settings"
)

type brokenBackend struct{}

func (brokenBackend) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (brokenBackend) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func TestEmptyStoreLoadsDefaults(t *testing.T) {
	s := New(NewMemory())
	if _, ok := s.Get(); ok {
		t.Fatal("Get reported stored settings on an empty backend")
	}
	if got := s.Load(); got != settings.Defaults() {
		t.Fatalf("Load = %+v, want defaults", got)
	}
}

func TestSetThenLoad(t *testing.T) {
	s := New(NewMemory())
	want := settings.Defaults()
	want.Color = "#00ff00"
	want.Shape = settings.ShapeHeart
	want.Trail = settings.TrailNone
	want.Intensity = 9

	if err := s.Set(want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Load(); got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestPartialItemMergesOverDefaults(t *testing.T) {
	m := NewMemory()
	m.SaveItem(itemKey, []byte(`{"shape":"pointer","intensity":42,"extra":1}`))
	got := New(m).Load()

	want := settings.Defaults()
	want.Shape = settings.ShapePointer
	want.Intensity = 10
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestCorruptItemLoadsDefaults(t *testing.T) {
	m := NewMemory()
	m.SaveItem(itemKey, []byte(`{not json`))
	if got := New(m).Load(); got != settings.Defaults() {
		t.Fatalf("Load = %+v, want defaults", got)
	}
}

func TestOnChange(t *testing.T) {
	s := New(NewMemory())
	var seen []settings.Settings
	cancel := s.OnChange(func(v settings.Settings) { seen = append(seen, v) })

	v := settings.Defaults()
	v.Enabled = false
	s.Set(v)
	cancel()
	s.Set(settings.Defaults())

	if len(seen) != 1 || seen[0].Enabled {
		t.Fatalf("listener saw %+v, want one disabled update", seen)
	}
}

func TestBackendFailures(t *testing.T) {
	s := New(brokenBackend{})
	called := false
	s.OnChange(func(settings.Settings) { called = true })

	if err := s.Set(settings.Defaults()); err == nil {
		t.Fatal("Set succeeded on a broken backend")
	}
	if called {
		t.Error("listener ran after a failed save")
	}
	if got := s.Load(); got != settings.Defaults() {
		t.Errorf("Load = %+v, want defaults", got)
	}
}
