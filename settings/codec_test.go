package settings

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := Settings{
		Enabled:    false,
		Color:      "#123456",
		Shape:      ShapePointer,
		CursorSize: 36,
		Trail:      TrailRainbow,
		Intensity:  8,
	}
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	p, err := DecodePatch(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := Merge(Defaults(), p); got != s {
		t.Fatalf("round trip = %+v, want %+v", got, s)
	}
}

func TestEncodeNoTrailAsNull(t *testing.T) {
	s := Defaults()
	s.Trail = TrailNone
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	p, err := DecodePatch(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Trail == nil || *p.Trail != TrailNone {
		t.Fatalf("expected explicit none trail, got %v", p.Trail)
	}
}

func TestDecodePartialAndWrongTypes(t *testing.T) {
	p, err := DecodePatch([]byte(`{"color":"#00ff00","intensity":"loud","mystery":1,"trail":null}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Color == nil || *p.Color != "#00ff00" {
		t.Errorf("color not decoded: %v", p.Color)
	}
	if p.Intensity != nil {
		t.Errorf("wrong-typed intensity should be skipped, got %v", *p.Intensity)
	}
	if p.Enabled != nil || p.Shape != nil || p.CursorSize != nil {
		t.Errorf("absent fields should stay nil: %+v", p)
	}
	got := Merge(Defaults(), p)
	if got.Trail != TrailNone || got.Intensity != 5 {
		t.Errorf("merged = %+v", got)
	}
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	p, err := DecodePatch(nil)
	if err != nil || !p.Empty() {
		t.Fatalf("empty input: patch=%+v err=%v", p, err)
	}
	if _, err := DecodePatch([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
