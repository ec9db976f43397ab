package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
)

// stored is the on-disk form. Trail is a pointer so that "no trail" is written as null.
type stored struct {
	Enabled    bool    `json:"enabled"`
	Color      string  `json:"color"`
	Shape      string  `json:"shape"`
	CursorSize float64 `json:"cursorSize"`
	Trail      *string `json:"trail"`
	Intensity  float64 `json:"intensity"`
}

var knownKeys = map[string]bool{
	"enabled":    true,
	"color":      true,
	"shape":      true,
	"cursorSize": true,
	"trail":      true,
	"intensity":  true,
}

// Encode serialises s in the stored JSON form.
func Encode(s Settings) ([]byte, error) {
	out := stored{
		Enabled:    s.Enabled,
		Color:      s.Color,
		Shape:      string(s.Shape),
		CursorSize: s.CursorSize,
		Intensity:  s.Intensity,
	}
	if s.Trail != TrailNone {
		t := string(s.Trail)
		out.Trail = &t
	}
	return json.Marshal(out)
}

// DecodePatch reads a stored settings object. Fields that are absent stay nil;
// fields with the wrong JSON type are skipped with a warning.
func DecodePatch(data []byte) (Patch, error) {
	var p Patch
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return p, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, fmt.Errorf("decode settings: %w", err)
	}

	for key, val := range raw {
		if !knownKeys[key] {
			log.Printf("[settings] Warning: unrecognised setting key '%s'", key)
			continue
		}
		if err := decodeField(&p, key, val); err != nil {
			log.Printf("[settings] Warning: ignoring %s: %v", key, err)
		}
	}
	return p, nil
}

func decodeField(p *Patch, key string, val json.RawMessage) error {
	isNull := bytes.Equal(bytes.TrimSpace(val), []byte("null"))

	switch key {
	case "enabled":
		var v bool
		if err := json.Unmarshal(val, &v); err != nil || isNull {
			return fmt.Errorf("not a boolean")
		}
		p.Enabled = &v
	case "color":
		var v string
		if err := json.Unmarshal(val, &v); err != nil || isNull {
			return fmt.Errorf("not a string")
		}
		p.Color = &v
	case "shape":
		var v string
		if err := json.Unmarshal(val, &v); err != nil || isNull {
			return fmt.Errorf("not a string")
		}
		shape := CursorShape(v)
		p.Shape = &shape
	case "cursorSize":
		var v float64
		if err := json.Unmarshal(val, &v); err != nil || isNull {
			return fmt.Errorf("not a number")
		}
		p.CursorSize = &v
	case "trail":
		trail := TrailNone
		if !isNull {
			var v string
			if err := json.Unmarshal(val, &v); err != nil {
				return fmt.Errorf("not a string or null")
			}
			trail = TrailType(v)
		}
		p.Trail = &trail
	case "intensity":
		var v float64
		if err := json.Unmarshal(val, &v); err != nil || isNull {
			return fmt.Errorf("not a number")
		}
		p.Intensity = &v
	}
	return nil
}
