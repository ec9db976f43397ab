package config

import "image/color"

// SimulationConfig tunes the trail simulation for one host.
type SimulationConfig struct {
	// Spawning
	MovementThreshold float64 // Pointer displacement (px) required to spawn
	SpawnFactor       float64 // Multiplier applied to intensity
	Normalizer        float64 // Distance divisor
	SpawnCap          int     // Maximum particles spawned per tick
	HueStep           float64 // Rainbow hue advance per spawned particle (degrees)

	// Particle initial state
	Jitter     float64 // Spawn offset range around the pointer (px)
	SizeBase   float64
	SizeRange  float64
	DecayBase  float64 // Life lost per tick
	DecayRange float64
	Spread     float64 // Initial velocity range per axis
	Lift       float64 // Added to initial vy (positive is downward)
	Gravity    float64 // Added to vy every tick
	SpinRange  float64 // Rotation speed range (radians per tick)
}

// CursorConfig contains cursor glyph styling
type CursorConfig struct {
	OutlineColor  color.NRGBA
	OutlineWidth  float64
	ShadowColor   color.NRGBA
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
	ReferenceSize float64 // Arrow and pointer outlines are authored at this size
	PreviewScale  float64 // Cursor size multiplier in the editor preview
}

// EditorConfig contains settings editor layout and options
type EditorConfig struct {
	Palette       []string
	MinCursorSize float64
	MaxCursorSize float64
	CursorStep    float64
	IntensityStep float64

	// Preview pane in screen coordinates
	PreviewX, PreviewY          int
	PreviewWidth, PreviewHeight int
	PreviewFollow               float64 // Lerp factor toward the figure-8 target
	PreviewPeriodX              float64 // Seconds per horizontal sweep
	PreviewPeriodY              float64
	PreviewAmplitudeX           float64 // Fraction of pane width
	PreviewAmplitudeY           float64 // Fraction of pane height

	BackgroundColor color.RGBA
	PaneColor       color.RGBA
	EnabledColor    color.RGBA
	DisabledColor   color.RGBA
}

// NetConfig contains the editor to overlay message channel settings
type NetConfig struct {
	Port         uint
	QueueSize    int
	ConnectWait  float64 // Seconds a one-shot sender waits for the overlay
	ReconnectGap int     // Frames between editor reconnect attempts
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowStats bool // Print particle count and driver state over each canvas
}

// MessageConfig contains the editor status line configuration
type MessageConfig struct {
	DisplayDuration int // Frames a status stays visible
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
	BottomMargin    float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Default is the render layer every entity and renderer uses.
const Default = 0

// AppName is the persistence namespace
const AppName = "sparkle-cursor"

// Global configuration instances
var C *Config
var Page SimulationConfig
var Preview SimulationConfig
var Cursor CursorConfig
var Editor EditorConfig
var Net NetConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGrey = color.RGBA{R: 153, G: 153, B: 153, A: 255}
	Forest    = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	HotPink   = color.RGBA{R: 255, G: 105, B: 180, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Overlay renderer: denser trail
	Page = SimulationConfig{
		MovementThreshold: 2,
		SpawnFactor:       0.5,
		Normalizer:        10,
		SpawnCap:          5,
		HueStep:           3,

		Jitter:     20,
		SizeBase:   2,
		SizeRange:  6,
		DecayBase:  0.015,
		DecayRange: 0.01,
		Spread:     2,
		Lift:       1,
		Gravity:    0.05,
		SpinRange:  0.2,
	}

	// Editor preview: gentler trail in a small pane
	Preview = SimulationConfig{
		MovementThreshold: 1,
		SpawnFactor:       0.3,
		Normalizer:        5,
		SpawnCap:          3,
		HueStep:           5,

		Jitter:     15,
		SizeBase:   2,
		SizeRange:  5,
		DecayBase:  0.02,
		DecayRange: 0.01,
		Spread:     1.5,
		Lift:       0.5,
		Gravity:    0.03,
		SpinRange:  0.15,
	}

	Cursor = CursorConfig{
		OutlineColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		OutlineWidth:  2,
		ShadowColor:   color.NRGBA{R: 0, G: 0, B: 0, A: 77}, // 0.3 alpha
		ShadowBlur:    3,
		ShadowOffsetX: 1,
		ShadowOffsetY: 1,
		ReferenceSize: 24,
		PreviewScale:  0.8,
	}

	Editor = EditorConfig{
		Palette: []string{
			"#ff69b4", "#ff1493", "#ff4500", "#ffd700",
			"#32cd32", "#00ced1", "#1e90ff", "#9370db", "#ffffff",
		},
		MinCursorSize: 16,
		MaxCursorSize: 48,
		CursorStep:    4,
		IntensityStep: 1,

		PreviewX:          360,
		PreviewY:          40,
		PreviewWidth:      260,
		PreviewHeight:     200,
		PreviewFollow:     0.1,
		PreviewPeriodX:    4.19, // 2π / 1.5
		PreviewPeriodY:    2.09, // 2π / 3
		PreviewAmplitudeX: 0.3,
		PreviewAmplitudeY: 0.25,

		BackgroundColor: color.RGBA{R: 30, G: 20, B: 35, A: 255},
		PaneColor:       color.RGBA{R: 250, G: 240, B: 248, A: 255},
		EnabledColor:    Forest,
		DisabledColor:   LightGrey,
	}

	Net = NetConfig{
		Port:         7474,
		QueueSize:    16,
		ConnectWait:  2,
		ReconnectGap: 120, // 2 seconds at 60fps
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowStats: false,
	}

	// Message Config
	Message = MessageConfig{
		DisplayDuration: 180, // 3 seconds at 60fps
		BoxPadding:      6.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BottomMargin:    12.0,
	}
}
