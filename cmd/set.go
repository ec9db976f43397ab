package cmd

import (
	"fmt"
	"log"
	"strings"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change cursor settings",
	Example: `  sparkle set --color "#1e90ff" --shape heart
  sparkle set --trail none`,
	Run: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	log.SetFlags(0)

	f := setCmd.Flags()
	f.UintP("port", "p", cfg.Net.Port, "Port of the running overlay")
	f.String("color", "", "Cursor colour as #rrggbb")
	f.String("shape", "", "Cursor shape: arrow, heart, sparkle or pointer")
	f.Float64("size", 0, "Cursor size in pixels")
	f.String("trail", "", "Trail: sparkles, hearts, rainbow or none")
	f.Float64("intensity", 0, "Trail intensity from 0 to 10")
	f.Bool("enabled", true, "Draw the cursor at all")
}

func runSet(cmd *cobra.Command, args []string) {
	p, err := patchFromFlags(cmd.Flags())
	if err != nil {
		log.Fatal(err)
	}
	if p.Empty() {
		log.Fatal("Nothing to change; see sparkle set --help")
	}

	st, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open settings: %v", err)
	}
	s := settings.Merge(st.Load(), p)

	port, _ := cmd.Flags().GetUint("port")
	if err := saveAndNotify(st, port, s, messages.NewSettingsUpdate(s)); err != nil {
		log.Fatalf("Failed to save settings: %v", err)
	}
	fmt.Println(describe(s))
}

// patchFromFlags turns the flags the user actually passed into a patch.
func patchFromFlags(f *pflag.FlagSet) (settings.Patch, error) {
	var p settings.Patch

	if f.Changed("color") {
		v, _ := f.GetString("color")
		if _, ok := settings.NormalizeColor(v); !ok {
			return p, fmt.Errorf("invalid colour %q", v)
		}
		p.Color = &v
	}
	if f.Changed("shape") {
		v, _ := f.GetString("shape")
		shape := settings.CursorShape(strings.ToLower(v))
		if !shape.Known() {
			return p, fmt.Errorf("unknown shape %q", v)
		}
		p.Shape = &shape
	}
	if f.Changed("size") {
		v, _ := f.GetFloat64("size")
		p.CursorSize = &v
	}
	if f.Changed("trail") {
		v, _ := f.GetString("trail")
		trail, err := parseTrail(v)
		if err != nil {
			return p, err
		}
		p.Trail = &trail
	}
	if f.Changed("intensity") {
		v, _ := f.GetFloat64("intensity")
		p.Intensity = &v
	}
	if f.Changed("enabled") {
		v, _ := f.GetBool("enabled")
		p.Enabled = &v
	}
	return p, nil
}

func parseTrail(v string) (settings.TrailType, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "none" || v == "" {
		return settings.TrailNone, nil
	}
	t := settings.TrailType(v)
	if !t.Active() {
		return settings.TrailNone, fmt.Errorf("unknown trail %q", v)
	}
	return t, nil
}

func describe(s settings.Settings) string {
	state := "off"
	if s.Enabled {
		state = "on"
	}
	trail := string(s.Trail)
	if !s.Trail.Active() {
		trail = "none"
	}
	return fmt.Sprintf("enabled=%s color=%s shape=%s size=%g trail=%s intensity=%g",
		state, s.Color, s.Shape, s.CursorSize, trail, s.Intensity)
}
