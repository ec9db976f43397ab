package cmd

import (
	"fmt"
	"log"

	"github.com/automoto/sparkle-cursor/snapshot"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the preview with the saved settings to an image",
	Run:   runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	f := snapshotCmd.Flags()
	f.StringP("out", "o", "sparkle.png", "Output file; the extension picks the format")
	f.IntP("frames", "n", 90, "Frames to simulate before capturing")
	f.Uint64("seed", 1, "Seed for particle randomness")
	f.Bool("caption", true, "Write the settings under the preview")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")
	frames, _ := cmd.Flags().GetInt("frames")
	seed, _ := cmd.Flags().GetUint64("seed")
	caption, _ := cmd.Flags().GetBool("caption")

	st, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open settings: %v", err)
	}

	img, err := snapshot.Render(snapshot.Options{
		Settings: st.Load(),
		Frames:   frames,
		Seed:     seed,
		Caption:  caption,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := snapshot.Save(img, out); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote", out)
}
