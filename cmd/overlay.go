package cmd

import (
	"log"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/scenes"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Draw the cursor and trail over the desktop",
	Run:   runOverlay,
}

func init() {
	rootCmd.AddCommand(overlayCmd)
	overlayCmd.Flags().BoolVar(&cfg.Debug.ShowStats, "debug", false, "Show particle count and driver state")
	overlayCmd.Flags().UintP("port", "p", cfg.Net.Port, "Port the editor sends settings to")
}

func runOverlay(cmd *cobra.Command, args []string) {
	port, _ := cmd.Flags().GetUint("port")

	st, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open settings: %v", err)
	}

	listener := network.NewListener(cfg.Net.QueueSize)
	go func() {
		if err := listener.Start(port); err != nil {
			log.Printf("[overlay] Warning: Settings channel closed: %v", err)
		}
	}()

	ebiten.SetWindowTitle(cfg.AppName)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
		SkipTaskbar:       true,
	}
	if err := ebiten.RunGameWithOptions(scenes.NewGame(scenes.NewOverlayScene(st, listener)), opts); err != nil {
		log.Fatal(err)
	}
}
