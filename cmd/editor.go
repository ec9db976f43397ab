package cmd

import (
	"fmt"
	"log"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/scenes"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Open the settings editor with a live preview",
	Run:   runEditor,
}

func init() {
	rootCmd.AddCommand(editorCmd)
	editorCmd.Flags().BoolVar(&cfg.Debug.ShowStats, "debug", false, "Show particle count and driver state")
	editorCmd.Flags().UintP("port", "p", cfg.Net.Port, "Port of the running overlay")
}

func runEditor(cmd *cobra.Command, args []string) {
	port, _ := cmd.Flags().GetUint("port")

	st, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open settings: %v", err)
	}

	sender := network.NewSender()
	defer sender.Close()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.AppName)

	scene := scenes.NewEditorScene(st, sender, overlayAddress(port))
	if err := ebiten.RunGame(scenes.NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

func overlayAddress(port uint) string {
	return fmt.Sprintf("localhost:%d", port)
}
