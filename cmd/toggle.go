package cmd

import (
	"fmt"
	"log"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:       "toggle [on|off]",
	Short:     "Turn the sparkle cursor on or off",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	Run:       runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().UintP("port", "p", cfg.Net.Port, "Port of the running overlay")
}

func runToggle(cmd *cobra.Command, args []string) {
	enabled := args[0] == "on"

	st, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open settings: %v", err)
	}
	s := st.Load()
	s.Enabled = enabled

	port, _ := cmd.Flags().GetUint("port")
	if err := saveAndNotify(st, port, s, messages.Toggle{Enabled: enabled}); err != nil {
		log.Fatalf("Failed to save settings: %v", err)
	}
	fmt.Println("sparkle cursor", args[0])
}
