package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sparkle",
	Short: "A sparkly cursor with a particle trail",
	Long: `sparkle draws a custom cursor and an animated particle trail over the
desktop. Run "sparkle overlay" to start drawing and "sparkle editor" to
change how it looks.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
