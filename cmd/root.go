package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "miditect",
	Short: "Symbolic music analyzer",
	Long:  `Analyzes midi files: note extraction, key detection, chord progression, rhythm and structure.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
