package cmd

import (
	"fmt"

	"github.com/mirkit/miditect/midi"
	"github.com/mirkit/miditect/render"
	"github.com/spf13/cobra"
)

var renderOut string

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output PNG path (default: input path with .png)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file.mid>",
	Short: "Renders a piano-roll PNG",
	Long:  `Renders a piano-roll PNG of the extracted notes`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := renderOut
		if out == "" {
			out = docName(path) + ".png"
		}

		md, err := midi.ExtractFile(path)
		if err != nil {
			return err
		}
		if err := render.SavePianoRoll(md, out); err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", out)
		return nil
	},
}
