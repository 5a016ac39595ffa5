package cmd

import (
	"fmt"
	"os"

	"github.com/mirkit/miditect/analysis"
	"github.com/mirkit/miditect/export"
	"github.com/mirkit/miditect/midi"
	"github.com/mirkit/miditect/model"
	"github.com/mirkit/miditect/timbre"
	"github.com/spf13/cobra"
)

var analyzeOut string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the document here instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Analyzes one midi file",
	Long:  `Analyzes one midi file and prints the JSON document`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(args[0], analyzeOut)
	},
}

// AnalyzeFile runs the whole pipeline for one path. It is the single
// entry point the batch, serve and watch commands share.
func AnalyzeFile(path string) (model.Document, error) {
	md, err := midi.ExtractFile(path)
	if err != nil {
		return model.Document{}, err
	}
	ma := analysis.Analyze(md)
	tm := timbre.MapTracks(md, nil)
	return export.BuildDocument(md, ma, tm), nil
}

func analyze(path, outPath string) error {
	doc, err := AnalyzeFile(path)
	if err != nil {
		return err
	}
	data, err := export.EncodeJSON(doc)
	if err != nil {
		return err
	}
	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outPath, data, 0644)
}
