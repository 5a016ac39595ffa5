package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mirkit/miditect/config"
	"github.com/mirkit/miditect/export"
	"github.com/mirkit/miditect/store"
	"github.com/mirkit/miditect/util"
	"github.com/spf13/cobra"
)

var batchUpload bool

func init() {
	batchCmd.Flags().BoolVar(&batchUpload, "upload", false, "also upload documents to the configured S3 bucket")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [maxNum]",
	Short: "Analyzes all midi files under the media dir",
	Long:  `Analyzes all midi files under the media dir, one JSON document per input`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		runBatch(maxNum)
	},
}

func runBatch(maxNum int) {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.OutDir, 0777); err != nil {
		panic("Could not create out dir: " + err.Error())
	}

	var uploader *store.Uploader
	if batchUpload {
		if cfg.S3Bucket == "" {
			panic("MIDITECT_S3BUCKET is not set!")
		}
		runID := uuid.NewString()
		fmt.Printf("Uploading documents under run %v\n", runID)
		uploader = store.NewUploader(cfg.S3Bucket, runID)
	}

	paths := util.GatherAllMidiPaths(cfg.MediaDir, maxNum)
	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))

		doc, err := AnalyzeFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}

		data, err := export.EncodeJSON(doc)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}

		name := docName(path)
		outPath := filepath.Join(cfg.OutDir, name+".json")
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			panic("Could not write document: " + err.Error())
		}

		if uploader != nil {
			if err := uploader.PutDocument(name, data); err != nil {
				fmt.Printf("Upload failed for %v because: %v\n", path, err)
			}
		}
	}
}

func docName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".midi"), ".mid")
}
