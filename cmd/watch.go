package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/mirkit/miditect/config"
	"github.com/mirkit/miditect/export"
	"github.com/mirkit/miditect/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watches a directory and re-analyzes changed midi files",
	Long:  `Watches a directory and re-analyzes changed midi files, debounced`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch(args[0])
	},
}

type fileStamp struct {
	modTime time.Time
	size    int64
}

func watch(dir string) {
	cfg := config.Load()
	if err := os.MkdirAll(cfg.OutDir, 0777); err != nil {
		panic("Could not create out dir: " + err.Error())
	}

	debounced := debounce.New(500 * time.Millisecond)
	seen := make(map[string]fileStamp)

	// the debounced func fires on a timer goroutine
	var mu sync.Mutex
	var dirty []string

	flush := func() {
		mu.Lock()
		batch := dirty
		dirty = nil
		mu.Unlock()
		for _, p := range batch {
			reanalyze(cfg, p)
		}
	}

	fmt.Printf("Watching %v\n", dir)
	for {
		for _, path := range util.GatherAllMidiPaths(dir, 0) {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			stamp := fileStamp{modTime: info.ModTime(), size: info.Size()}
			if prev, ok := seen[path]; ok && prev == stamp {
				continue
			}
			seen[path] = stamp
			mu.Lock()
			dirty = append(dirty, path)
			mu.Unlock()
			debounced(flush)
		}
		time.Sleep(time.Second)
	}
}

func reanalyze(cfg config.Config, path string) {
	doc, err := AnalyzeFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}
	data, err := export.EncodeJSON(doc)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}
	outPath := filepath.Join(cfg.OutDir, docName(path)+".json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Printf("Write failed for %v because: %v\n", outPath, err)
		return
	}
	fmt.Printf("Re-analyzed %v -> %v\n", path, outPath)
}
