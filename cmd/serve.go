package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mirkit/miditect/analysis"
	"github.com/mirkit/miditect/config"
	"github.com/mirkit/miditect/export"
	"github.com/mirkit/miditect/logger"
	"github.com/mirkit/miditect/midi"
	"github.com/mirkit/miditect/timbre"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over HTTP",
	Long:  `Serves the analyzer over HTTP: POST a midi file body to /analyze`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type errorResponse struct {
	Error string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func handleAnalyze(log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read request body")
			return
		}

		s, err := midi.ReadMidiBytes(body, "upload")
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		md, err := midi.Extract(s, "upload")
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		ma := analysis.Analyze(md)
		tm := timbre.MapTracks(md, nil)
		doc := export.BuildDocument(md, ma, tm)

		log.Infow("analyzed upload",
			"bytes", len(body),
			"tracks", len(md.Tracks),
			"notes", md.NumNotes(),
			"key", ma.Key,
		)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func serve() {
	cfg := config.Load()
	log := logger.New()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", handleAnalyze(log)).Methods("POST")
	router.HandleFunc("/health", handleHealth).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Infow("listening", "addr", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
