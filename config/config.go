package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Config is populated from MIDITECT_* environment variables.
type Config struct {
	MediaDir string `default:"./media"`
	OutDir   string `default:"./out"`
	S3Bucket string
	Addr     string `default:":8080"`
}

// Load reads the environment or dies; configuration problems are not
// recoverable at runtime.
func Load() Config {
	var cfg Config
	err := envconfig.Process("miditect", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}
