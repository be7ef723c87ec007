package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	lib "github.com/theoremus-urban-solutions/transitdb"
	"github.com/theoremus-urban-solutions/transitdb/config"
	"github.com/theoremus-urban-solutions/transitdb/internal"
)

func main() {
	configPath := flag.String("config", "", "config file (default: config.yml, ./config/config.yml)")
	in := flag.String("in", "-", "batch file path, http(s) URL or - for stdin")
	input := flag.String("input", "", "input format json|yaml|text (overrides config)")
	output := flag.String("output", "", "output format json|yaml|proto|text (overrides config)")
	indent := flag.Bool("indent", false, "indent JSON output")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP timeout for -in URLs")
	flag.Parse()

	if *configPath != "" {
		if err := os.Setenv(config.EnvConfigPath, *configPath); err != nil {
			log.Fatalf("failed to set config path: %v", err)
		}
	}
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Config
	if *input != "" {
		cfg.Input.Format = *input
	}
	if *output != "" {
		cfg.Output.Format = *output
	}
	if *indent {
		cfg.Output.Indent = true
	}
	internal.InitLogging(cfg.Logging)

	data, err := newFetcher(*timeout).fetch(context.Background(), *in)
	if err != nil {
		log.Fatalf("failed to read batch: %v", err)
	}

	out, err := lib.NewEngine(cfg).RunBytes(data)
	if err != nil {
		log.Fatalf("batch failed: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("failed to write answers: %v", err)
	}
}
