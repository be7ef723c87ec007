package internal

import (
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transitdb/config"
)

// InitLogging routes the standard logger to the configured stream with the configured prefix.
func InitLogging(cfg config.LoggingConfig) {
	if cfg.Output == config.LogStdout {
		log.SetOutput(os.Stdout)
	} else {
		log.SetOutput(os.Stderr)
	}
	flags := log.LstdFlags
	if cfg.Microseconds {
		flags |= log.Lmicroseconds
	}
	log.SetFlags(flags)
	log.SetPrefix(cfg.Prefix)
}
