// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml (or the file named by TRANSITDB_CONFIG)
// and validated using struct tags. A .env file in the working directory is read
// first, so TRANSITDB_INPUT_FORMAT and TRANSITDB_OUTPUT_FORMAT can override the
// file without touching it.
package config
