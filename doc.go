// Package transitdb is an in-memory transit network store.
//
// A batch of stop and bus definitions is ingested, then stop and route
// queries are answered against the final state:
//
//	cfg := config.Default()
//	eng := transitdb.NewEngine(cfg)
//	out, err := eng.Run(os.Stdin)
//
// The subpackages hold the pieces: transit (registries, distances, route
// statistics), requests (request model and two-phase dispatcher), codec (JSON,
// YAML and text batch decoding) and formatter (answer encoding).
package transitdb
