// Package formatter provides answer wrapping and serialization.
//
// This package is organized into:
// - wrapper.go: answers to wire records (request_id, buses, route stats, error_message)
// - json.go: JSON serialization
// - yaml.go: YAML serialization
// - proto.go: protobuf serialization as a google.protobuf.ListValue of Structs
// - text.go: one human-readable line per answer
package formatter
