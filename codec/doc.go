// Package codec decodes batch documents into requests.Batch.
//
// Three encodings are supported:
//   - json.go: the {"base_requests": [...], "stat_requests": [...]} document
//   - yaml.go: the same document as YAML
//   - text.go: the line-oriented grammar (count line, mutation lines, count line, query lines)
//
// Every decoder yields the same Record shape, so a batch produces identical
// answers whichever encoding carried it.
package codec
