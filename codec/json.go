package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// DecodeJSON decodes a batch document. Unknown top-level keys are ignored.
//
// Example:
//
//	f, _ := os.Open("batch.json")
//	defer f.Close()
//	batch, err := codec.DecodeJSON(f)
//	if err != nil {
//	    // malformed document
//	}
//	reqs, err := requests.ParseBatch(batch)
func DecodeJSON(r io.Reader) (requests.Batch, error) {
	var b requests.Batch
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return requests.Batch{}, fmt.Errorf("failed to decode JSON batch: %w", err)
	}
	return b, nil
}

// DecodeJSONBytes is DecodeJSON over an in-memory document.
func DecodeJSONBytes(data []byte) (requests.Batch, error) {
	return DecodeJSON(bytes.NewReader(data))
}
