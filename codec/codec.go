package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transitdb/config"
	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// ErrUnknownFormat is returned by Decode for formats it has no decoder for.
var ErrUnknownFormat = errors.New("unknown input format")

// Decode reads one batch from r in the given format (json, yaml or text).
func Decode(format string, r io.Reader) (requests.Batch, error) {
	switch format {
	case config.FormatJSON, "":
		return DecodeJSON(r)
	case config.FormatYAML:
		return DecodeYAML(r)
	case config.FormatText:
		return DecodeText(r)
	default:
		return requests.Batch{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
