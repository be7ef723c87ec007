package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/theoremus-urban-solutions/transitdb/config"
	"github.com/theoremus-urban-solutions/transitdb/requests"
	"github.com/theoremus-urban-solutions/transitdb/utils"
)

// ResponseBuilder serializes answers in the configured output format.
type ResponseBuilder struct {
	indent bool
	digits int
}

// NewResponseBuilder creates a builder for the given output settings
func NewResponseBuilder(out config.OutputConfig, stats config.StatsConfig) *ResponseBuilder {
	return &ResponseBuilder{indent: out.Indent, digits: stats.Digits()}
}

// Build serializes answers in the named format.
func (rb *ResponseBuilder) Build(format string, answers []requests.Answer) ([]byte, error) {
	switch format {
	case config.FormatJSON, "":
		return rb.BuildJSON(answers)
	case config.FormatYAML:
		return rb.BuildYAML(answers)
	case config.FormatProto:
		return rb.BuildProto(answers)
	case config.FormatText:
		return rb.BuildText(answers), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// BuildJSON serializes answers to a JSON array
func (rb *ResponseBuilder) BuildJSON(answers []requests.Answer) ([]byte, error) {
	recs := WrapAnswers(answers)
	if rb.indent {
		return json.MarshalIndent(recs, "", "  ")
	}
	return json.Marshal(recs)
}

func (rb *ResponseBuilder) curvature(v float64) string {
	return utils.FormatFixed(v, rb.digits)
}
