package formatter

import (
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// BuildYAML serializes answers to a YAML sequence
func (rb *ResponseBuilder) BuildYAML(answers []requests.Answer) ([]byte, error) {
	return yaml.Marshal(WrapAnswers(answers))
}
