package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// DecodeYAML decodes the batch document written as YAML:
//
//	base_requests:
//	  - type: Stop
//	    name: Tolstopaltsevo
//	    latitude: 55.611087
//	    longitude: 37.20829
//	    road_distances: {Marushkino: 3900}
//	stat_requests:
//	  - {type: Bus, name: "256", id: 1}
func DecodeYAML(r io.Reader) (requests.Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return requests.Batch{}, err
	}
	var b requests.Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return requests.Batch{}, fmt.Errorf("failed to decode YAML batch: %w", err)
	}
	return b, nil
}
