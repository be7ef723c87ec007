package requests

// Record is one decoded entry of base_requests or stat_requests. Codecs fill it;
// ParseMutation and ParseQuery turn it into a Request.
type Record struct {
	Type          string         `json:"type" yaml:"type" validate:"required,oneof=Stop Bus"`
	Name          string         `json:"name" yaml:"name" validate:"required"`
	Latitude      *float64       `json:"latitude,omitempty" yaml:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64       `json:"longitude,omitempty" yaml:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances,omitempty" yaml:"road_distances,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
	Stops         []string       `json:"stops,omitempty" yaml:"stops,omitempty" validate:"omitempty,dive,required"`
	IsRoundtrip   bool           `json:"is_roundtrip,omitempty" yaml:"is_roundtrip,omitempty"`
	ID            *int64         `json:"id,omitempty" yaml:"id,omitempty"`
}

// Record types
const (
	TypeStop = "Stop"
	TypeBus  = "Bus"
)

// Batch is a decoded input document: mutations first, queries second.
type Batch struct {
	BaseRequests []Record `json:"base_requests" yaml:"base_requests"`
	StatRequests []Record `json:"stat_requests" yaml:"stat_requests"`
}
