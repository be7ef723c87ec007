package transit

var (
	tolstopaltsevo = Coordinates{Latitude: 55.611087, Longitude: 37.20829}
	marushkino     = Coordinates{Latitude: 55.595884, Longitude: 37.209755}
	rasskazovka    = Coordinates{Latitude: 55.632761, Longitude: 37.333324}
)

func coords(c Coordinates) *Coordinates { return &c }

func stopAt(name string, c Coordinates, distances map[string]int) Stop {
	return Stop{Name: name, Coordinates: coords(c), Distances: distances}
}
