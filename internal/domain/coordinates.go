package domain

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// A named place an itinerary visits.
// Coordinates are taken from the activities scheduled there.
type Location struct {
	Name        string
	Coordinates Coordinates
}
