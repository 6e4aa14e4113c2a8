package models

// Point is a named position on the sphere's surface. Latitude is in
// [-90, 90] and longitude in [-180, 180], both decimal degrees.
type Point struct {
	Name string
	Lat  float64
	Lon  float64
}

// DistanceRecord holds the great-circle distance in kilometres between one
// unordered pair of distinct points.
type DistanceRecord struct {
	PlaceA   string
	PlaceB   string
	Distance float64
}

// Summary is the reduction over a full set of distance records: the mean
// distance and the record closest to it.
type Summary struct {
	AverageDistance float64
	Closest         DistanceRecord
}
