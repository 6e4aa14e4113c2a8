package calculator

import (
	"errors"
	"math"

	"place-distance/internal/models"
)

// ErrNoRecords means Summarize was handed an empty record set, i.e. a point
// set smaller than two made it past the boundary checks.
var ErrNoRecords = errors.New("calculator: no distance records to summarize")

// Summarize computes the arithmetic mean of all distances and picks the
// record whose distance lies closest to that mean. The input is expected
// sorted ascending by distance, so when two records deviate equally the
// shorter pair wins.
func Summarize(records []models.DistanceRecord) (models.Summary, error) {
	if len(records) == 0 {
		return models.Summary{}, ErrNoRecords
	}

	var sum float64
	for _, r := range records {
		sum += r.Distance
	}
	mean := sum / float64(len(records))

	closest := records[0]
	best := math.Abs(closest.Distance - mean)
	for _, r := range records[1:] {
		if d := math.Abs(r.Distance - mean); d < best {
			best = d
			closest = r
		}
	}

	return models.Summary{AverageDistance: mean, Closest: closest}, nil
}
