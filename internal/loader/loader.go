// Package loader reads point sets from external files and writes result
// workbooks. It is the validating boundary in front of the computation
// pipeline: files with unparsable or out-of-range coordinates, or duplicate
// place names, are rejected here.
package loader

import (
	"fmt"
	"strconv"
	"strings"

	"place-distance/internal/models"
)

func parseCoord(val string) (float64, error) {
	// Tolerate comma decimal separators from locale-formatted exports.
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseFloat(val, 64)
}

// pointsFromRows converts raw sheet rows into points. Row 0 is a header.
func pointsFromRows(rows [][]string) ([]models.Point, error) {
	var points []models.Point
	seen := make(map[string]struct{})

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected name, latitude, longitude", i+1)
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, fmt.Errorf("row %d: empty place name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("row %d: duplicate place name %q", i+1, name)
		}

		lat, err := parseCoord(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad latitude %q", i+1, row[1])
		}
		lon, err := parseCoord(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad longitude %q", i+1, row[2])
		}
		if lat < -90 || lat > 90 {
			return nil, fmt.Errorf("row %d: latitude %v outside [-90, 90]", i+1, lat)
		}
		if lon < -180 || lon > 180 {
			return nil, fmt.Errorf("row %d: longitude %v outside [-180, 180]", i+1, lon)
		}

		seen[name] = struct{}{}
		points = append(points, models.Point{Name: name, Lat: lat, Lon: lon})
	}

	return points, nil
}
