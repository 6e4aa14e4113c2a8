package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"place-distance/internal/models"
)

// ReadCSV loads places from a CSV file with a header row followed by
// name, latitude, longitude columns.
func ReadCSV(path string) ([]models.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open places file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	points, err := pointsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}
