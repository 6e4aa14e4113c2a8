package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"place-distance/internal/models"
)

const (
	// PlacesSheet is the sheet name looked up first when reading a
	// workbook; if absent the first sheet is used instead.
	PlacesSheet = "Places"

	distancesSheet = "Distances"
	summarySheet   = "Summary"
)

// ReadPlaces loads places from an xlsx workbook. The layout matches the CSV
// one: a header row, then name, latitude, longitude columns.
func ReadPlaces(path string) ([]models.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open places workbook: %w", err)
	}
	defer f.Close()

	sheet := PlacesSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	points, err := pointsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// WriteDistances writes the sorted distance records and the summary to an
// xlsx workbook: one streamed sheet of records plus a small summary sheet.
func WriteDistances(path string, records []models.DistanceRecord, summary models.Summary) error {
	f := excelize.NewFile()

	index, err := f.NewSheet(distancesSheet)
	if err != nil {
		return err
	}

	// Stream writer keeps memory flat for large pair counts.
	sw, err := f.NewStreamWriter(distancesSheet)
	if err != nil {
		return err
	}

	headers := []interface{}{"Place A", "Place B", "Distance (km)"}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, r := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.PlaceA, r.PlaceB, r.Distance}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	sums := [][]interface{}{
		{"Average distance (km)", "Closest pair A", "Closest pair B", "Distance (km)"},
		{summary.AverageDistance, summary.Closest.PlaceA, summary.Closest.PlaceB, summary.Closest.Distance},
	}
	for i, row := range sums {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}
