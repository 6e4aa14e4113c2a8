// Package report renders pipeline results for the console.
package report

import (
	"fmt"
	"io"

	"place-distance/internal/models"
)

// Print writes every record on its own fixed-width line, shortest pair
// first, followed by the average distance and the pair closest to it.
func Print(w io.Writer, records []models.DistanceRecord, summary models.Summary) {
	fmt.Fprintln(w)
	for _, r := range records {
		fmt.Fprintf(w, "%-25s%-25s%10.1f km\n", r.PlaceA, r.PlaceB, r.Distance)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Average distance: %.1f km. Closest pair: %s – %s %.1f km.\n\n",
		summary.AverageDistance, summary.Closest.PlaceA, summary.Closest.PlaceB, summary.Closest.Distance)
}
