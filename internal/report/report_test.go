package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"place-distance/internal/models"
)

func TestPrint(t *testing.T) {
	records := []models.DistanceRecord{
		{PlaceA: "Oslo", PlaceB: "London", Distance: 1154.6},
		{PlaceA: "Oslo", PlaceB: "Vardo", Distance: 1422.1},
	}
	summary := models.Summary{
		AverageDistance: 1288.4,
		Closest:         records[0],
	}

	var buf bytes.Buffer
	Print(&buf, records, summary)
	out := buf.String()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7) // blank, 2 records, blank, summary, blank, trailing

	assert.Equal(t, "", lines[0])
	assert.Equal(t, "Oslo                     London                       1154.6 km", lines[1])
	assert.Equal(t, "Oslo                     Vardo                        1422.1 km", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "Average distance: 1288.4 km. Closest pair: Oslo – London 1154.6 km.", lines[4])
}

func TestPrint_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil, models.Summary{})
	assert.Contains(t, buf.String(), "Average distance: 0.0 km")
}
