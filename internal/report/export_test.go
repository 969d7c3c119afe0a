package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCleanedReadings_SortedAndOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")
	ts := func(s string) time.Time {
		parsed, err := time.Parse("2006-01-02 15:04", s)
		require.NoError(t, err)
		return parsed
	}

	readings := []models.MeterReading{
		{Building: "library", Timestamp: ts("2024-03-05 10:00"), KWh: 20},
		{Building: "gym", Timestamp: ts("2024-03-04 10:00"), KWh: 2},
		{Building: "library", Timestamp: ts("2024-03-04 10:00"), KWh: 10},
	}
	require.NoError(t, WriteCleanedReadings(path, readings, "2006-01-02 15:04:05"))

	rows := readCSV(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"building", "timestamp", "kwh"}, rows[0])
	// sorted by timestamp, then building
	assert.Equal(t, "gym", rows[1][0])
	assert.Equal(t, "library", rows[2][0])
	assert.Equal(t, "library", rows[3][0])

	// a second run rewrites the file, never appends
	require.NoError(t, WriteCleanedReadings(path, readings[:1], "2006-01-02 15:04:05"))
	assert.Len(t, readCSV(t, path), 2)
}

func TestWriteCleanedWeather(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	records := []models.WeatherRecord{
		{Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), Temperature: 30, Humidity: 50, Rainfall: 0},
		{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Temperature: 31, Humidity: 55, Rainfall: 12.5},
	}

	require.NoError(t, WriteCleanedWeather(path, records))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-07-01", rows[1][0])
	assert.Equal(t, "2024-07-02", rows[2][0])
}
