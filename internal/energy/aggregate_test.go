package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

func reading(building string, ts string, kwh float64) models.MeterReading {
	t, err := time.Parse("2006-01-02 15:04", ts)
	if err != nil {
		panic(err)
	}
	return models.MeterReading{Building: building, Timestamp: t, KWh: kwh}
}

func testReadings() []models.MeterReading {
	return []models.MeterReading{
		reading("library", "2024-03-04 10:00", 10),
		reading("library", "2024-03-04 11:00", 5),
		reading("library", "2024-03-05 10:00", 20),
		reading("gym", "2024-03-04 10:00", 2),
		reading("gym", "2024-03-05 10:00", 3),
	}
}

func TestBuildings(t *testing.T) {
	assert.Equal(t, []string{"gym", "library"}, Buildings(testReadings()))
}

func TestSummaries(t *testing.T) {
	summaries := Summaries(testReadings())
	require.Len(t, summaries, 2)

	// natural building order
	assert.Equal(t, "gym", summaries[0].Building)
	assert.Equal(t, "library", summaries[1].Building)

	lib := summaries[1]
	assert.InDelta(t, 35.0/3, lib.Mean, 1e-9)
	assert.Equal(t, 5.0, lib.Min)
	assert.Equal(t, 20.0, lib.Max)
	assert.Equal(t, 35.0, lib.Total)
}

func TestDailySeries(t *testing.T) {
	daily := DailySeries(testReadings())

	lib := daily["library"]
	require.Len(t, lib, 2)
	assert.Equal(t, 15.0, lib[0].KWh)
	assert.Equal(t, 20.0, lib[1].KWh)
	assert.True(t, lib[0].T.Before(lib[1].T))
}

func TestCampusDaily(t *testing.T) {
	campus := CampusDaily(testReadings())
	require.Len(t, campus, 2)
	assert.Equal(t, 17.0, campus[0].KWh)
	assert.Equal(t, 23.0, campus[1].KWh)
}

func TestWeekEnding(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"monday rolls to sunday", "2024-03-04 10:00", "2024-03-10"},
		{"sunday stays", "2024-03-10 23:00", "2024-03-10"},
		{"saturday rolls one day", "2024-03-09 00:00", "2024-03-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := time.Parse("2006-01-02 15:04", tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, weekEnding(in).Format("2006-01-02"))
		})
	}
}

func TestPeak(t *testing.T) {
	campus := CampusDaily(testReadings())
	peak, ok := Peak(campus)
	require.True(t, ok)
	assert.Equal(t, 23.0, peak.KWh)
	assert.Equal(t, "2024-03-05", peak.T.Format("2006-01-02"))

	_, ok = Peak(nil)
	assert.False(t, ok)
}

func TestAverageWeekly(t *testing.T) {
	// all test readings fall in the same week, so the average equals the total
	avg := AverageWeekly(testReadings())
	assert.InDelta(t, 35, avg["library"], 1e-9)
	assert.InDelta(t, 5, avg["gym"], 1e-9)
}
