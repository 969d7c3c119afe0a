package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeatherRecord_Season(t *testing.T) {
	testCases := []struct {
		month time.Month
		want  string
	}{
		{time.January, "winter"},
		{time.February, "winter"},
		{time.March, "spring"},
		{time.May, "spring"},
		{time.June, "summer"},
		{time.August, "summer"},
		{time.September, "autumn"},
		{time.November, "autumn"},
		{time.December, "winter"},
	}

	for _, tc := range testCases {
		t.Run(tc.month.String(), func(t *testing.T) {
			r := WeatherRecord{Date: time.Date(2024, tc.month, 15, 0, 0, 0, 0, time.UTC)}
			assert.Equal(t, tc.want, r.Season())
		})
	}
}

func TestWeatherRecord_Keys(t *testing.T) {
	r := WeatherRecord{Date: time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-07-03", r.DayKey())
	assert.Equal(t, "2024-07", r.MonthKey())
}

func TestBook_Validate(t *testing.T) {
	b := NewBook("978-0134190440", "The Go Programming Language", "Donovan")
	assert.NoError(t, b.Validate())

	missing := NewBook("", "Title", "Author")
	assert.Error(t, missing.Validate())
}

func TestStudentRecord_Validate(t *testing.T) {
	ok := StudentRecord{Name: "Aarav", Marks: 75}
	assert.NoError(t, ok.Validate())

	outOfRange := StudentRecord{Name: "Aarav", Marks: 150}
	assert.Error(t, outOfRange.Validate())

	negative := StudentRecord{Name: "Aarav", Marks: -1}
	assert.Error(t, negative.Validate())
}
