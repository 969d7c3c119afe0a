package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// WeatherRecord is one cleaned observation. Rows with missing fields
// never make it past ingest, so all values here are set.
type WeatherRecord struct {
	Date        time.Time `json:"date" validate:"required"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity" validate:"gte=0,lte=100"`
	Rainfall    float64   `json:"rainfall" validate:"gte=0"`
}

func (r *WeatherRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DayKey groups by calendar day.
func (r WeatherRecord) DayKey() string {
	return r.Date.Format("2006-01-02")
}

// MonthKey groups by calendar month.
func (r WeatherRecord) MonthKey() string {
	return r.Date.Format("2006-01")
}

// Season maps the record's calendar month to a meteorological season:
// Dec-Feb winter, Mar-May spring, Jun-Aug summer, Sep-Nov autumn.
func (r WeatherRecord) Season() string {
	switch r.Date.Month() {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}
