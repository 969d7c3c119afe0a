package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MeterReading is a single kWh reading for one building. Building comes
// from the source file name, never from the CSV itself.
type MeterReading struct {
	Building  string    `json:"building" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	KWh       float64   `json:"kwh" validate:"gte=0"`
}

func (r *MeterReading) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
