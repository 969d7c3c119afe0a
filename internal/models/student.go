package models

import (
	"github.com/go-playground/validator/v10"
)

// StudentRecord is one row of a gradebook: a name and an integer mark.
// Duplicate names are allowed, identity is positional.
type StudentRecord struct {
	Name  string `json:"name" validate:"required"`
	Marks int    `json:"marks" validate:"gte=0,lte=100"`
}

func (r *StudentRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
