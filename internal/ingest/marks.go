package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// LoadMarksCSV reads a headerless name,marks file. Rows that fail
// parsing or validation are skipped and logged, never abort the load.
// Returns the records plus the number of skipped rows.
func LoadMarksCSV(path string) ([]models.StudentRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open marks file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []models.StudentRecord
	var skipped int
	line := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logger.Debug.Printf("Skipping row %d in %s: %v", line, path, err)
			skipped++
			continue
		}

		if len(row) != 2 {
			logger.Debug.Printf("Skipping row %d in %s: want 2 columns, got %d", line, path, len(row))
			skipped++
			continue
		}

		marks, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			logger.Debug.Printf("Skipping row %d in %s: non-numeric marks %q", line, path, row[1])
			skipped++
			continue
		}

		rec := models.StudentRecord{
			Name:  strings.TrimSpace(row[0]),
			Marks: marks,
		}
		if err := rec.Validate(); err != nil {
			logger.Debug.Printf("Skipping row %d in %s: %v", line, path, err)
			skipped++
			continue
		}

		records = append(records, rec)
	}

	if skipped > 0 {
		logger.Info.Printf("Loaded %d records from %s, skipped %d malformed rows", len(records), path, skipped)
	} else {
		logger.Info.Printf("Loaded %d records from %s", len(records), path)
	}

	return records, skipped, nil
}
