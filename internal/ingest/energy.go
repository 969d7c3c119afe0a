package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// Timestamp layouts accepted in meter CSVs, tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// LoadReadingsDir reads every *.csv in dir, in sorted name order. The
// building name is the file stem. A file that cannot be read or has the
// wrong header is reported and skipped, the rest still load.
func LoadReadingsDir(dir string) ([]models.MeterReading, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		logger.Info.Printf("No CSV files found in %s", dir)
		return nil, nil
	}

	var readings []models.MeterReading
	for _, name := range names {
		path := filepath.Join(dir, name)
		building := strings.TrimSuffix(name, ".csv")

		fileReadings, skipped, err := LoadReadingsCSV(path, building)
		if err != nil {
			logger.Error.Printf("Failed to load %s: %v", path, err)
			continue
		}
		if skipped > 0 {
			logger.Info.Printf("Loaded %d readings for %s, skipped %d malformed rows", len(fileReadings), building, skipped)
		} else {
			logger.Info.Printf("Loaded %d readings for %s", len(fileReadings), building)
		}
		readings = append(readings, fileReadings...)
	}

	return readings, nil
}

// LoadReadingsCSV reads one building file. The header row must name the
// timestamp and kwh columns (case-insensitive). Rows with unparseable
// timestamps or non-numeric/negative kwh are dropped, not corrected.
func LoadReadingsCSV(path, building string) ([]models.MeterReading, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open readings file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		// empty file: empty result, not an error
		return nil, 0, nil
	}

	tsCol, kwhCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "timestamp":
			tsCol = i
		case "kwh":
			kwhCol = i
		}
	}
	if tsCol == -1 || kwhCol == -1 {
		return nil, 0, fmt.Errorf("missing required columns (timestamp, kwh) in %s", path)
	}

	var readings []models.MeterReading
	var skipped int
	line := 1

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

		if len(row) <= tsCol || len(row) <= kwhCol {
			logger.Debug.Printf("Skipping row %d in %s: too few columns", line, path)
			skipped++
			continue
		}

		ts, err := parseTimestamp(row[tsCol])
		if err != nil {
			logger.Debug.Printf("Skipping row %d in %s: %v", line, path, err)
			skipped++
			continue
		}

		kwh, err := strconv.ParseFloat(strings.TrimSpace(row[kwhCol]), 64)
		if err != nil {
			logger.Debug.Printf("Skipping row %d in %s: non-numeric kwh %q", line, path, row[kwhCol])
			skipped++
			continue
		}

		rec := models.MeterReading{
			Building:  building,
			Timestamp: ts,
			KWh:       kwh,
		}
		if err := rec.Validate(); err != nil {
			logger.Debug.Printf("Skipping row %d in %s: %v", line, path, err)
			skipped++
			continue
		}

		readings = append(readings, rec)
	}

	return readings, skipped, nil
}
