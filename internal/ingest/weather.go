package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// LoadWeatherCSV reads a date,temperature,humidity,rainfall file with a
// header row. Rows with a missing or unparseable field are dropped
// (this is the cleaning step), so every returned record is fully set.
func LoadWeatherCSV(path string) ([]models.WeatherRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open weather file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, nil
	}

	cols := map[string]int{}
	for i, col := range header {
		cols[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"date", "temperature", "humidity", "rainfall"} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q in %s", required, path)
		}
	}

	var records []models.WeatherRecord
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

		field := func(name string) string {
			i := cols[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		date, err := time.Parse("2006-01-02", field("date"))
		if err != nil {
			logger.Debug.Printf("Skipping row %d in %s: bad date %q", line, path, field("date"))
			skipped++
			continue
		}

		temp, errT := strconv.ParseFloat(field("temperature"), 64)
		hum, errH := strconv.ParseFloat(field("humidity"), 64)
		rain, errR := strconv.ParseFloat(field("rainfall"), 64)
		if errT != nil || errH != nil || errR != nil {
			logger.Debug.Printf("Skipping row %d in %s: non-numeric measurement", line, path)
			skipped++
			continue
		}

		rec := models.WeatherRecord{
			Date:        date,
			Temperature: temp,
			Humidity:    hum,
			Rainfall:    rain,
		}
		if err := rec.Validate(); err != nil {
			logger.Debug.Printf("Skipping row %d in %s: %v", line, path, err)
			skipped++
			continue
		}

		records = append(records, rec)
	}

	if skipped > 0 {
		logger.Info.Printf("Loaded %d observations from %s, dropped %d malformed rows", len(records), path, skipped)
	} else {
		logger.Info.Printf("Loaded %d observations from %s", len(records), path)
	}

	return records, skipped, nil
}
