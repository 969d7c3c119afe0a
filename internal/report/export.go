package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/energy"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// writeCSV truncates path and writes header plus rows. Every export is
// a full rewrite, never an append.
func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCleanedReadings exports the combined validated readings sorted
// by timestamp, then building.
func WriteCleanedReadings(path string, readings []models.MeterReading, tsFormat string) error {
	sorted := make([]models.MeterReading, len(readings))
	copy(sorted, readings)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].Building < sorted[j].Building
	})

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{
			r.Building,
			r.Timestamp.Format(tsFormat),
			strconv.FormatFloat(r.KWh, 'f', -1, 64),
		})
	}

	if err := writeCSV(path, []string{"building", "timestamp", "kwh"}, rows); err != nil {
		return err
	}
	logger.Info.Printf("Cleaned data exported to %s", path)
	return nil
}

// WriteBuildingSummaryCSV exports the per-building aggregate table.
func WriteBuildingSummaryCSV(path string, summaries []energy.BuildingSummary) error {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Building,
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("%.2f", s.Total),
		})
	}

	if err := writeCSV(path, []string{"building", "mean", "min", "max", "total"}, rows); err != nil {
		return err
	}
	logger.Info.Printf("Building summary exported to %s", path)
	return nil
}

// WriteCleanedWeather exports the cleaned observations sorted by date.
func WriteCleanedWeather(path string, records []models.WeatherRecord) error {
	sorted := make([]models.WeatherRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			fmt.Sprintf("%.1f", r.Temperature),
			fmt.Sprintf("%.1f", r.Humidity),
			fmt.Sprintf("%.1f", r.Rainfall),
		})
	}

	if err := writeCSV(path, []string{"date", "temperature", "humidity", "rainfall"}, rows); err != nil {
		return err
	}
	logger.Info.Printf("Cleaned weather data exported to %s", path)
	return nil
}
