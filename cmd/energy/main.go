package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/app"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/chart"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/energy"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/ingest"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/report"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	runID := uuid.NewString()
	logger.Info.Printf("Campus energy dashboard run %s", runID)
	logger.Info.Printf("Reading CSVs from %s, writing outputs to %s", config.Energy.DataDir, config.Energy.OutputDir)

	readings, err := ingest.LoadReadingsDir(config.Energy.DataDir)
	if err != nil {
		logger.Error.Printf("Failed to read data directory: %v", err)
		return
	}
	if len(readings) == 0 {
		logger.Error.Printf("No meter readings loaded, exiting pipeline")
		return
	}

	if err := os.MkdirAll(config.Energy.OutputDir, 0o755); err != nil {
		logger.Error.Fatalf("Failed to create output directory: %v", err)
	}

	summaries := energy.Summaries(readings)
	report.RenderBuildingSummaries(os.Stdout, summaries)

	out := func(name string) string { return filepath.Join(config.Energy.OutputDir, name) }

	if err := report.WriteCleanedReadings(out("cleaned_energy_data.csv"), readings, config.Display.TimestampFormat); err != nil {
		logger.Error.Printf("Export failed: %v", err)
	}
	if err := report.WriteBuildingSummaryCSV(out("building_summary.csv"), summaries); err != nil {
		logger.Error.Printf("Export failed: %v", err)
	}

	buildings := energy.Buildings(readings)
	daily := toSeries(energy.DailySeries(readings), buildings)
	hourly := toSeries(energy.HourlySeries(readings), buildings)

	avgWeekly := energy.AverageWeekly(readings)
	avgValues := make([]float64, len(buildings))
	for i, b := range buildings {
		avgValues[i] = avgWeekly[b]
	}

	if err := chart.SaveEnergyDashboard(daily, buildings, avgValues, hourly, out("dashboard.png")); err != nil {
		logger.Error.Printf("Dashboard rendering failed: %v", err)
	}

	weekly := energy.WeeklySeries(readings)
	if err := report.WriteEnergySummary(out("summary.txt"), runID, summaries, energy.CampusDaily(readings), weekly); err != nil {
		logger.Error.Printf("Summary failed: %v", err)
	}

	logger.Info.Printf("Pipeline completed")
}

func toSeries(byBuilding map[string][]energy.Point, order []string) []chart.Series {
	series := make([]chart.Series, 0, len(order))
	for _, building := range order {
		points := byBuilding[building]
		converted := make([]chart.TimePoint, len(points))
		for i, p := range points {
			converted[i] = chart.TimePoint{T: p.T, V: p.KWh}
		}
		series = append(series, chart.Series{Name: building, Points: converted})
	}
	return series
}
