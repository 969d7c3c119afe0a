package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/app"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/chart"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/ingest"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/report"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/stats"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	runID := uuid.NewString()
	logger.Info.Printf("Weather visualizer run %s", runID)

	if _, err := os.Stat(config.Weather.DataFile); os.IsNotExist(err) {
		logger.Info.Printf("Data file %s not found, generating a sample dataset", config.Weather.DataFile)
		if err := writeSampleDataset(config.Weather.DataFile, config.Weather.SampleDays, config.Weather.SampleSeed); err != nil {
			logger.Error.Fatalf("Failed to generate sample dataset: %v", err)
		}
	}

	records, _, err := ingest.LoadWeatherCSV(config.Weather.DataFile)
	if err != nil {
		logger.Error.Printf("Failed to load weather data: %v", err)
		return
	}
	if len(records) == 0 {
		logger.Error.Printf("No observations loaded, nothing to do")
		return
	}

	if err := os.MkdirAll(config.Weather.OutputDir, 0o755); err != nil {
		logger.Error.Fatalf("Failed to create output directory: %v", err)
	}
	out := func(name string) string { return filepath.Join(config.Weather.OutputDir, name) }

	if err := report.WriteCleanedWeather(out("cleaned_weather_data.csv"), records); err != nil {
		logger.Error.Printf("Export failed: %v", err)
	}

	renderMonthlyTemperature(records, out("monthly_temperature.png"))
	renderSeasonalRainfall(records, out("seasonal_rainfall.png"))
	renderTemperatureHumidity(records, out("temperature_vs_humidity.png"))

	if err := report.WriteWeatherSummary(out("summary.txt"), runID, records); err != nil {
		logger.Error.Printf("Summary failed: %v", err)
	}

	logger.Info.Printf("All weather outputs written")
}

func renderMonthlyTemperature(records []models.WeatherRecord, path string) {
	monthly := stats.GroupMean(records,
		models.WeatherRecord.MonthKey,
		func(r models.WeatherRecord) float64 { return r.Temperature },
	)

	var points []chart.TimePoint
	for _, month := range stats.SortedKeys(monthly) {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			continue
		}
		points = append(points, chart.TimePoint{T: t, V: monthly[month]})
	}

	series := []chart.Series{{Name: "mean temperature", Points: points}}
	if err := chart.SaveTimeLines(series, "Mean Temperature by Month", "°C", path); err != nil {
		logger.Error.Printf("Chart failed: %v", err)
	}
}

func renderSeasonalRainfall(records []models.WeatherRecord, path string) {
	seasonal := stats.GroupSum(records,
		models.WeatherRecord.Season,
		func(r models.WeatherRecord) float64 { return r.Rainfall },
	)

	seasons := stats.SortedKeys(seasonal)
	values := make([]float64, len(seasons))
	for i, s := range seasons {
		values[i] = seasonal[s]
	}

	if err := chart.SaveBar(seasons, values, "Total Rainfall by Season", "Rainfall (mm)", path); err != nil {
		logger.Error.Printf("Chart failed: %v", err)
	}
}

func renderTemperatureHumidity(records []models.WeatherRecord, path string) {
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.Temperature
		ys[i] = r.Humidity
	}

	if err := chart.SaveScatter(xs, ys, "Temperature vs Humidity", "Temperature (°C)", "Humidity (%)", path); err != nil {
		logger.Error.Printf("Chart failed: %v", err)
	}
}

// writeSampleDataset produces a deterministic year of plausible daily
// observations so the visualizer runs without real data.
func writeSampleDataset(path string, days int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "temperature", "humidity", "rainfall"}); err != nil {
		return err
	}

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		// seasonal swing around 18°C, coldest in mid-January
		phase := 2 * math.Pi * float64(i) / 365.25
		temp := 18 - 12*math.Cos(phase) + rng.NormFloat64()*2.5
		humidity := math.Min(100, math.Max(20, 60+20*math.Cos(phase)+rng.NormFloat64()*8))

		rain := 0.0
		if rng.Float64() < 0.3 {
			rain = rng.Float64() * 25
		}

		row := []string{
			date.Format("2006-01-02"),
			fmt.Sprintf("%.1f", temp),
			fmt.Sprintf("%.1f", humidity),
			fmt.Sprintf("%.1f", rain),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	logger.Info.Printf("Sample dataset with %d days written to %s", days, path)
	return nil
}
