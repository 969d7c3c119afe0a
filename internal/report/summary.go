package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/energy"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/stats"
)

// WriteEnergySummary writes the executive summary for one pipeline run.
// The file is rewritten from scratch every time.
func WriteEnergySummary(path, runID string, summaries []energy.BuildingSummary, campusDaily []energy.Point, weekly map[string][]energy.Point) error {
	var lines []string
	lines = append(lines, fmt.Sprintf("Campus Energy-Use Summary (run %s)", runID))
	lines = append(lines, "")

	var campusTotal float64
	for _, p := range campusDaily {
		campusTotal += p.KWh
	}
	lines = append(lines, fmt.Sprintf("Total campus consumption: %.2f kWh", campusTotal))

	if len(summaries) > 0 {
		top := summaries[0]
		for _, s := range summaries[1:] {
			if s.Total > top.Total {
				top = s
			}
		}
		lines = append(lines, fmt.Sprintf("Highest-consuming building: %s (%.2f kWh total)", top.Building, top.Total))
	} else {
		lines = append(lines, "Highest-consuming building: N/A")
	}

	if peak, ok := energy.Peak(campusDaily); ok {
		lines = append(lines, fmt.Sprintf("Day with highest campus load: %s (%.2f kWh)", peak.T.Format("2006-01-02"), peak.KWh))
	}

	campusWeekly := make(map[string]float64)
	for _, points := range weekly {
		for _, p := range points {
			campusWeekly[p.T.Format("2006-01-02")] += p.KWh
		}
	}
	if len(campusWeekly) > 0 {
		var peakWeek string
		var peakLoad, sum float64
		for _, week := range stats.SortedKeys(campusWeekly) {
			load := campusWeekly[week]
			sum += load
			if load > peakLoad {
				peakWeek, peakLoad = week, load
			}
		}
		lines = append(lines, fmt.Sprintf("Week with highest campus load (week-ending): %s", peakWeek))
		lines = append(lines, fmt.Sprintf("Average weekly campus consumption: %.2f kWh", sum/float64(len(campusWeekly))))
	}

	lines = append(lines, "")
	lines = append(lines, "Observations and suggestions:")
	lines = append(lines, "- Investigate highest-consuming buildings for HVAC or lighting optimization.")
	lines = append(lines, "- Target peak hours for demand-side management or load shifting.")

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	logger.Info.Printf("Text summary written to %s", path)
	return nil
}

// WriteWeatherSummary writes the weather report: overall temperature
// aggregates plus monthly and seasonal groupings.
func WriteWeatherSummary(path, runID string, records []models.WeatherRecord) error {
	var lines []string
	lines = append(lines, fmt.Sprintf("Weather Summary Report (run %s)", runID))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Observations: %d", len(records)))

	if len(records) > 0 {
		dailyTemp := stats.GroupMean(records,
			models.WeatherRecord.DayKey,
			func(r models.WeatherRecord) float64 { return r.Temperature },
		)
		lines = append(lines, fmt.Sprintf("Distinct observation days: %d", len(dailyTemp)))

		sorted := make([]models.WeatherRecord, len(records))
		copy(sorted, records)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
		lines = append(lines, fmt.Sprintf("Period: %s to %s",
			sorted[0].Date.Format("2006-01-02"),
			sorted[len(sorted)-1].Date.Format("2006-01-02")))

		temps := make([]float64, 0, len(records))
		for _, r := range records {
			temps = append(temps, r.Temperature)
		}
		if s, err := stats.Summarize(temps); err == nil {
			lines = append(lines, "")
			lines = append(lines, "Temperature:")
			lines = append(lines, fmt.Sprintf("  Mean: %.2f  Median: %.2f  Min: %.2f  Max: %.2f", s.Mean, s.Median, s.Min, s.Max))
		}

		monthlyTemp := stats.GroupMean(records,
			models.WeatherRecord.MonthKey,
			func(r models.WeatherRecord) float64 { return r.Temperature },
		)
		lines = append(lines, "")
		lines = append(lines, "Mean temperature by month:")
		for _, month := range stats.SortedKeys(monthlyTemp) {
			lines = append(lines, fmt.Sprintf("  %s: %.2f", month, monthlyTemp[month]))
		}

		seasonRain := stats.GroupSum(records,
			models.WeatherRecord.Season,
			func(r models.WeatherRecord) float64 { return r.Rainfall },
		)
		lines = append(lines, "")
		lines = append(lines, "Total rainfall by season:")
		for _, season := range stats.SortedKeys(seasonRain) {
			lines = append(lines, fmt.Sprintf("  %s: %.1f mm", season, seasonRain[season]))
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	logger.Info.Printf("Weather summary written to %s", path)
	return nil
}
