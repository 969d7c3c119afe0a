// internal/energy/aggregate.go
package energy

import (
	"sort"
	"time"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/stats"
)

// Point is one aggregated bucket for a building or for the campus.
type Point struct {
	T   time.Time
	KWh float64
}

// BuildingSummary holds the per-building scalar aggregates.
type BuildingSummary struct {
	Building string
	Mean     float64
	Min      float64
	Max      float64
	Total    float64
}

// Buildings returns the distinct building names in natural order.
func Buildings(readings []models.MeterReading) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range readings {
		if !seen[r.Building] {
			seen[r.Building] = true
			names = append(names, r.Building)
		}
	}
	sort.Strings(names)
	return names
}

// Summaries computes mean/min/max/total per building, ordered by
// building name.
func Summaries(readings []models.MeterReading) []BuildingSummary {
	values := make(map[string][]float64)
	for _, r := range readings {
		values[r.Building] = append(values[r.Building], r.KWh)
	}

	summaries := make([]BuildingSummary, 0, len(values))
	for _, building := range Buildings(readings) {
		s, err := stats.Summarize(values[building])
		if err != nil {
			continue
		}
		var total float64
		for _, v := range values[building] {
			total += v
		}
		summaries = append(summaries, BuildingSummary{
			Building: building,
			Mean:     s.Mean,
			Min:      s.Min,
			Max:      s.Max,
			Total:    total,
		})
	}
	return summaries
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func truncateHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// weekEnding maps a timestamp to the Sunday closing its week.
func weekEnding(t time.Time) time.Time {
	d := truncateDay(t)
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}

func bucketSeries(readings []models.MeterReading, bucket func(time.Time) time.Time) map[string][]Point {
	sums := make(map[string]map[time.Time]float64)
	for _, r := range readings {
		key := bucket(r.Timestamp)
		if sums[r.Building] == nil {
			sums[r.Building] = make(map[time.Time]float64)
		}
		sums[r.Building][key] += r.KWh
	}

	series := make(map[string][]Point, len(sums))
	for building, buckets := range sums {
		points := make([]Point, 0, len(buckets))
		for t, kwh := range buckets {
			points = append(points, Point{T: t, KWh: kwh})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].T.Before(points[j].T) })
		series[building] = points
	}
	return series
}

// DailySeries sums readings per building per calendar day.
func DailySeries(readings []models.MeterReading) map[string][]Point {
	return bucketSeries(readings, truncateDay)
}

// HourlySeries sums readings per building per hour.
func HourlySeries(readings []models.MeterReading) map[string][]Point {
	return bucketSeries(readings, truncateHour)
}

// WeeklySeries sums readings per building per week-ending date.
func WeeklySeries(readings []models.MeterReading) map[string][]Point {
	return bucketSeries(readings, weekEnding)
}

// CampusDaily sums all buildings together per day, sorted by date.
func CampusDaily(readings []models.MeterReading) []Point {
	totals := make(map[time.Time]float64)
	for _, r := range readings {
		totals[truncateDay(r.Timestamp)] += r.KWh
	}
	points := make([]Point, 0, len(totals))
	for t, kwh := range totals {
		points = append(points, Point{T: t, KWh: kwh})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].T.Before(points[j].T) })
	return points
}

// AverageWeekly is the mean weekly total per building.
func AverageWeekly(readings []models.MeterReading) map[string]float64 {
	weekly := WeeklySeries(readings)
	means := make(map[string]float64, len(weekly))
	for building, points := range weekly {
		var sum float64
		for _, p := range points {
			sum += p.KWh
		}
		means[building] = sum / float64(len(points))
	}
	return means
}

// Peak returns the point with the highest consumption. Ties keep the
// earliest bucket.
func Peak(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.KWh > best.KWh {
			best = p
		}
	}
	return best, true
}
