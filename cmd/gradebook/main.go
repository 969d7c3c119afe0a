package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/app"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/chart"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/cli"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/grading"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/ingest"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/report"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/stats"
)

const menu = `
Menu:
1) Enter marks manually
2) Load marks from CSV
3) Save marks histogram
4) Exit
`

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	fmt.Println("====================================")
	fmt.Println("     GradeBook Analyzer")
	fmt.Println("====================================")

	var records []models.StudentRecord

	for {
		fmt.Print(menu)
		choice, ok := prompter.Line("Enter your choice: ")
		if !ok {
			break
		}

		switch choice {
		case "1":
			records = manualInput(prompter)
			analyze(records)
		case "2":
			loaded, ok := loadCSV(prompter, config.Gradebook.DefaultCSV)
			if !ok {
				continue
			}
			records = loaded
			analyze(records)
		case "3":
			if len(records) == 0 {
				fmt.Println("No data loaded yet. Load or enter marks first.")
				continue
			}
			saveHistogram(records, config.Gradebook.ChartPath)
		case "4":
			fmt.Println("Thank you for using GradeBook Analyzer!")
			return
		default:
			fmt.Println("Invalid choice! Try again.")
		}
	}
}

func manualInput(prompter *cli.Prompter) []models.StudentRecord {
	n, ok := prompter.IntRange("Enter number of students: ", 1, 1000)
	if !ok {
		return nil
	}

	records := make([]models.StudentRecord, 0, n)
	for i := 0; i < n; i++ {
		name, ok := prompter.NonEmpty("Enter student name: ")
		if !ok {
			return records
		}
		marks, ok := prompter.IntRange("Enter marks (0-100): ", 0, 100)
		if !ok {
			return records
		}
		records = append(records, models.StudentRecord{Name: name, Marks: marks})
	}
	return records
}

func loadCSV(prompter *cli.Prompter, defaultPath string) ([]models.StudentRecord, bool) {
	prompt := "Enter CSV filename (example: data.csv): "
	if defaultPath != "" {
		prompt = fmt.Sprintf("Enter CSV filename (default: %s): ", defaultPath)
	}

	path, ok := prompter.Line(prompt)
	if !ok {
		return nil, false
	}
	if path == "" {
		path = defaultPath
	}
	if path == "" {
		fmt.Println("No filename given.")
		return nil, false
	}

	records, _, err := ingest.LoadMarksCSV(path)
	if err != nil {
		logger.Error.Printf("Could not read CSV file: %v", err)
		fmt.Println("Error: could not read CSV file.")
		return nil, false
	}
	if len(records) == 0 {
		fmt.Println("No data loaded. Try again.")
		return nil, false
	}

	fmt.Println("CSV loaded successfully!")
	return records, true
}

func analyze(records []models.StudentRecord) {
	if len(records) == 0 {
		return
	}

	marks := make([]float64, len(records))
	for i, r := range records {
		marks[i] = float64(r.Marks)
	}

	summary, err := stats.Summarize(marks)
	if err != nil {
		logger.Error.Printf("Failed to compute statistics: %v", err)
		return
	}

	fmt.Println("\n---- Statistics Summary ----")
	fmt.Printf("Students     : %d\n", summary.Count)
	fmt.Printf("Average Score: %.2f\n", summary.Mean)
	fmt.Printf("Median Score : %.2f\n", summary.Median)
	fmt.Printf("Highest Score: %.0f\n", summary.Max)
	fmt.Printf("Lowest Score : %.0f\n", summary.Min)

	fmt.Println("\n---- Grade Distribution ----")
	dist := grading.Distribution(records)
	for _, letter := range grading.Letters {
		fmt.Printf("%s: %d\n", letter, dist[letter])
	}

	passed, failed := grading.Partition(records)
	fmt.Printf("\nPassed Students: %s\n", names(passed))
	fmt.Printf("Failed Students: %s\n", names(failed))

	fmt.Println()
	report.RenderGradeTable(os.Stdout, records)
}

func names(records []models.StudentRecord) string {
	if len(records) == 0 {
		return "(none)"
	}
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.Name
	}
	return strings.Join(parts, ", ")
}

func saveHistogram(records []models.StudentRecord, path string) {
	marks := make([]float64, len(records))
	for i, r := range records {
		marks[i] = float64(r.Marks)
	}
	if err := chart.SaveHistogram(marks, "Marks Distribution", "Marks", path); err != nil {
		logger.Error.Printf("Failed to save histogram: %v", err)
		fmt.Println("Could not save the histogram, see the log for details.")
		return
	}
	fmt.Printf("Histogram saved to %s\n", path)
}
