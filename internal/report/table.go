package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/energy"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/grading"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// RenderGradeTable prints the per-student results table with assigned
// letter grades.
func RenderGradeTable(w io.Writer, records []models.StudentRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Marks", "Grade"})
	for _, r := range records {
		table.Append([]string{
			r.Name,
			strconv.Itoa(r.Marks),
			string(grading.Classify(r.Marks)),
		})
	}
	table.Render()
}

// RenderCatalogTable prints the full book collection.
func RenderCatalogTable(w io.Writer, books []models.Book) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "ISBN", "Title", "Author", "Status"})
	for i, b := range books {
		table.Append([]string{
			strconv.Itoa(i + 1),
			b.ISBN,
			b.Title,
			b.Author,
			string(b.Status),
		})
	}
	table.Render()
}

// RenderBuildingSummaries prints the per-building aggregate table.
func RenderBuildingSummaries(w io.Writer, summaries []energy.BuildingSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Building", "Mean kWh", "Min kWh", "Max kWh", "Total kWh"})
	for _, s := range summaries {
		table.Append([]string{
			s.Building,
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("%.2f", s.Total),
		})
	}
	table.Render()
}
