package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name  string
		score int
		want  Letter
	}{
		{"top score", 100, GradeA},
		{"A lower edge", 90, GradeA},
		{"just below A", 89, GradeB},
		{"B lower edge", 80, GradeB},
		{"just below B", 79, GradeC},
		{"C lower edge", 70, GradeC},
		{"just below C", 69, GradeD},
		{"D lower edge", 60, GradeD},
		{"just below D", 59, GradeF},
		{"zero", 0, GradeF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.score))
		})
	}
}

func TestDistribution_AllLettersPresent(t *testing.T) {
	records := []models.StudentRecord{
		{Name: "Aarav", Marks: 95},
		{Name: "Kiara", Marks: 95},
		{Name: "Diya", Marks: 72},
	}

	dist := Distribution(records)

	assert.Len(t, dist, 5)
	assert.Equal(t, 2, dist[GradeA])
	assert.Equal(t, 0, dist[GradeB])
	assert.Equal(t, 1, dist[GradeC])
	assert.Equal(t, 0, dist[GradeD])
	assert.Equal(t, 0, dist[GradeF])
}

func TestPartition(t *testing.T) {
	records := []models.StudentRecord{
		{Name: "pass edge", Marks: 40},
		{Name: "fail edge", Marks: 39},
		{Name: "top", Marks: 100},
		{Name: "bottom", Marks: 0},
	}

	passed, failed := Partition(records)

	// exhaustive and disjoint at the 40-point boundary
	assert.Len(t, passed, 2)
	assert.Len(t, failed, 2)
	assert.Equal(t, len(records), len(passed)+len(failed))

	for _, r := range passed {
		assert.GreaterOrEqual(t, r.Marks, PassMark)
	}
	for _, r := range failed {
		assert.Less(t, r.Marks, PassMark)
	}
}
