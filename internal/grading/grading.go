package grading

import (
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

type Letter string

const (
	GradeA Letter = "A"
	GradeB Letter = "B"
	GradeC Letter = "C"
	GradeD Letter = "D"
	GradeF Letter = "F"
)

// PassMark is the fixed pass/fail boundary.
const PassMark = 40

// Letters in display order.
var Letters = []Letter{GradeA, GradeB, GradeC, GradeD, GradeF}

// Classify maps a score to a letter grade. Thresholds are fixed and
// closed: >=90 A, 80-89 B, 70-79 C, 60-69 D, everything else F.
func Classify(score int) Letter {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Distribution counts records per letter. All five letters are present
// in the result even when their count is zero.
func Distribution(records []models.StudentRecord) map[Letter]int {
	dist := map[Letter]int{
		GradeA: 0,
		GradeB: 0,
		GradeC: 0,
		GradeD: 0,
		GradeF: 0,
	}
	for _, r := range records {
		dist[Classify(r.Marks)]++
	}
	return dist
}

// Partition splits records into passed and failed at PassMark. Every
// record lands in exactly one of the two lists.
func Partition(records []models.StudentRecord) (passed, failed []models.StudentRecord) {
	for _, r := range records {
		if r.Marks >= PassMark {
			passed = append(passed, r)
		} else {
			failed = append(failed, r)
		}
	}
	return passed, failed
}
