package stats

import (
	"sort"

	"github.com/mstanic/ironlog/internal/models"
)

type Trend string

const (
	TrendNew  Trend = "new"
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// Progression compares an exercise's two most recent completed values.
type Progression struct {
	ExerciseID string
	Current    float64
	Previous   *float64
	Trend      Trend
	// Reportable is true only for a strict improvement: a previous value
	// exists and the current one exceeds it.
	Reportable bool
}

// ComputeProgression derives the progression for one exercise from the log
// stream. Returns nil when the exercise has no completed entries.
func ComputeProgression(exerciseID string, logs []models.WorkoutLogEntry) *Progression {
	var completed []models.WorkoutLogEntry
	for _, entry := range logs {
		if entry.ExerciseID == exerciseID && entry.Completed {
			completed = append(completed, entry)
		}
	}
	if len(completed) == 0 {
		return nil
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Timestamp > completed[j].Timestamp
	})

	p := &Progression{
		ExerciseID: exerciseID,
		Current:    completed[0].Value,
		Trend:      TrendNew,
	}
	if len(completed) > 1 {
		prev := completed[1].Value
		p.Previous = &prev
		switch {
		case p.Current > prev:
			p.Trend = TrendUp
			p.Reportable = true
		case p.Current < prev:
			p.Trend = TrendDown
		default:
			p.Trend = TrendSame
		}
	}
	return p
}
