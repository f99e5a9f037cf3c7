package backup

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mstanic/ironlog/internal/models"
	"github.com/mstanic/ironlog/internal/session"
	"github.com/mstanic/ironlog/internal/stats"
)

// AnalyticsDocument is a derived, analytics-friendly projection of the store.
// It is write-only: unlike the backup document it is not round-trippable
// back into a store.
type AnalyticsDocument struct {
	ExportDate           string                        `json:"exportDate"` // ISO-8601
	User                 models.UserProfile            `json:"user"`
	WorkoutSessions      []SessionRecord               `json:"workoutSessions"`
	ExerciseProgressions map[string][]ProgressionPoint `json:"exerciseProgressions"`
	BodyWeightLog        []models.BodyWeightEntry      `json:"bodyWeightLog"`
	Statistics           *stats.Statistics             `json:"statistics"`
	SessionStructure     []SessionStructure            `json:"sessionStructure"`
	CoachFeedback        []models.CoachFeedbackEntry   `json:"coachFeedback"`
}

// SessionRecord is one completed session-day.
type SessionRecord struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Date      string `json:"date"` // ISO-8601
	Timestamp int64  `json:"timestamp"`
	Cardio    bool   `json:"cardio,omitempty"`
}

// ProgressionPoint is one completed measurement of an exercise over time.
type ProgressionPoint struct {
	Date      string  `json:"date"` // ISO-8601
	Value     float64 `json:"value"`
	SessionID string  `json:"sessionId"`
}

// SessionStructure is a flattened projection of a session template for
// external consumers.
type SessionStructure struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Blocks []BlockStructure `json:"blocks"`
}

type BlockStructure struct {
	Type      string          `json:"type"`
	Rounds    int             `json:"rounds,omitempty"`
	Exercises []StepStructure `json:"exercises"`
}

type StepStructure struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Target string `json:"target"`
	Load   string `json:"load,omitempty"`
}

// BuildAnalytics assembles the analytics export from the store and catalog.
func BuildAnalytics(ctx context.Context, store Store, catalog *session.Catalog, now time.Time) (*AnalyticsDocument, error) {
	logs, err := store.AllLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics export logs: %w", err)
	}
	bodyWeights, err := store.AllBodyWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics export body weights: %w", err)
	}
	feedback, err := store.AllCoachFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics export coach feedback: %w", err)
	}
	profile, err := store.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics export profile: %w", err)
	}

	doc := &AnalyticsDocument{
		ExportDate:           now.Format(time.RFC3339),
		ExerciseProgressions: make(map[string][]ProgressionPoint),
		BodyWeightLog:        bodyWeights,
		CoachFeedback:        feedback,
	}
	if profile != nil {
		doc.User = *profile
	}

	completed := stats.CompletedSessions(logs, catalog, now.Location())
	doc.WorkoutSessions = make([]SessionRecord, 0, len(completed))
	for _, s := range completed {
		doc.WorkoutSessions = append(doc.WorkoutSessions, SessionRecord{
			SessionID: s.SessionID,
			Name:      s.Name,
			Date:      time.UnixMilli(s.Timestamp).In(now.Location()).Format(time.RFC3339),
			Timestamp: s.Timestamp,
			Cardio:    s.Cardio,
		})
	}

	doc.Statistics = stats.RollupSessions(completed, now)

	for _, entry := range logs {
		if !entry.Completed {
			continue
		}
		doc.ExerciseProgressions[entry.ExerciseID] = append(doc.ExerciseProgressions[entry.ExerciseID], ProgressionPoint{
			Date:      time.UnixMilli(entry.Timestamp).In(now.Location()).Format(time.RFC3339),
			Value:     entry.Value,
			SessionID: entry.SessionID,
		})
	}
	for id := range doc.ExerciseProgressions {
		points := doc.ExerciseProgressions[id]
		sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
		doc.ExerciseProgressions[id] = points
	}

	for _, tpl := range catalog.Templates() {
		doc.SessionStructure = append(doc.SessionStructure, projectTemplate(tpl))
	}
	return doc, nil
}

func projectTemplate(tpl *session.Template) SessionStructure {
	out := SessionStructure{ID: tpl.ID, Name: tpl.Name}
	for _, b := range tpl.Blocks {
		block := BlockStructure{Type: b.Type, Rounds: b.Rounds}
		for _, s := range b.Exercises {
			step := StepStructure{
				ID:     s.ID,
				Name:   s.Name,
				Sets:   s.Sets,
				Target: s.Target.Describe(),
			}
			if s.Load != nil {
				step.Load = s.Load.Describe()
			}
			block.Exercises = append(block.Exercises, step)
		}
		out.Blocks = append(out.Blocks, block)
	}
	return out
}
