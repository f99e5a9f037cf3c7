package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mstanic/ironlog/internal/models"
)

// Cardio session ids. These are free-form log sessionIds, never template ids,
// so name resolution special-cases them.
const (
	SessionRunning   = "running"
	SessionFloorball = "floorball"
)

// CardioName returns the fixed display name for a recognized cardio session
// id, or false for anything else.
func CardioName(sessionID string) (string, bool) {
	switch sessionID {
	case SessionRunning:
		return "Running", true
	case SessionFloorball:
		return "Floorball", true
	default:
		return "", false
	}
}

// Catalog is an ordered set of validated session templates.
type Catalog struct {
	templates []*Template
	byID      map[string]*Template
}

func NewCatalog(templates ...*Template) *Catalog {
	c := &Catalog{byID: make(map[string]*Template)}
	for _, t := range templates {
		c.templates = append(c.templates, t)
		c.byID[t.ID] = t
	}
	return c
}

// Templates returns the catalog in order.
func (c *Catalog) Templates() []*Template {
	return c.templates
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (*Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// SessionName resolves a session id to its template name.
func (c *Catalog) SessionName(id string) (string, bool) {
	if t, ok := c.byID[id]; ok {
		return t.Name, true
	}
	return "", false
}

// Exercises extracts every step of every template as an Exercise record, in
// catalog order with duplicates removed. The store upserts these at load.
func (c *Catalog) Exercises() []models.Exercise {
	seen := make(map[string]bool)
	var out []models.Exercise
	for _, t := range c.templates {
		for _, b := range t.Blocks {
			for _, s := range b.Exercises {
				if seen[s.ID] {
					continue
				}
				seen[s.ID] = true
				out = append(out, models.Exercise{ID: s.ID, Name: s.Name})
			}
		}
	}
	return out
}

// LoadCatalog reads a JSON array of templates from path. Entries carrying the
// current version pass through ParseTemplate; entries in the legacy flat shape
// (detected by a "supersets" key) are converted first.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	var templates []*Template
	for i, entry := range entries {
		var probe struct {
			Supersets json.RawMessage `json:"supersets"`
		}
		if err := json.Unmarshal(entry, &probe); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if len(probe.Supersets) > 0 {
			var legacy LegacySession
			if err := json.Unmarshal(entry, &legacy); err != nil {
				return nil, fmt.Errorf("catalog entry %d: %w", i, err)
			}
			templates = append(templates, ConvertLegacy(legacy))
			continue
		}
		tpl, err := ParseTemplate(entry)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		templates = append(templates, tpl)
	}
	return NewCatalog(templates...), nil
}

// DefaultCatalog is the built-in program: three gym sessions authored in the
// legacy flat form and brought up through the converter.
func DefaultCatalog() *Catalog {
	sessions := []LegacySession{
		{
			ID:   "A",
			Name: "Upper Body A",
			Supersets: []LegacySuperset{
				{
					Rounds: 3,
					Rest:   90,
					Exercises: []LegacyExercise{
						{ID: "bench-press", Name: "Bench Press", Sets: 3, Reps: StringReps("6-8")},
						{ID: "barbell-row", Name: "Barbell Row", Sets: 3, Reps: StringReps("6-8")},
					},
				},
				{
					Rounds: 3,
					Rest:   60,
					Exercises: []LegacyExercise{
						{ID: "overhead-press", Name: "Overhead Press", Sets: 3, Reps: RepsOf(8)},
						{ID: "lat-pulldown", Name: "Lat Pulldown", Sets: 3, Reps: StringReps("8-12")},
						{ID: "plank", Name: "Plank", Sets: 3, Reps: StringReps("45s"), Metric: "time"},
					},
				},
			},
		},
		{
			ID:   "B",
			Name: "Lower Body B",
			Supersets: []LegacySuperset{
				{
					Rounds: 3,
					Rest:   120,
					Exercises: []LegacyExercise{
						{ID: "squat", Name: "Back Squat", Sets: 3, Reps: StringReps("5-8")},
						{ID: "romanian-deadlift", Name: "Romanian Deadlift", Sets: 3, Reps: RepsOf(8)},
					},
				},
				{
					Rounds: 3,
					Rest:   60,
					Exercises: []LegacyExercise{
						{ID: "walking-lunge", Name: "Walking Lunge", Sets: 3, Reps: RepsOf(12)},
						{ID: "calf-raise", Name: "Calf Raise", Sets: 3, Reps: StringReps("12-15")},
						{ID: "hollow-hold", Name: "Hollow Hold", Sets: 3, Reps: StringReps("30s"), Metric: "time"},
					},
				},
			},
		},
		{
			ID:   "S",
			Name: "Short Full Body",
			Supersets: []LegacySuperset{
				{
					Rounds: 4,
					Rest:   45,
					Exercises: []LegacyExercise{
						{ID: "goblet-squat", Name: "Goblet Squat", Sets: 4, Reps: RepsOf(10)},
						{ID: "push-up", Name: "Push-Up", Sets: 4, Reps: StringReps("10-15")},
						{ID: "dead-hang", Name: "Dead Hang", Sets: 4, Reps: StringReps("30s"), Metric: "time"},
					},
				},
			},
		},
	}

	templates := make([]*Template, 0, len(sessions))
	for _, s := range sessions {
		templates = append(templates, ConvertLegacy(s))
	}
	return NewCatalog(templates...)
}
