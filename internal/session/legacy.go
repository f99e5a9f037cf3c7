package session

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Legacy (pre-v2) hand-authored session definitions: flat supersets with a
// single rest value and a loosely-typed reps field. ConvertLegacy is the only
// sanctioned path from this form into the current template model.

const (
	legacyMetricWeight = "weight"
	legacyMetricTime   = "time"

	// fallbackReps is used when a legacy reps string cannot be parsed at all.
	fallbackReps = 10
)

var (
	legacyTimeRe  = regexp.MustCompile(`(?i)^\d+\s*s$`)
	legacyRangeRe = regexp.MustCompile(`^\d+-\d+$`)
)

type LegacySession struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Supersets []LegacySuperset `json:"supersets"`
}

type LegacySuperset struct {
	Rounds    int              `json:"rounds,omitempty"`
	Rest      int              `json:"rest"` // seconds after each round
	Exercises []LegacyExercise `json:"exercises"`
}

type LegacyExercise struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Sets   int        `json:"sets"`
	Reps   LegacyReps `json:"reps"`
	Metric string     `json:"metric,omitempty"` // "weight" (default) or "time"
}

// LegacyReps accepts either a JSON number or a string ("12", "45s", "8-12").
type LegacyReps struct {
	Str      string
	Num      int
	IsNumber bool
}

func (r *LegacyReps) UnmarshalJSON(data []byte) error {
	*r = LegacyReps{}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		r.Num = int(n)
		r.IsNumber = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.Str = s
	return nil
}

func (r LegacyReps) MarshalJSON() ([]byte, error) {
	if r.IsNumber {
		return json.Marshal(r.Num)
	}
	return json.Marshal(r.Str)
}

// RepsOf builds a numeric LegacyReps, StringReps a string one.
func RepsOf(n int) LegacyReps { return LegacyReps{Num: n, IsNumber: true} }

func StringReps(s string) LegacyReps { return LegacyReps{Str: s} }

// ConvertLegacy maps a legacy session onto the current template model. It is
// total: any well-typed legacy input converts without error.
func ConvertLegacy(old LegacySession) *Template {
	tpl := &Template{
		ID:      old.ID,
		Name:    old.Name,
		Version: CurrentVersion,
	}
	for _, ss := range old.Supersets {
		block := Block{
			Type:   BlockTypeSuperset,
			Rounds: ss.Rounds,
			Rest: RestSpec{
				BetweenExercisesSeconds: 0,
				AfterRoundSeconds:       ss.Rest,
			},
		}
		for _, ex := range ss.Exercises {
			block.Exercises = append(block.Exercises, convertLegacyExercise(ex))
		}
		tpl.Blocks = append(tpl.Blocks, block)
	}
	return tpl
}

func convertLegacyExercise(ex LegacyExercise) Step {
	metric := ex.Metric
	if metric == "" {
		metric = legacyMetricWeight
	}

	step := Step{
		ID:     ex.ID,
		Name:   ex.Name,
		Sets:   ex.Sets,
		Target: convertLegacyTarget(metric, ex.Reps),
	}
	if metric == legacyMetricWeight {
		step.Load = &Load{Kind: LoadWeight, Unit: UnitKg}
	}
	return step
}

func convertLegacyTarget(metric string, reps LegacyReps) Target {
	if metric == legacyMetricTime {
		seconds := reps.Num
		if !reps.IsNumber {
			seconds = parseIntPrefix(reps.Str, 0)
		}
		return Target{Kind: TargetTime, Seconds: seconds}
	}
	if reps.IsNumber {
		return Target{Kind: TargetReps, Reps: reps.Num}
	}
	if legacyTimeRe.MatchString(reps.Str) {
		return Target{Kind: TargetTime, Seconds: parseIntPrefix(reps.Str, 0)}
	}
	if legacyRangeRe.MatchString(reps.Str) {
		parts := strings.SplitN(reps.Str, "-", 2)
		min, _ := strconv.Atoi(parts[0])
		max, _ := strconv.Atoi(parts[1])
		return Target{Kind: TargetRange, Min: min, Max: max}
	}
	return Target{Kind: TargetReps, Reps: parseIntPrefix(reps.Str, fallbackReps)}
}

// parseIntPrefix parses the leading decimal digits of s, returning fallback
// when there are none.
func parseIntPrefix(s string, fallback int) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return fallback
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return fallback
	}
	return n
}
