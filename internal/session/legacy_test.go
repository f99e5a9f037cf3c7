package session

import (
	"encoding/json"
	"testing"
)

func TestLegacyReps_UnmarshalNumberAndString(t *testing.T) {
	var ex LegacyExercise
	if err := json.Unmarshal([]byte(`{"id": "x", "name": "X", "sets": 3, "reps": 12}`), &ex); err != nil {
		t.Fatalf("unmarshal numeric reps failed: %v", err)
	}
	if !ex.Reps.IsNumber || ex.Reps.Num != 12 {
		t.Fatalf("expected numeric reps 12, got %+v", ex.Reps)
	}

	if err := json.Unmarshal([]byte(`{"id": "x", "name": "X", "sets": 3, "reps": "8-12"}`), &ex); err != nil {
		t.Fatalf("unmarshal string reps failed: %v", err)
	}
	if ex.Reps.IsNumber || ex.Reps.Str != "8-12" {
		t.Fatalf("expected string reps 8-12, got %+v", ex.Reps)
	}
}

func TestConvertLegacy_TargetMapping(t *testing.T) {
	old := LegacySession{
		ID:   "A",
		Name: "Test",
		Supersets: []LegacySuperset{
			{
				Rounds: 3,
				Rest:   90,
				Exercises: []LegacyExercise{
					{ID: "a", Name: "A", Sets: 3, Reps: RepsOf(8)},
					{ID: "b", Name: "B", Sets: 3, Reps: StringReps("6-8")},
					{ID: "c", Name: "C", Sets: 3, Reps: StringReps("45s")},
					{ID: "d", Name: "D", Sets: 3, Reps: StringReps("45 S")},
					{ID: "e", Name: "E", Sets: 3, Reps: StringReps("12 each side")},
					{ID: "f", Name: "F", Sets: 3, Reps: StringReps("max effort")},
					{ID: "g", Name: "G", Sets: 3, Reps: RepsOf(60), Metric: "time"},
					{ID: "h", Name: "H", Sets: 3, Reps: StringReps("30s"), Metric: "time"},
				},
			},
		},
	}

	tpl := ConvertLegacy(old)
	if tpl.ID != "A" || tpl.Version != CurrentVersion {
		t.Fatalf("unexpected header: %+v", tpl)
	}
	if len(tpl.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(tpl.Blocks))
	}
	block := tpl.Blocks[0]
	if block.Type != BlockTypeSuperset || block.Rounds != 3 {
		t.Fatalf("unexpected block: %+v", block)
	}
	if block.Rest.AfterRoundSeconds != 90 || block.Rest.BetweenExercisesSeconds != 0 {
		t.Fatalf("unexpected rest: %+v", block.Rest)
	}

	want := []Target{
		{Kind: TargetReps, Reps: 8},
		{Kind: TargetRange, Min: 6, Max: 8},
		{Kind: TargetTime, Seconds: 45},
		{Kind: TargetTime, Seconds: 45},
		{Kind: TargetReps, Reps: 12},
		{Kind: TargetReps, Reps: fallbackReps},
		{Kind: TargetTime, Seconds: 60},
		{Kind: TargetTime, Seconds: 30},
	}
	for i, w := range want {
		got := block.Exercises[i].Target
		if got != w {
			t.Errorf("exercise %d: expected target %+v, got %+v", i, w, got)
		}
	}
}

func TestConvertLegacy_WeightMetricGetsKgLoad(t *testing.T) {
	old := LegacySession{
		ID: "A", Name: "Test",
		Supersets: []LegacySuperset{{
			Rest: 60,
			Exercises: []LegacyExercise{
				{ID: "squat", Name: "Squat", Sets: 3, Reps: RepsOf(5)},
				{ID: "plank", Name: "Plank", Sets: 3, Reps: StringReps("45s"), Metric: "time"},
			},
		}},
	}

	tpl := ConvertLegacy(old)
	weighted := tpl.Blocks[0].Exercises[0]
	if weighted.Load == nil || weighted.Load.Kind != LoadWeight || weighted.Load.Unit != UnitKg {
		t.Fatalf("expected kg weight load for default metric, got %+v", weighted.Load)
	}
	timed := tpl.Blocks[0].Exercises[1]
	if timed.Load != nil {
		t.Fatalf("expected no load for time metric, got %+v", timed.Load)
	}
}

func TestParseIntPrefix(t *testing.T) {
	cases := []struct {
		in       string
		fallback int
		want     int
	}{
		{"45s", 0, 45},
		{" 12 each side ", 10, 12},
		{"max effort", 10, 10},
		{"", 7, 7},
	}
	for _, c := range cases {
		if got := parseIntPrefix(c.in, c.fallback); got != c.want {
			t.Errorf("parseIntPrefix(%q, %d) = %d, want %d", c.in, c.fallback, got, c.want)
		}
	}
}
