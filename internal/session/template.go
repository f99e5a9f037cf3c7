// Package session models workout-session templates: a named sequence of
// exercise blocks with per-step targets and loads. Templates are read-only
// reference data; the store never mutates them.
package session

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the template schema generation this code understands.
const CurrentVersion = 2

const BlockTypeSuperset = "superset"

// DefaultAfterRoundRestSeconds applies when a block omits its rest spec.
const DefaultAfterRoundRestSeconds = 60

// Template is a schema-validated workout session.
type Template struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Version int     `json:"version"`
	Blocks  []Block `json:"blocks"`
}

// Block is a group of exercises performed in rotation. The only variant
// currently defined is "superset".
type Block struct {
	Type      string   `json:"type"`
	Rounds    int      `json:"rounds,omitempty"`
	Rest      RestSpec `json:"rest"`
	Exercises []Step   `json:"exercises"`
}

type RestSpec struct {
	BetweenExercisesSeconds int `json:"betweenExercisesSeconds"`
	AfterRoundSeconds       int `json:"afterRoundSeconds"`
}

// Step is one exercise within a block.
type Step struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Sets             int     `json:"sets"`
	Target           Target  `json:"target"`
	Load             *Load   `json:"load,omitempty"`
	RestAfterSeconds int     `json:"restAfterSeconds,omitempty"`
	Tempo            string  `json:"tempo,omitempty"`
	Effort           *Effort `json:"effort,omitempty"`
}

// Effort carries exactly one of RIR or RPE.
type Effort struct {
	RIR *int     `json:"rir,omitempty"`
	RPE *float64 `json:"rpe,omitempty"`
}

type TargetKind string

const (
	TargetReps  TargetKind = "reps"
	TargetRange TargetKind = "range"
	TargetTime  TargetKind = "time"
	TargetAMRAP TargetKind = "amrap"
)

// Target is the measurable goal of a step, a closed variant over
// reps | range | time | amrap. Kind selects which fields are meaningful.
type Target struct {
	Kind    TargetKind
	Reps    int // reps
	Min     int // range
	Max     int // range
	Seconds int // time
	CapReps int // amrap; 0 means uncapped
}

func (t Target) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TargetReps:
		return json.Marshal(struct {
			Type TargetKind `json:"type"`
			Reps int        `json:"reps"`
		}{t.Kind, t.Reps})
	case TargetRange:
		return json.Marshal(struct {
			Type TargetKind `json:"type"`
			Min  int        `json:"min"`
			Max  int        `json:"max"`
		}{t.Kind, t.Min, t.Max})
	case TargetTime:
		return json.Marshal(struct {
			Type    TargetKind `json:"type"`
			Seconds int        `json:"seconds"`
		}{t.Kind, t.Seconds})
	case TargetAMRAP:
		return json.Marshal(struct {
			Type    TargetKind `json:"type"`
			CapReps int        `json:"capReps,omitempty"`
		}{t.Kind, t.CapReps})
	default:
		return nil, fmt.Errorf("unknown target kind %q", t.Kind)
	}
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    TargetKind `json:"type"`
		Reps    int        `json:"reps"`
		Min     int        `json:"min"`
		Max     int        `json:"max"`
		Seconds int        `json:"seconds"`
		CapReps int        `json:"capReps"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case TargetReps:
		*t = Target{Kind: TargetReps, Reps: raw.Reps}
	case TargetRange:
		*t = Target{Kind: TargetRange, Min: raw.Min, Max: raw.Max}
	case TargetTime:
		*t = Target{Kind: TargetTime, Seconds: raw.Seconds}
	case TargetAMRAP:
		*t = Target{Kind: TargetAMRAP, CapReps: raw.CapReps}
	default:
		return fmt.Errorf("unknown target kind %q", raw.Type)
	}
	return nil
}

// Describe renders the target for display.
func (t Target) Describe() string {
	switch t.Kind {
	case TargetReps:
		return fmt.Sprintf("%d reps", t.Reps)
	case TargetRange:
		return fmt.Sprintf("%d-%d reps", t.Min, t.Max)
	case TargetTime:
		return fmt.Sprintf("%ds", t.Seconds)
	case TargetAMRAP:
		if t.CapReps > 0 {
			return fmt.Sprintf("AMRAP (cap %d)", t.CapReps)
		}
		return "AMRAP"
	default:
		return string(t.Kind)
	}
}

type LoadKind string

const (
	LoadWeight     LoadKind = "weight"
	LoadBodyweight LoadKind = "bodyweight"
	LoadBand       LoadKind = "band"
	LoadMachine    LoadKind = "machine"
)

const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// Load describes how a step is loaded, a closed variant over
// weight | bodyweight | band | machine.
type Load struct {
	Kind    LoadKind
	Unit    string   // weight
	Value   *float64 // weight, optional
	Added   *float64 // bodyweight, optional added weight
	Band    string   // band
	Setting string   // machine
}

func (l Load) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LoadWeight:
		return json.Marshal(struct {
			Type  LoadKind `json:"type"`
			Unit  string   `json:"unit"`
			Value *float64 `json:"value,omitempty"`
		}{l.Kind, l.Unit, l.Value})
	case LoadBodyweight:
		return json.Marshal(struct {
			Type  LoadKind `json:"type"`
			Added *float64 `json:"added,omitempty"`
		}{l.Kind, l.Added})
	case LoadBand:
		return json.Marshal(struct {
			Type LoadKind `json:"type"`
			Band string   `json:"band"`
		}{l.Kind, l.Band})
	case LoadMachine:
		return json.Marshal(struct {
			Type    LoadKind `json:"type"`
			Setting string   `json:"setting"`
		}{l.Kind, l.Setting})
	default:
		return nil, fmt.Errorf("unknown load kind %q", l.Kind)
	}
}

func (l *Load) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    LoadKind `json:"type"`
		Unit    string   `json:"unit"`
		Value   *float64 `json:"value"`
		Added   *float64 `json:"added"`
		Band    string   `json:"band"`
		Setting string   `json:"setting"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case LoadWeight:
		unit := raw.Unit
		if unit == "" {
			unit = UnitKg
		}
		*l = Load{Kind: LoadWeight, Unit: unit, Value: raw.Value}
	case LoadBodyweight:
		*l = Load{Kind: LoadBodyweight, Added: raw.Added}
	case LoadBand:
		*l = Load{Kind: LoadBand, Band: raw.Band}
	case LoadMachine:
		*l = Load{Kind: LoadMachine, Setting: raw.Setting}
	default:
		return fmt.Errorf("unknown load kind %q", raw.Type)
	}
	return nil
}

// Describe renders the load for display.
func (l Load) Describe() string {
	switch l.Kind {
	case LoadWeight:
		if l.Value != nil {
			return fmt.Sprintf("%g %s", *l.Value, l.Unit)
		}
		return l.Unit
	case LoadBodyweight:
		if l.Added != nil {
			return fmt.Sprintf("bodyweight +%g", *l.Added)
		}
		return "bodyweight"
	case LoadBand:
		return "band " + l.Band
	case LoadMachine:
		return "machine " + l.Setting
	default:
		return string(l.Kind)
	}
}
