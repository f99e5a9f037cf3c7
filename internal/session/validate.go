package session

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var tempoRe = regexp.MustCompile(`^\d-\d-\d(-\d)?$`)

// SchemaError reports every structural violation found in a raw template,
// not just the first one.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("template shape mismatch: %s", strings.Join(e.Violations, "; "))
}

// raw* mirror the wire shape with pointers so missing fields are detectable.

type rawTemplate struct {
	ID      *string    `json:"id"`
	Name    *string    `json:"name"`
	Version *int       `json:"version"`
	Blocks  []rawBlock `json:"blocks"`
}

type rawBlock struct {
	Type      *string   `json:"type"`
	Rounds    *int      `json:"rounds"`
	Rest      *rawRest  `json:"rest"`
	Exercises []rawStep `json:"exercises"`
}

type rawRest struct {
	BetweenExercisesSeconds *int `json:"betweenExercisesSeconds"`
	AfterRoundSeconds       *int `json:"afterRoundSeconds"`
}

type rawStep struct {
	ID               *string         `json:"id"`
	Name             *string         `json:"name"`
	Sets             *int            `json:"sets"`
	Target           json.RawMessage `json:"target"`
	Load             json.RawMessage `json:"load"`
	RestAfterSeconds *int            `json:"restAfterSeconds"`
	Tempo            *string         `json:"tempo"`
	Effort           *Effort         `json:"effort"`
}

// ParseTemplate validates and normalizes a raw template document. On success
// the returned Template is fully defaulted (rest 0/60, unit kg, version 2).
// On failure the error is a *SchemaError enumerating all violations.
func ParseTemplate(data []byte) (*Template, error) {
	var raw rawTemplate
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SchemaError{Violations: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}
	return validateRaw(raw)
}

func validateRaw(raw rawTemplate) (*Template, error) {
	v := &validator{}

	tpl := &Template{Version: CurrentVersion}
	if raw.ID == nil || *raw.ID == "" {
		v.addf("id: required")
	} else {
		tpl.ID = *raw.ID
	}
	if raw.Name == nil || *raw.Name == "" {
		v.addf("name: required")
	} else {
		tpl.Name = *raw.Name
	}
	if raw.Version != nil && *raw.Version != CurrentVersion {
		v.addf("version: must be %d, got %d", CurrentVersion, *raw.Version)
	}
	if len(raw.Blocks) == 0 {
		v.addf("blocks: at least one block required")
	}
	for i, rb := range raw.Blocks {
		tpl.Blocks = append(tpl.Blocks, v.block(fmt.Sprintf("blocks[%d]", i), rb))
	}

	if len(v.violations) > 0 {
		return nil, &SchemaError{Violations: v.violations}
	}
	return tpl, nil
}

type validator struct {
	violations []string
}

func (v *validator) addf(format string, args ...interface{}) {
	v.violations = append(v.violations, fmt.Sprintf(format, args...))
}

func (v *validator) block(path string, rb rawBlock) Block {
	b := Block{Type: BlockTypeSuperset}
	if rb.Type == nil || *rb.Type != BlockTypeSuperset {
		got := "<missing>"
		if rb.Type != nil {
			got = *rb.Type
		}
		v.addf("%s.type: must be %q, got %q", path, BlockTypeSuperset, got)
	}
	if rb.Rounds != nil {
		if *rb.Rounds <= 0 {
			v.addf("%s.rounds: must be > 0, got %d", path, *rb.Rounds)
		} else {
			b.Rounds = *rb.Rounds
		}
	}
	b.Rest = v.rest(path+".rest", rb.Rest)
	if len(rb.Exercises) == 0 {
		v.addf("%s.exercises: at least one exercise required", path)
	}
	for i, rs := range rb.Exercises {
		b.Exercises = append(b.Exercises, v.step(fmt.Sprintf("%s.exercises[%d]", path, i), rs))
	}
	return b
}

func (v *validator) rest(path string, rr *rawRest) RestSpec {
	rest := RestSpec{AfterRoundSeconds: DefaultAfterRoundRestSeconds}
	if rr == nil {
		return rest
	}
	if rr.BetweenExercisesSeconds != nil {
		if *rr.BetweenExercisesSeconds < 0 {
			v.addf("%s.betweenExercisesSeconds: must be >= 0, got %d", path, *rr.BetweenExercisesSeconds)
		} else {
			rest.BetweenExercisesSeconds = *rr.BetweenExercisesSeconds
		}
	}
	if rr.AfterRoundSeconds != nil {
		if *rr.AfterRoundSeconds < 0 {
			v.addf("%s.afterRoundSeconds: must be >= 0, got %d", path, *rr.AfterRoundSeconds)
		} else {
			rest.AfterRoundSeconds = *rr.AfterRoundSeconds
		}
	}
	return rest
}

func (v *validator) step(path string, rs rawStep) Step {
	s := Step{}
	if rs.ID == nil || *rs.ID == "" {
		v.addf("%s.id: required", path)
	} else {
		s.ID = *rs.ID
	}
	if rs.Name == nil || *rs.Name == "" {
		v.addf("%s.name: required", path)
	} else {
		s.Name = *rs.Name
	}
	if rs.Sets == nil {
		v.addf("%s.sets: required", path)
	} else if *rs.Sets <= 0 {
		v.addf("%s.sets: must be > 0, got %d", path, *rs.Sets)
	} else {
		s.Sets = *rs.Sets
	}
	s.Target = v.target(path+".target", rs.Target)
	if len(rs.Load) > 0 {
		var load Load
		if err := json.Unmarshal(rs.Load, &load); err != nil {
			v.addf("%s.load: %v", path, err)
		} else {
			s.Load = &load
		}
	}
	if rs.RestAfterSeconds != nil {
		if *rs.RestAfterSeconds < 0 {
			v.addf("%s.restAfterSeconds: must be >= 0, got %d", path, *rs.RestAfterSeconds)
		} else {
			s.RestAfterSeconds = *rs.RestAfterSeconds
		}
	}
	if rs.Tempo != nil {
		if !tempoRe.MatchString(*rs.Tempo) {
			v.addf("%s.tempo: must match D-D-D or D-D-D-D, got %q", path, *rs.Tempo)
		} else {
			s.Tempo = *rs.Tempo
		}
	}
	if rs.Effort != nil {
		if rs.Effort.RIR != nil && rs.Effort.RPE != nil {
			v.addf("%s.effort: rir and rpe are mutually exclusive", path)
		} else if rs.Effort.RIR == nil && rs.Effort.RPE == nil {
			v.addf("%s.effort: one of rir or rpe required", path)
		} else {
			s.Effort = rs.Effort
		}
	}
	return s
}

func (v *validator) target(path string, raw json.RawMessage) Target {
	if len(raw) == 0 {
		v.addf("%s: required", path)
		return Target{}
	}
	var t Target
	if err := json.Unmarshal(raw, &t); err != nil {
		v.addf("%s: %v", path, err)
		return Target{}
	}
	switch t.Kind {
	case TargetReps:
		if t.Reps <= 0 {
			v.addf("%s.reps: must be > 0, got %d", path, t.Reps)
		}
	case TargetRange:
		if t.Min <= 0 {
			v.addf("%s.min: must be > 0, got %d", path, t.Min)
		}
		if t.Max <= 0 {
			v.addf("%s.max: must be > 0, got %d", path, t.Max)
		}
		if t.Min > 0 && t.Max > 0 && t.Max < t.Min {
			v.addf("%s: max %d < min %d", path, t.Max, t.Min)
		}
	case TargetTime:
		if t.Seconds <= 0 {
			v.addf("%s.seconds: must be > 0, got %d", path, t.Seconds)
		}
	case TargetAMRAP:
		if t.CapReps < 0 {
			v.addf("%s.capReps: must be > 0 when set, got %d", path, t.CapReps)
		}
	}
	return t
}
