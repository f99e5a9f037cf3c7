package models

// ProfileKey is the fixed id under which the singleton user profile is stored.
const ProfileKey = "user"

// LogTypeCardio marks workout log entries that record a cardio activity
// rather than a gym exercise.
const LogTypeCardio = "cardio"

// Exercise is a named exercise shared across session templates.
// Exercises are upserted by id whenever a template is loaded and never deleted.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WorkoutLogEntry is one persisted record of a performed exercise or cardio
// activity. Entries are immutable once written; the store only ever appends.
// Value is the authoritative numeric measurement (kilos for gym work,
// kilometers for cardio).
type WorkoutLogEntry struct {
	ID         int64   `json:"id,omitempty"`
	ExerciseID string  `json:"exerciseId"`
	Value      float64 `json:"value"`
	Completed  bool    `json:"completed"`
	Timestamp  int64   `json:"timestamp"` // epoch millis
	SessionID  string  `json:"sessionId"`
	Type       string  `json:"type,omitempty"` // "cardio" or empty
	Time       float64 `json:"time,omitempty"` // cardio duration, minutes
	Pace       float64 `json:"pace,omitempty"` // cardio pace, min/km
}

// IsCardio reports whether the entry records a cardio activity.
func (e WorkoutLogEntry) IsCardio() bool {
	return e.Type == LogTypeCardio
}

// BodyWeightEntry is one body-weight measurement. Weight carries at most one
// decimal digit; the store rejects anything finer.
type BodyWeightEntry struct {
	ID        int64   `json:"id,omitempty"`
	Weight    float64 `json:"weight"`
	Timestamp int64   `json:"timestamp"`
}

// UserProfile is the singleton profile record. Writes overwrite in place.
type UserProfile struct {
	Goal  string `json:"goal"`
	Facts string `json:"facts"`
}

// CoachFeedbackEntry is a freeform coach note. Deletable by id.
type CoachFeedbackEntry struct {
	ID        int64  `json:"id,omitempty"`
	Feedback  string `json:"feedback"`
	Timestamp int64  `json:"timestamp"`
}
