package database

import (
	"errors"
	"fmt"
)

// Entity names used in operation errors.
const (
	EntityExercise   = "exercise"
	EntityWorkoutLog = "workout_log"
	EntityBodyWeight = "body_weight"
	EntityProfile    = "profile"
	EntityFeedback   = "coach_feedback"
	EntitySetting    = "setting"
)

var ErrNotFound = errors.New("record not found")

// OpenError marks a failed open/migrate sequence. It is fatal to the calling
// session: the handle is unusable and the caller must not retry automatically.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open store %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// OpError wraps a failed store operation with its entity context.
type OpError struct {
	Op     string
	Entity string
	ID     int64
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Entity: entity, ID: id, Err: err}
}

// ValidationError rejects a record before any store write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
