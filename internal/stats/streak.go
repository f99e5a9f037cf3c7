package stats

import (
	"math"
	"time"
)

// StreakInfo describes workout regularity relative to "today" (the caller's
// current date at local midnight).
type StreakInfo struct {
	// Days counts consecutive calendar days with at least one completed
	// session, walking backward from today and stopping at the first gap.
	// A day without a workout today means Days is 0 regardless of history.
	Days int
	// HasWorkoutYesterday is derived independently of the streak walk; the
	// two can disagree around gaps and that is intentional.
	HasWorkoutYesterday bool
	// DaysSinceLastWorkout is 0 when there is a session today, -1 when the
	// log is empty.
	DaysSinceLastWorkout int
}

// Streak computes the streak over completed sessions as of now.
func Streak(sessions []CompletedSession, now time.Time) StreakInfo {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	days := make(map[string]bool, len(sessions))
	var latest time.Time
	for _, s := range sessions {
		day := dayStart(s.Timestamp, loc)
		days[day.Format("2006-01-02")] = true
		if day.After(latest) {
			latest = day
		}
	}

	info := StreakInfo{DaysSinceLastWorkout: -1}
	if len(days) == 0 {
		return info
	}

	for offset := 0; ; offset++ {
		day := today.AddDate(0, 0, -offset)
		if !days[day.Format("2006-01-02")] {
			break
		}
		info.Days++
	}

	yesterday := today.AddDate(0, 0, -1)
	info.HasWorkoutYesterday = days[yesterday.Format("2006-01-02")]
	// Both are local midnights, but a DST transition makes the interval 23h
	// or 25h; rounding keeps it a whole calendar-day count.
	info.DaysSinceLastWorkout = int(math.Round(today.Sub(latest).Hours() / 24))
	return info
}
