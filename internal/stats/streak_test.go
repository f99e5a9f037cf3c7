package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sessionOn(ts time.Time) CompletedSession {
	return CompletedSession{SessionID: "A", Timestamp: ts.UnixMilli()}
}

func TestStreak_Empty(t *testing.T) {
	info := Streak(nil, at(2026, 8, 15, 12, 0))
	assert.Equal(t, 0, info.Days)
	assert.False(t, info.HasWorkoutYesterday)
	assert.Equal(t, -1, info.DaysSinceLastWorkout)
}

func TestStreak_ThreeConsecutiveDays(t *testing.T) {
	now := at(2026, 8, 15, 20, 0)
	sessions := []CompletedSession{
		sessionOn(at(2026, 8, 15, 17, 0)),
		sessionOn(at(2026, 8, 14, 17, 0)),
		sessionOn(at(2026, 8, 13, 17, 0)),
		sessionOn(at(2026, 8, 10, 17, 0)), // beyond the gap, not counted
	}
	info := Streak(sessions, now)
	assert.Equal(t, 3, info.Days)
	assert.True(t, info.HasWorkoutYesterday)
	assert.Equal(t, 0, info.DaysSinceLastWorkout)
}

func TestStreak_GapTodayZeroesStreak(t *testing.T) {
	// Trained yesterday and the day before, but not today: the streak walk
	// stops immediately while the yesterday flag still reports true.
	now := at(2026, 8, 15, 20, 0)
	sessions := []CompletedSession{
		sessionOn(at(2026, 8, 14, 17, 0)),
		sessionOn(at(2026, 8, 13, 17, 0)),
	}
	info := Streak(sessions, now)
	assert.Equal(t, 0, info.Days)
	assert.True(t, info.HasWorkoutYesterday)
	assert.Equal(t, 1, info.DaysSinceLastWorkout)
}

func TestStreak_DaysSinceLastWorkout(t *testing.T) {
	now := at(2026, 8, 15, 9, 0)
	sessions := []CompletedSession{
		sessionOn(at(2026, 8, 11, 17, 0)),
	}
	info := Streak(sessions, now)
	assert.Equal(t, 0, info.Days)
	assert.False(t, info.HasWorkoutYesterday)
	assert.Equal(t, 4, info.DaysSinceLastWorkout)
}

func TestStreak_DaysSinceAcrossSpringForward(t *testing.T) {
	// Europe/Berlin loses an hour on 2026-03-29; the midnight-to-midnight
	// interval from the 29th to the 30th is only 23h, which must still count
	// as one calendar day.
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2026, 3, 30, 12, 0, 0, 0, loc)
	sessions := []CompletedSession{
		{SessionID: "A", Timestamp: time.Date(2026, 3, 29, 17, 0, 0, 0, loc).UnixMilli()},
	}
	info := Streak(sessions, now)
	assert.Equal(t, 0, info.Days)
	assert.True(t, info.HasWorkoutYesterday)
	assert.Equal(t, 1, info.DaysSinceLastWorkout)
}

func TestStreak_MultipleSessionsSameDayCountOnce(t *testing.T) {
	now := at(2026, 8, 15, 20, 0)
	sessions := []CompletedSession{
		sessionOn(at(2026, 8, 15, 7, 0)),
		{SessionID: "running", Timestamp: at(2026, 8, 15, 18, 0).UnixMilli(), Cardio: true},
	}
	info := Streak(sessions, now)
	assert.Equal(t, 1, info.Days)
}
