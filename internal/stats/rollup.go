package stats

import (
	"sort"
	"time"

	"github.com/mstanic/ironlog/internal/models"
	"github.com/mstanic/ironlog/internal/session"
)

// SessionIdentities are the fixed session ids the breakdown reports on:
// the three gym programs plus the two recognized cardio activities.
var SessionIdentities = []string{"A", "B", "S", session.SessionRunning, session.SessionFloorball}

type SessionCounts struct {
	Total      int `json:"total"`
	Last7Days  int `json:"last7Days"`
	Last30Days int `json:"last30Days"`
	Last90Days int `json:"last90Days"`
}

// WeeklySummary counts gym and cardio sessions in one Monday-starting week.
type WeeklySummary struct {
	WeekStart time.Time `json:"weekStart"`
	Gym       int       `json:"gym"`
	Cardio    int       `json:"cardio"`
}

// Statistics is the full rollup over the completed-session stream.
type Statistics struct {
	Gym7d     int `json:"gymSessions7d"`
	Gym30d    int `json:"gymSessions30d"`
	Gym90d    int `json:"gymSessions90d"`
	Cardio7d  int `json:"cardioSessions7d"`
	Cardio30d int `json:"cardioSessions30d"`
	Cardio90d int `json:"cardioSessions90d"`

	// Averages are total sessions divided by the weeks (or months) elapsed
	// since the oldest session, floored at one period.
	AvgSessionsPerWeek  float64 `json:"avgSessionsPerWeek"`
	AvgSessionsPerMonth float64 `json:"avgSessionsPerMonth"`

	BySession map[string]SessionCounts `json:"bySession"`

	// Most recent session timestamps, zero when there has been none.
	LastGymSession    int64 `json:"lastGymSession,omitempty"`
	LastCardioSession int64 `json:"lastCardioSession,omitempty"`

	Weekly []WeeklySummary `json:"weeklySummaries"`
}

// Rollup computes the statistics over the full log stream as of now.
func Rollup(logs []models.WorkoutLogEntry, names NameResolver, now time.Time) *Statistics {
	sessions := CompletedSessions(logs, names, now.Location())
	return RollupSessions(sessions, now)
}

// RollupSessions computes the statistics from an already-grouped
// completed-session list.
func RollupSessions(sessions []CompletedSession, now time.Time) *Statistics {
	stats := &Statistics{
		BySession: make(map[string]SessionCounts, len(SessionIdentities)),
		Weekly:    []WeeklySummary{},
	}
	for _, id := range SessionIdentities {
		stats.BySession[id] = SessionCounts{}
	}

	nowMs := now.UnixMilli()
	cutoff7 := nowMs - 7*dayMillis
	cutoff30 := nowMs - 30*dayMillis
	cutoff90 := nowMs - 90*dayMillis

	weeks := make(map[time.Time]*WeeklySummary)
	var oldest int64

	for _, s := range sessions {
		if oldest == 0 || s.Timestamp < oldest {
			oldest = s.Timestamp
		}

		if s.Cardio {
			if s.Timestamp > stats.LastCardioSession {
				stats.LastCardioSession = s.Timestamp
			}
			countWindows(s.Timestamp, cutoff7, cutoff30, cutoff90,
				&stats.Cardio7d, &stats.Cardio30d, &stats.Cardio90d)
		} else {
			if s.Timestamp > stats.LastGymSession {
				stats.LastGymSession = s.Timestamp
			}
			countWindows(s.Timestamp, cutoff7, cutoff30, cutoff90,
				&stats.Gym7d, &stats.Gym30d, &stats.Gym90d)
		}

		counts := stats.BySession[s.SessionID]
		counts.Total++
		if s.Timestamp >= cutoff7 {
			counts.Last7Days++
		}
		if s.Timestamp >= cutoff30 {
			counts.Last30Days++
		}
		if s.Timestamp >= cutoff90 {
			counts.Last90Days++
		}
		stats.BySession[s.SessionID] = counts

		weekStart := mondayOf(s.Timestamp, now.Location())
		w, ok := weeks[weekStart]
		if !ok {
			w = &WeeklySummary{WeekStart: weekStart}
			weeks[weekStart] = w
		}
		if s.Cardio {
			w.Cardio++
		} else {
			w.Gym++
		}
	}

	if total := len(sessions); total > 0 {
		daysSinceOldest := float64(nowMs-oldest) / float64(dayMillis)
		weeksElapsed := daysSinceOldest / 7
		if weeksElapsed < 1 {
			weeksElapsed = 1
		}
		monthsElapsed := daysSinceOldest / 30
		if monthsElapsed < 1 {
			monthsElapsed = 1
		}
		stats.AvgSessionsPerWeek = float64(total) / weeksElapsed
		stats.AvgSessionsPerMonth = float64(total) / monthsElapsed
	}

	for _, w := range weeks {
		stats.Weekly = append(stats.Weekly, *w)
	}
	sort.Slice(stats.Weekly, func(i, j int) bool {
		return stats.Weekly[i].WeekStart.After(stats.Weekly[j].WeekStart)
	})
	return stats
}

func countWindows(ts, cutoff7, cutoff30, cutoff90 int64, c7, c30, c90 *int) {
	if ts >= cutoff7 {
		*c7++
	}
	if ts >= cutoff30 {
		*c30++
	}
	if ts >= cutoff90 {
		*c90++
	}
}

// mondayOf returns local midnight of the Monday starting the week that
// contains ts.
func mondayOf(ts int64, loc *time.Location) time.Time {
	day := dayStart(ts, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
