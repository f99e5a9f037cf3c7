// Package stats is the pure aggregation engine: deterministic functions that
// turn the flat workout-log stream into completed-session groupings,
// progressions, streaks and statistics rollups. Nothing here touches the
// store; callers feed in already-loaded logs and an explicit "now".
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/mstanic/ironlog/internal/models"
	"github.com/mstanic/ironlog/internal/session"
)

const dayMillis = 24 * 60 * 60 * 1000

// NameResolver resolves a session id to its display name, typically backed
// by the template catalog.
type NameResolver interface {
	SessionName(id string) (string, bool)
}

// NameMap is a map-backed NameResolver, handy in tests.
type NameMap map[string]string

func (m NameMap) SessionName(id string) (string, bool) {
	name, ok := m[id]
	return name, ok
}

// CompletedSession is one calendar-day + session-id grouping of completed
// logs. Timestamp is the group's representative moment: the earliest
// completed entry (when the session started), except for cardio groups where
// it is the latest entry, accommodating incremental cardio logging.
type CompletedSession struct {
	SessionID string
	Name      string
	Timestamp int64 // epoch millis
	Cardio    bool
}

// CompletedSessions groups completed logs into one record per session-day,
// sorted by representative timestamp descending. Calendar days are taken
// from the wall clock in loc.
func CompletedSessions(logs []models.WorkoutLogEntry, names NameResolver, loc *time.Location) []CompletedSession {
	type group struct {
		earliest int64
		latest   int64
		cardio   bool
	}
	groups := make(map[string]*group)
	order := make([]string, 0)
	keyToSession := make(map[string]string)

	for _, entry := range logs {
		if !entry.Completed {
			continue
		}
		key := dayKey(entry.Timestamp, loc) + "|" + entry.SessionID
		g, ok := groups[key]
		if !ok {
			g = &group{earliest: entry.Timestamp, latest: entry.Timestamp}
			groups[key] = g
			order = append(order, key)
			keyToSession[key] = entry.SessionID
		}
		if entry.Timestamp < g.earliest {
			g.earliest = entry.Timestamp
		}
		if entry.Timestamp > g.latest {
			g.latest = entry.Timestamp
		}
		if entry.IsCardio() {
			g.cardio = true
		}
	}

	out := make([]CompletedSession, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		sessionID := keyToSession[key]
		ts := g.earliest
		if g.cardio {
			ts = g.latest
		}
		out = append(out, CompletedSession{
			SessionID: sessionID,
			Name:      resolveName(sessionID, names),
			Timestamp: ts,
			Cardio:    g.cardio,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

// WorkoutsInWindow counts distinct (sessionId, calendar-day) pairs among logs
// within the trailing window of the given number of days. The day comes from
// the wall clock in now's location, not from a rolling 24h split, so two logs
// twenty hours apart crossing midnight count as two days.
func WorkoutsInWindow(logs []models.WorkoutLogEntry, days int, now time.Time) int {
	cutoff := now.UnixMilli() - int64(days)*dayMillis
	seen := make(map[string]bool)
	for _, entry := range logs {
		if entry.Timestamp < cutoff {
			continue
		}
		seen[entry.SessionID+"|"+dayKey(entry.Timestamp, now.Location())] = true
	}
	return len(seen)
}

func resolveName(sessionID string, names NameResolver) string {
	if name, ok := session.CardioName(sessionID); ok {
		return name
	}
	if names != nil {
		if name, ok := names.SessionName(sessionID); ok {
			return name
		}
	}
	return fmt.Sprintf("Session %s", sessionID)
}

// dayKey formats the local calendar day of an epoch-millis timestamp.
func dayKey(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(loc).Format("2006-01-02")
}

// dayStart truncates an epoch-millis timestamp to local midnight.
func dayStart(ts int64, loc *time.Location) time.Time {
	t := time.UnixMilli(ts).In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
