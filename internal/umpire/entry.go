package umpire

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/tennisassist/tennis"
)

// Entry records one accepted event and everything it changed
type Entry struct {
	Seq     int
	Event   tennis.Event
	Changes []tennis.Change
	At      time.Time
}

func (e Entry) String() string {
	parts := make([]string, len(e.Changes))
	for i, c := range e.Changes {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%4d %s %-22s %s", e.Seq, e.At.Format("15:04:05"), e.Event, strings.Join(parts, "; "))
}

func (e Entry) has(kind tennis.ChangeKind) bool {
	for _, c := range e.Changes {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// Summary is a snapshot of a session
type Summary struct {
	ID             string
	Players        [2]tennis.Player
	Settings       tennis.Settings
	Sets           []tennis.Score[int]
	MatchScore     tennis.Score[int]
	Winner         tennis.Player
	Finished       bool
	Points         int
	Tiebreaks      int
	SuperTiebreaks int
	Duration       time.Duration
}

func (s Summary) String() string {
	sets := make([]string, len(s.Sets))
	for i, set := range s.Sets {
		sets[i] = set.String()
	}
	result := "in progress"
	if s.Finished {
		result = fmt.Sprintf("won by %s", s.Winner)
	}
	return fmt.Sprintf("%s vs %s [%s] sets %s, %s after %d points",
		s.Players[0], s.Players[1], s.Settings, strings.Join(sets, " "), result, s.Points)
}
