package tennis

import "fmt"

// EventType names the three events a match accepts
type EventType string

const (
	EventRegisterFirstServer EventType = "register_first_server"
	EventStartPlay           EventType = "start_play"
	EventRegisterPoint       EventType = "register_point"
)

func (et EventType) String() string {
	return string(et)
}

// Event is an input to the match state machine. Player is unused for StartPlay.
type Event struct {
	Type   EventType
	Player Player
}

// FirstServerEvent chooses the player serving the first game
func FirstServerEvent(p Player) Event {
	return Event{Type: EventRegisterFirstServer, Player: p}
}

// StartPlayEvent starts the next game, tiebreak or super-tiebreak
func StartPlayEvent() Event {
	return Event{Type: EventStartPlay}
}

// PointEvent awards a point to p
func PointEvent(p Player) Event {
	return Event{Type: EventRegisterPoint, Player: p}
}

func (e Event) String() string {
	if e.Type == EventStartPlay {
		return e.Type.String()
	}
	return fmt.Sprintf("%s(%s)", e.Type, e.Player)
}

// ChangeKind describes one effect of an accepted event
type ChangeKind string

const (
	ChangeServerChosen         ChangeKind = "server_chosen"
	ChangeServerChanged        ChangeKind = "server_changed"
	ChangeSetStarted           ChangeKind = "set_started"
	ChangeGameStarted          ChangeKind = "game_started"
	ChangeTiebreakStarted      ChangeKind = "tiebreak_started"
	ChangeSuperTiebreakStarted ChangeKind = "super_tiebreak_started"
	ChangePointWon             ChangeKind = "point_won"
	ChangeGameWon              ChangeKind = "game_won"
	ChangeSetWon               ChangeKind = "set_won"
	ChangeMatchWon             ChangeKind = "match_won"
)

// Change is a single effect, in the order it was applied.
//
// Player is the new server for server changes and the winner for wins. Score
// carries the set score after a game, the recorded set score after a set and
// the match score after the match.
type Change struct {
	Kind   ChangeKind
	Player Player
	Score  Score[int]
}

func (c Change) String() string {
	switch c.Kind {
	case ChangeGameWon, ChangeSetWon, ChangeMatchWon:
		return fmt.Sprintf("%s %s (%s)", c.Kind, c.Player, c.Score)
	case ChangeServerChosen, ChangeServerChanged, ChangePointWon:
		return fmt.Sprintf("%s %s", c.Kind, c.Player)
	}
	return string(c.Kind)
}
