// Package tennis scores a tennis match point by point.
//
// The main type is Match, which holds the match score, the completed sets, the
// current server and the phase of play, and accepts three events: choosing the
// first server, starting play, and awarding a point.
//
// # Basic Usage
//
//	alice, bob := tennis.Singles("Alice"), tennis.Singles("Bob")
//	m, err := tennis.NewMatch(alice, bob, tennis.DefaultSettings())
//	if err != nil {
//	    return err
//	}
//	_ = m.RegisterFirstServer(alice)
//	_ = m.StartPlay()
//	_ = m.RegisterPoint(alice)
//	score, _ := m.CurrentGameScore() // 15-0
//
// After each game the match waits between games; StartPlay begins the next game,
// tiebreak or super-tiebreak depending on the score and the Settings.
//
// # Architecture
//
// Match delegates scoring to value-typed counters:
//   - GameCounter: advantage or golden point games
//   - SetCounter: tiebreak, advantage or super-tiebreak sets
//   - TiebreakCounter: 7 and 10 point tiebreaks with serve rotation
//
// All three share one margin rule (reach a target with a minimum lead). Events
// run through a transition function over a copy of the match state, so an event
// that fails leaves the match untouched. Apply returns the list of Changes an
// event produced for callers that keep an event log.
package tennis
