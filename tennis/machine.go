package tennis

import (
	"fmt"
	"slices"
)

// state is everything a match knows. It is passed and returned by value so a
// rejected event never leaves a partial update behind.
type state struct {
	players    [2]Player
	settings   Settings
	matchScore Score[int]
	sets       []Score[int]
	server     Player
	hasServer  bool
	set        SetCounter
	hasSet     bool
	phase      phase
}

func newState(players [2]Player, settings Settings) state {
	return state{
		players:    players,
		settings:   settings,
		matchScore: newScore(players, 0),
		phase:      notStarted{},
	}
}

// step is the transition function of the match: it maps the current state and
// an event to the next state and the changes that produced it.
func step(st state, ev Event) (state, []Change, error) {
	t := &transition{st: st}
	var err error
	switch ev.Type {
	case EventRegisterFirstServer:
		err = t.registerFirstServer(ev.Player)
	case EventStartPlay:
		err = t.startPlay()
	case EventRegisterPoint:
		err = t.registerPoint(ev.Player)
	default:
		err = fmt.Errorf("tennis: unknown event type %q", ev.Type)
	}
	if err != nil {
		return st, nil, err
	}
	return t.st, t.changes, nil
}

type transition struct {
	st      state
	changes []Change
}

func (t *transition) emit(kind ChangeKind, p Player, score Score[int]) {
	t.changes = append(t.changes, Change{Kind: kind, Player: p, Score: score})
}

func (t *transition) registerFirstServer(p Player) error {
	switch t.st.phase.(type) {
	case finished:
		return ErrMatchFinished
	case notStarted:
		if t.st.hasServer {
			return ErrServerAlreadyChosen
		}
		if _, err := t.st.matchScore.index(p); err != nil {
			return err
		}
		t.st.server, t.st.hasServer = p, true
		t.emit(ChangeServerChosen, p, Score[int]{})
		return nil
	default:
		return ErrServerAlreadyChosen
	}
}

func (t *transition) startPlay() error {
	switch t.st.phase.(type) {
	case notStarted:
		if !t.st.hasServer {
			return ErrNoServerChosen
		}
		t.ensureSet()
		t.startGame()
		return nil
	case betweenGames:
		t.ensureSet()
		sets := t.st.matchScore.values
		switch {
		case t.st.settings.NeedsSuperTiebreak(sets[0], sets[1]):
			t.startSuperTiebreak(false)
		case t.st.set.NeedsSuperTiebreak():
			t.startSuperTiebreak(true)
		case t.st.set.NeedsTiebreak():
			t.st.phase = tiebreakInProgress{
				firstServer: t.st.server,
				counter:     newTiebreakCounter(t.st.players, TiebreakTarget),
			}
			t.emit(ChangeTiebreakStarted, t.st.server, Score[int]{})
		default:
			t.startGame()
		}
		return nil
	case gameInProgress:
		return ErrGameInProgress
	case tiebreakInProgress:
		return ErrTiebreakInProgress
	case superTiebreakInProgress:
		return ErrSuperTiebreakInProgress
	case finished:
		return ErrMatchFinished
	}
	return fmt.Errorf("tennis: unhandled phase %T", t.st.phase)
}

func (t *transition) registerPoint(p Player) error {
	switch ph := t.st.phase.(type) {
	case notStarted, betweenGames:
		return ErrNoPlayInProgress
	case finished:
		return ErrMatchFinished
	case gameInProgress:
		game, err := ph.game.Increment(p)
		if err != nil {
			return err
		}
		t.st.phase = gameInProgress{game: game}
		t.emit(ChangePointWon, p, Score[int]{})
		if game.HasWon(p) {
			return t.finishGame(p)
		}
		return nil
	case tiebreakInProgress:
		counter, err := ph.counter.Increment(p)
		if err != nil {
			return err
		}
		t.st.phase = tiebreakInProgress{firstServer: ph.firstServer, counter: counter}
		t.emit(ChangePointWon, p, Score[int]{})
		if counter.IsWon(p) {
			if err := t.finishGame(p); err != nil {
				return err
			}
			// The receiver of the tiebreak's first point serves next.
			t.setServer(t.st.matchScore.opponent(ph.firstServer))
			return nil
		}
		if counter.ShouldChangeServer() {
			t.changeServer()
		}
		return nil
	case superTiebreakInProgress:
		counter, err := ph.counter.Increment(p)
		if err != nil {
			return err
		}
		t.st.phase = superTiebreakInProgress{inSet: ph.inSet, counter: counter}
		t.emit(ChangePointWon, p, Score[int]{})
		if counter.IsWon(p) {
			if ph.inSet {
				return t.finishGame(p)
			}
			return t.finishSet(p, counter.Score())
		}
		if counter.ShouldChangeServer() {
			t.changeServer()
		}
		return nil
	}
	return fmt.Errorf("tennis: unhandled phase %T", t.st.phase)
}

func (t *transition) ensureSet() {
	if t.st.hasSet {
		return
	}
	sets := t.st.matchScore.values
	final := t.st.settings.IsFinalSet(sets[0], sets[1])
	t.st.set = newSetCounter(t.st.players, VariantFor(final, t.st.settings.FinalSet))
	t.st.hasSet = true
	t.emit(ChangeSetStarted, Player{}, Score[int]{})
}

func (t *transition) startGame() {
	t.st.phase = gameInProgress{game: newGameCounter(t.st.players, t.st.settings.GameScoring)}
	t.emit(ChangeGameStarted, t.st.server, Score[int]{})
}

func (t *transition) startSuperTiebreak(inSet bool) {
	t.st.phase = superTiebreakInProgress{
		inSet:   inSet,
		counter: newTiebreakCounter(t.st.players, SuperTiebreakTarget),
	}
	t.emit(ChangeSuperTiebreakStarted, t.st.server, Score[int]{})
}

func (t *transition) finishGame(winner Player) error {
	set, err := t.st.set.Increase(winner)
	if err != nil {
		return err
	}
	t.st.set = set
	t.emit(ChangeGameWon, winner, set.Score())
	if set.IsWon(winner) {
		return t.finishSet(winner, set.Score())
	}
	t.changeServer()
	t.st.phase = betweenGames{}
	return nil
}

func (t *transition) finishSet(winner Player, record Score[int]) error {
	won := t.st.matchScore.get(winner) + 1
	t.st.matchScore = t.st.matchScore.with(winner, won)
	t.st.sets = append(slices.Clip(t.st.sets), record)
	t.st.set, t.st.hasSet = SetCounter{}, false
	t.emit(ChangeSetWon, winner, record)
	if t.st.settings.IsMatchFinished(won) {
		t.st.phase = finished{winner: winner}
		t.emit(ChangeMatchWon, winner, t.st.matchScore)
		return nil
	}
	t.changeServer()
	t.st.phase = betweenGames{}
	return nil
}

func (t *transition) changeServer() {
	t.setServer(t.st.matchScore.opponent(t.st.server))
}

func (t *transition) setServer(p Player) {
	if t.st.server == p {
		return
	}
	t.st.server = p
	t.emit(ChangeServerChanged, p, Score[int]{})
}
