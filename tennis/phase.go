package tennis

// PhaseKind identifies where a match is in its lifecycle
type PhaseKind uint8

const (
	NotStarted PhaseKind = iota
	GameInProgress
	BetweenGames
	TiebreakInProgress
	SuperTiebreakInProgress
	Finished
)

var phaseNames = [...]string{
	"not_started",
	"game_in_progress",
	"between_games",
	"tiebreak_in_progress",
	"super_tiebreak_in_progress",
	"finished",
}

func (k PhaseKind) String() string {
	if int(k) < len(phaseNames) {
		return phaseNames[k]
	}
	return "unknown"
}

// phase is the closed set of match phases. Each variant carries only the data
// it owns.
type phase interface {
	kind() PhaseKind
}

type notStarted struct{}

type gameInProgress struct {
	game GameCounter
}

type betweenGames struct{}

type tiebreakInProgress struct {
	firstServer Player
	counter     TiebreakCounter
}

type superTiebreakInProgress struct {
	// inSet is true when the super-tiebreak replaces the 13th game of a final
	// set; otherwise it stands in for a whole set.
	inSet   bool
	counter TiebreakCounter
}

type finished struct {
	winner Player
}

func (notStarted) kind() PhaseKind              { return NotStarted }
func (gameInProgress) kind() PhaseKind          { return GameInProgress }
func (betweenGames) kind() PhaseKind            { return BetweenGames }
func (tiebreakInProgress) kind() PhaseKind      { return TiebreakInProgress }
func (superTiebreakInProgress) kind() PhaseKind { return SuperTiebreakInProgress }
func (finished) kind() PhaseKind                { return Finished }
