package tennis

import "errors"

var (
	// ErrServerAlreadyChosen is returned when the first server is registered twice
	// or once play has started.
	ErrServerAlreadyChosen = errors.New("tennis: server has already been chosen")
	// ErrNoServerChosen is returned when play starts before a server is chosen.
	ErrNoServerChosen = errors.New("tennis: server has not been chosen")
	// ErrNoPlayInProgress is returned when a point is registered between games.
	ErrNoPlayInProgress = errors.New("tennis: no play is in progress")
	ErrGameInProgress   = errors.New("tennis: a game is in progress")
	// ErrTiebreakInProgress and ErrSuperTiebreakInProgress reject StartPlay while
	// the corresponding tiebreak is running.
	ErrTiebreakInProgress      = errors.New("tennis: a tiebreak is in progress")
	ErrSuperTiebreakInProgress = errors.New("tennis: a super-tiebreak is in progress")
	// ErrMatchFinished is returned for every event after the winner is decided.
	ErrMatchFinished = errors.New("tennis: match is finished")

	ErrUnknownPlayer   = errors.New("tennis: unknown player")
	ErrDuplicatePlayer = errors.New("tennis: players must be distinct")
	ErrEmptyPlayer     = errors.New("tennis: player has no name")
	ErrInvalidSettings = errors.New("tennis: invalid match settings")

	// Counter misuse: an increment after the unit already concluded.
	ErrGameAlreadyWon     = errors.New("tennis: game is already won")
	ErrSetAlreadyWon      = errors.New("tennis: set is already won")
	ErrTiebreakAlreadyWon = errors.New("tennis: tiebreak is already won")
)
