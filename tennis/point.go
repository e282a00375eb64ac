package tennis

// GamePoint is a player's standing within a game
type GamePoint uint8

const (
	Zero GamePoint = iota
	Fifteen
	Thirty
	Forty
	Advantage
	Game // the game has been won
)

var gamePointNames = [...]string{"0", "15", "30", "40", "AD", "GAME"}

func (g GamePoint) String() string {
	if int(g) < len(gamePointNames) {
		return gamePointNames[g]
	}
	return "?"
}

// Next returns the following step, stopping at Game
func (g GamePoint) Next() GamePoint {
	if g >= Game {
		return Game
	}
	return g + 1
}
