package tennis

// marginCounter counts units won by each player. A player wins on reaching
// target with a lead of at least margin, or on reaching ceiling when it is set.
type marginCounter struct {
	score   Score[int]
	target  int
	margin  int
	ceiling int // 0 = unbounded
}

func newMarginCounter(players [2]Player, target, margin, ceiling int) marginCounter {
	return marginCounter{
		score:   newScore(players, 0),
		target:  target,
		margin:  margin,
		ceiling: ceiling,
	}
}

// won assumes p is one of the counter's players
func (c marginCounter) won(p Player) bool {
	mine, theirs := c.score.get(p), c.score.other(p)
	if c.ceiling > 0 && mine >= c.ceiling {
		return true
	}
	return mine >= c.target && mine-theirs >= c.margin
}

func (c marginCounter) decided() bool {
	return c.won(c.score.players[0]) || c.won(c.score.players[1])
}

// increment adds one unit for p. ok is false when the counter was already decided.
func (c marginCounter) increment(p Player) (next marginCounter, ok bool, err error) {
	v, err := c.score.Get(p)
	if err != nil {
		return c, false, err
	}
	if c.decided() {
		return c, false, nil
	}
	c.score = c.score.with(p, v+1)
	return c, true, nil
}

func (c marginCounter) total() int {
	return c.score.values[0] + c.score.values[1]
}

func (c marginCounter) level(n int) bool {
	return c.score.values[0] == n && c.score.values[1] == n
}
