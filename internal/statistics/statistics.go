package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MatchResult is the outcome of one simulated match. Player indices follow
// the order the players were given to the simulator.
type MatchResult struct {
	Seed           int64    // RNG seed for this match (for replay)
	FirstServer    int      // index of the player serving first
	Winner         int      // index of the winner
	Sets           [][2]int // recorded games per set
	Points         int
	Tiebreaks      int
	SuperTiebreaks int
}

// Statistics aggregates simulated matches
type Statistics struct {
	Matches int
	Wins    [2]int

	// wins by whoever served first, to expose any first-serve edge
	FirstServerWins int

	Sets           int
	SetScores      map[string]int // "6-4" style keys, winner first
	Tiebreaks      int
	SuperTiebreaks int

	Points     int
	SumPoints2 float64 // sum of squares for variance calculation
	Values     []int   // points per match, for median/percentile
}

func (s *Statistics) Add(result MatchResult) {
	s.Matches++
	s.Wins[result.Winner]++
	if result.Winner == result.FirstServer {
		s.FirstServerWins++
	}

	if s.SetScores == nil {
		s.SetScores = make(map[string]int)
	}
	for _, set := range result.Sets {
		s.Sets++
		hi, lo := max(set[0], set[1]), min(set[0], set[1])
		s.SetScores[fmt.Sprintf("%d-%d", hi, lo)]++
	}
	s.Tiebreaks += result.Tiebreaks
	s.SuperTiebreaks += result.SuperTiebreaks

	s.Points += result.Points
	s.SumPoints2 += float64(result.Points) * float64(result.Points)
	s.Values = append(s.Values, result.Points)
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Matches += other.Matches
	for i := range s.Wins {
		s.Wins[i] += other.Wins[i]
	}
	s.FirstServerWins += other.FirstServerWins
	s.Sets += other.Sets
	if s.SetScores == nil {
		s.SetScores = make(map[string]int, len(other.SetScores))
	}
	for k, v := range other.SetScores {
		s.SetScores[k] += v
	}
	s.Tiebreaks += other.Tiebreaks
	s.SuperTiebreaks += other.SuperTiebreaks
	s.Points += other.Points
	s.SumPoints2 += other.SumPoints2
	s.Values = append(s.Values, other.Values...)
}

// WinRate returns the share of matches won by player i
func (s *Statistics) WinRate(i int) float64 {
	if s.Matches == 0 || i < 0 || i > 1 {
		return 0
	}
	return float64(s.Wins[i]) / float64(s.Matches)
}

// WinRateCI95 returns the normal approximation 95% interval for WinRate(i)
func (s *Statistics) WinRateCI95(i int) (float64, float64) {
	if s.Matches == 0 {
		return 0, 0
	}
	p := s.WinRate(i)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Matches))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanPoints returns the average number of points per match
func (s *Statistics) MeanPoints() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Points) / float64(s.Matches)
}

// Variance returns the sample variance of points per match
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.MeanPoints()
	return (s.SumPoints2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Percentile returns the points-per-match value at p (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]int, len(s.Values))
	copy(sorted, s.Values)
	sort.Ints(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}
	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// SetScoreKeys returns the observed set scores, most frequent first
func (s *Statistics) SetScoreKeys() []string {
	keys := make([]string, 0, len(s.SetScores))
	for k := range s.SetScores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if s.SetScores[keys[i]] != s.SetScores[keys[j]] {
			return s.SetScores[keys[i]] > s.SetScores[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Validate checks the aggregate is internally consistent
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid match count: %d", s.Matches)
	}
	if s.Wins[0]+s.Wins[1] != s.Matches {
		return fmt.Errorf("win mismatch: %d + %d != %d matches", s.Wins[0], s.Wins[1], s.Matches)
	}
	if len(s.Values) != s.Matches {
		return fmt.Errorf("values length mismatch: %d values for %d matches", len(s.Values), s.Matches)
	}
	total := 0
	for _, v := range s.SetScores {
		total += v
	}
	if total != s.Sets {
		return fmt.Errorf("set score mismatch: %d recorded for %d sets", total, s.Sets)
	}
	if s.Sets < s.Matches {
		return fmt.Errorf("fewer sets (%d) than matches (%d)", s.Sets, s.Matches)
	}
	return nil
}
