// Package scoring converts box-score stat lines into fantasy points.
package scoring

// StatLine is one player's box score for one game.
type StatLine struct {
	Points              int `json:"pts"`
	Rebounds            int `json:"reb"`
	Assists             int `json:"ast"`
	Steals              int `json:"stl"`
	Blocks              int `json:"blk"`
	Turnovers           int `json:"to"`
	FieldGoalsMade      int `json:"fgm"`
	FreeThrowsMade      int `json:"ftm"`
	FreeThrowsAttempted int `json:"fta"`
	ThreePointersMade   int `json:"3pm"`
}

// Weights is the per-unit value of each category plus the stacked bonus schedule.
type Weights struct {
	FieldGoalsMade      float64
	FreeThrowsMade      float64
	FreeThrowsAttempted float64
	ThreePointersMade   float64
	Rebounds            float64
	Assists             float64
	Steals              float64
	Blocks              float64
	Turnovers           float64
	Points              float64

	BonusThreshold  int
	DoubleDouble    float64
	TripleDouble    float64 // added on top of DoubleDouble
	QuadrupleDouble float64 // added on top of TripleDouble
}

// DefaultWeights returns the league's scoring table.
func DefaultWeights() Weights {
	return Weights{
		FieldGoalsMade:      2,
		FreeThrowsMade:      1,
		FreeThrowsAttempted: -1,
		ThreePointersMade:   1,
		Rebounds:            1,
		Assists:             2,
		Steals:              4,
		Blocks:              4,
		Turnovers:           -2,
		Points:              1,

		BonusThreshold:  10,
		DoubleDouble:    5,
		TripleDouble:    8,
		QuadrupleDouble: 13,
	}
}

// DoubleCategories counts headline categories (PTS, REB, AST, STL, BLK) at or above the bonus threshold.
func (w Weights) DoubleCategories(s StatLine) int {
	threshold := w.BonusThreshold
	if threshold <= 0 {
		threshold = 10
	}

	n := 0
	for _, v := range []int{s.Points, s.Rebounds, s.Assists, s.Steals, s.Blocks} {
		if v >= threshold {
			n++
		}
	}
	return n
}

// Bonus returns the stacked multi-category bonus.
func (w Weights) Bonus(s StatLine) float64 {
	n := w.DoubleCategories(s)
	bonus := 0.0
	if n >= 2 {
		bonus += w.DoubleDouble
	}
	if n >= 3 {
		bonus += w.TripleDouble
	}
	if n >= 4 {
		bonus += w.QuadrupleDouble
	}
	return bonus
}

// FantasyPoints scores a stat line, bonus included.
func (w Weights) FantasyPoints(s StatLine) float64 {
	total := float64(s.FieldGoalsMade)*w.FieldGoalsMade +
		float64(s.FreeThrowsMade)*w.FreeThrowsMade +
		float64(s.FreeThrowsAttempted)*w.FreeThrowsAttempted +
		float64(s.ThreePointersMade)*w.ThreePointersMade +
		float64(s.Rebounds)*w.Rebounds +
		float64(s.Assists)*w.Assists +
		float64(s.Steals)*w.Steals +
		float64(s.Blocks)*w.Blocks +
		float64(s.Turnovers)*w.Turnovers +
		float64(s.Points)*w.Points

	return total + w.Bonus(s)
}
