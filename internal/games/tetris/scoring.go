package tetris

// ScoreTable holds line-clear values. Both the line value and the T-spin
// bonus are multiplied by (lines + 1).
type ScoreTable struct {
	Lines      [4]int
	TSpinBonus int
}

// DefaultScoreTable is the classic 40/100/300/1200 table with a 400 T-spin bonus.
var DefaultScoreTable = ScoreTable{
	Lines:      [4]int{40, 100, 300, 1200},
	TSpinBonus: 400,
}

// Score returns the points for clearing lines (1..4) with the default table.
func Score(lines int, tspin bool) int {
	return DefaultScoreTable.Score(lines, tspin)
}

// Score returns the points for clearing lines (1..4). Anything else scores 0.
func (t ScoreTable) Score(lines int, tspin bool) int {
	if lines < 1 || lines > len(t.Lines) {
		return 0
	}
	points := t.Lines[lines-1] * (lines + 1)
	if tspin {
		points += t.TSpinBonus * (lines + 1)
	}
	return points
}

// LevelPolicy derives the level from total lines cleared.
type LevelPolicy struct {
	Start         int
	Max           int
	LinesPerLevel int
	Progression   bool
	Gravity       []int // ticks per row, indexed by level
}

// Level returns max(Start, lines/LinesPerLevel) capped at Max, or Start
// when progression is off.
func (lp LevelPolicy) Level(lines int) int {
	if !lp.Progression || lp.LinesPerLevel <= 0 {
		return lp.Start
	}
	return min(max(lp.Start, lines/lp.LinesPerLevel), lp.Max)
}

// GravityFor returns ticks per row at a level. Levels past the table use its
// last entry.
func (lp LevelPolicy) GravityFor(level int) int {
	if len(lp.Gravity) == 0 {
		return 1
	}
	return lp.Gravity[min(max(level, 0), len(lp.Gravity)-1)]
}
