// Package progression converts between experience and level on a growth curve
// and derives the values shown next to a creature's level: experience still
// required, progress bar fraction and the legacy experience-based nature.
//
// Every function is pure. Tables come from data.LookupGrowthCurve and are
// shared read-only, so callers may use them from any goroutine.
package progression

import (
	"errors"
	"fmt"
	"sort"

	"github.com/udisondev/expgrowth/internal/data"
)

// ErrDegenerateCurveBand is returned by ProgressFraction when two adjacent
// thresholds are equal and the band width is zero.
var ErrDegenerateCurveBand = errors.New("degenerate growth curve band")

// LevelForExp returns the level reached with exp on the given curve.
// Result is always in [1, 100].
func LevelForExp(exp uint32, table *data.GrowthCurveTable) int32 {
	return LevelForExpFrom(exp, data.MinLevel, table)
}

// LevelForExpFrom is LevelForExp with the scan starting at startLevel.
// Used on level-up checks where the previous level is a known lower bound.
// A startLevel whose threshold exceeds exp falls back to a full scan.
func LevelForExpFrom(exp uint32, startLevel int32, table *data.GrowthCurveTable) int32 {
	if exp >= table[data.MaxLevel-1] {
		return data.MaxLevel
	}
	if startLevel < data.MinLevel || startLevel > data.MaxLevel-1 || table[startLevel-1] > exp {
		startLevel = data.MinLevel
	}

	// exp < table[99] here, so the scan stops at 99 at the latest.
	level := startLevel
	for level < data.MaxLevel-1 {
		if table[level] > exp {
			break
		}
		level++
	}
	return level
}

// LevelForExpBinary returns the same result as LevelForExp using a binary search.
func LevelForExpBinary(exp uint32, table *data.GrowthCurveTable) int32 {
	if exp >= table[data.MaxLevel-1] {
		return data.MaxLevel
	}
	// First index whose threshold exceeds exp, which is also the level below it.
	idx := sort.Search(data.MaxLevel, func(i int) bool {
		return table[i] > exp
	})
	if idx < data.MinLevel {
		return data.MinLevel
	}
	return int32(idx)
}

// ExpForLevel returns the minimum experience for level.
// Returns 0 for level <= 1. Levels above 100 are clamped to 100.
func ExpForLevel(level int32, table *data.GrowthCurveTable) uint32 {
	if level <= data.MinLevel {
		return 0
	}
	if level > data.MaxLevel {
		level = data.MaxLevel
	}
	return expForLevelUnchecked(level, table)
}

// expForLevelUnchecked skips clamping; level must be in [1, 100].
func expForLevelUnchecked(level int32, table *data.GrowthCurveTable) uint32 {
	return table[level-1]
}

// ExpToNextLevel returns the width of the band between level and level+1.
// Returns 0 at level 100 and above. Levels below 1 are treated as 1.
func ExpToNextLevel(level int32, table *data.GrowthCurveTable) uint32 {
	if level >= data.MaxLevel {
		return 0
	}
	if level < data.MinLevel {
		level = data.MinLevel
	}
	return expForLevelUnchecked(level+1, table) - expForLevelUnchecked(level, table)
}

// ExpRemaining returns how much experience is still missing before the
// next level-up. Returns 0 once exp reaches the level 100 threshold.
func ExpRemaining(exp uint32, table *data.GrowthCurveTable) uint32 {
	level := LevelForExp(exp, table)
	if level >= data.MaxLevel {
		return 0
	}
	return expForLevelUnchecked(level+1, table) - exp
}

// ProgressFraction returns how far exp has advanced through level's band,
// in [0, 1) when exp is consistent with level (level == LevelForExp(exp)).
// Inconsistent inputs are not rejected; the plain arithmetic result is
// returned and may fall outside [0, 1).
//
// Returns 0 at level 100. A zero-width band returns 0 and ErrDegenerateCurveBand.
func ProgressFraction(level int32, exp uint32, table *data.GrowthCurveTable) (float64, error) {
	if level >= data.MaxLevel {
		return 0, nil
	}
	if level < data.MinLevel {
		level = data.MinLevel
	}

	current := expForLevelUnchecked(level, table)
	next := expForLevelUnchecked(level+1, table)
	if next == current {
		return 0, fmt.Errorf("%w: levels %d and %d both require %d exp",
			ErrDegenerateCurveBand, level, level+1, current)
	}

	return (float64(exp) - float64(current)) / float64(next-current), nil
}
