package progression

import (
	"fmt"

	"github.com/udisondev/expgrowth/internal/data"
)

// Progress is everything a creature record reads back for one
// (experience, curve) pair.
type Progress struct {
	CurveID        data.GrowthCurveID
	Experience     uint32
	Level          uint8
	ExpForLevel    uint32 // threshold of the current level
	ExpToNextLevel uint32 // width of the current level band, 0 at level 100
	ExpRemaining   uint32
	Fraction       float64
	Nature         NatureID
}

// Compute resolves the curve and fills a Progress for exp.
// Unknown curve IDs return an error wrapping data.ErrInvalidCurveIdentifier.
func Compute(exp uint32, id data.GrowthCurveID) (Progress, error) {
	table, err := data.LookupGrowthCurve(id)
	if err != nil {
		return Progress{}, err
	}
	return ComputeWithTable(exp, id, table)
}

// ComputeWithTable is Compute for an already resolved table.
// The rest of Progress is still filled when the fraction fails.
func ComputeWithTable(exp uint32, id data.GrowthCurveID, table *data.GrowthCurveTable) (Progress, error) {
	level := LevelForExp(exp, table)

	p := Progress{
		CurveID:        id,
		Experience:     exp,
		Level:          uint8(level),
		ExpForLevel:    ExpForLevel(level, table),
		ExpToNextLevel: ExpToNextLevel(level, table),
		ExpRemaining:   ExpRemaining(exp, table),
		Nature:         NatureForExp(exp),
	}

	fraction, err := ProgressFraction(level, exp, table)
	// LevelForExp never lands on a zero-width band of a table that passes
	// Validate; only a table with a nonzero level 1 threshold reaches this.
	if err != nil {
		return p, fmt.Errorf("curve %s: %w", id, err)
	}
	p.Fraction = fraction
	return p, nil
}
