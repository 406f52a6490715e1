package data

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGrowthCurve(t *testing.T) {
	tests := []struct {
		id       GrowthCurveID
		level2   uint32
		level50  uint32
		level100 uint32
	}{
		{GrowthMediumFast, 8, 125000, 1000000},
		{GrowthSlightlyFast, 16, 118720, 849970},
		{GrowthSlightlySlow, 16, 143680, 949930},
		{GrowthMediumSlow, 9, 117360, 1059860},
		{GrowthFast, 6, 100000, 800000},
		{GrowthSlow, 10, 156250, 1250000},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			table, err := LookupGrowthCurve(tt.id)
			require.NoError(t, err)
			require.NotNil(t, table)

			assert.Equal(t, uint32(0), table[0])
			assert.Equal(t, tt.level2, table[1])
			assert.Equal(t, tt.level50, table[49])
			assert.Equal(t, tt.level100, table[99])
		})
	}
}

func TestLookupGrowthCurve_Invalid(t *testing.T) {
	for _, id := range []GrowthCurveID{6, 7, 100, 255} {
		table, err := LookupGrowthCurve(id)
		assert.Nil(t, table, "id %d must not fall back to a default curve", id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCurveIdentifier))
		assert.Contains(t, err.Error(), strconv.Itoa(int(id)))
	}
}

func TestLookupGrowthCurve_SharedTable(t *testing.T) {
	a, err := LookupGrowthCurve(GrowthSlow)
	require.NoError(t, err)
	b, err := LookupGrowthCurve(GrowthSlow)
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestGrowthCurvesMonotonic(t *testing.T) {
	for _, id := range GrowthCurveIDs() {
		table, err := LookupGrowthCurve(id)
		require.NoError(t, err)

		assert.Equal(t, uint32(0), table[0], "curve %s: level 1 must require 0 exp", id)
		for i := 0; i < MaxLevel-1; i++ {
			if table[i] > table[i+1] {
				t.Errorf("curve %s: table[%d]=%d > table[%d]=%d", id, i, table[i], i+1, table[i+1])
			}
		}
	}
	require.NoError(t, ValidateGrowthCurves())
}

func TestGrowthCurveTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *GrowthCurveTable)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(*GrowthCurveTable) {},
		},
		{
			name:    "nonzero first level",
			mutate:  func(t *GrowthCurveTable) { t[0] = 1 },
			wantErr: true,
		},
		{
			name:    "decreasing threshold",
			mutate:  func(t *GrowthCurveTable) { t[60] = t[58] },
			wantErr: true,
		},
		{
			name:   "flat band allowed",
			mutate: func(t *GrowthCurveTable) { t[10] = t[9] },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := growthCurves[GrowthMediumFast] // copy
			tt.mutate(&table)

			err := table.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedCurve)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGrowthCurves_Independent(t *testing.T) {
	seen := make(map[GrowthCurveTable]GrowthCurveID, growthCurveCount)
	for _, id := range GrowthCurveIDs() {
		table, err := LookupGrowthCurve(id)
		require.NoError(t, err)
		if prev, dup := seen[*table]; dup {
			t.Errorf("curve %s duplicates curve %s", id, prev)
		}
		seen[*table] = id
	}
}

func TestParseGrowthCurveID(t *testing.T) {
	tests := []struct {
		in      string
		want    GrowthCurveID
		wantErr bool
	}{
		{in: "0", want: GrowthMediumFast},
		{in: "5", want: GrowthSlow},
		{in: "medium_slow", want: GrowthMediumSlow},
		{in: " Fast ", want: GrowthFast},
		{in: "slightly_fast", want: GrowthSlightlyFast},
		{in: "6", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "255", wantErr: true},
		{in: "erratic", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrowthCurveID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCurveIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrowthCurveID_String(t *testing.T) {
	assert.Equal(t, "medium_fast", GrowthMediumFast.String())
	assert.Equal(t, "slow", GrowthSlow.String())
	assert.Equal(t, "growth_curve(255)", GrowthCurveID(255).String())
	assert.Len(t, GrowthCurveIDs(), 6)
}
