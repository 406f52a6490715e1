package progression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatureForExp(t *testing.T) {
	tests := []struct {
		exp  uint32
		want NatureID
	}{
		{0, NatureHardy},
		{1, NatureLonely},
		{24, NatureQuirky},
		{25, NatureHardy},
		{26, NatureLonely},
		{125000, NatureHardy},
		{103240, NatureModest},
		{math.MaxUint32, NatureCalm},
	}

	for _, tt := range tests {
		got := NatureForExp(tt.exp)
		if got != tt.want {
			t.Errorf("NatureForExp(%d) = %v, want %v", tt.exp, got, tt.want)
		}
	}
}

func TestNatureForExp_Range(t *testing.T) {
	for exp := uint32(0); exp < 1000; exp++ {
		n := NatureForExp(exp)
		assert.Less(t, int(n), NatureCount)
		assert.Equal(t, NatureID(exp%25), n)
	}
}

func TestNatureID_String(t *testing.T) {
	assert.Equal(t, "Hardy", NatureHardy.String())
	assert.Equal(t, "Quirky", NatureQuirky.String())
	assert.Equal(t, "Unknown", NatureID(25).String())
}
