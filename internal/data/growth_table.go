package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level bounds shared by every growth curve.
const (
	MinLevel = 1
	MaxLevel = 100
)

var (
	// ErrInvalidCurveIdentifier is returned for growth curve IDs outside the fixed set.
	ErrInvalidCurveIdentifier = errors.New("invalid growth curve identifier")
	// ErrMalformedCurve is returned by Validate when a table breaks its invariants.
	ErrMalformedCurve = errors.New("malformed growth curve")
)

// GrowthCurveID identifies one of the fixed growth curves.
type GrowthCurveID uint8

const (
	GrowthMediumFast GrowthCurveID = iota
	GrowthSlightlyFast
	GrowthSlightlySlow
	GrowthMediumSlow
	GrowthFast
	GrowthSlow

	growthCurveCount = iota
)

var growthCurveNames = [growthCurveCount]string{
	GrowthMediumFast:   "medium_fast",
	GrowthSlightlyFast: "slightly_fast",
	GrowthSlightlySlow: "slightly_slow",
	GrowthMediumSlow:   "medium_slow",
	GrowthFast:         "fast",
	GrowthSlow:         "slow",
}

// Valid reports whether id belongs to the defined set.
func (id GrowthCurveID) Valid() bool {
	return int(id) < growthCurveCount
}

func (id GrowthCurveID) String() string {
	if !id.Valid() {
		return "growth_curve(" + strconv.Itoa(int(id)) + ")"
	}
	return growthCurveNames[id]
}

// GrowthCurveIDs returns every defined curve ID in ascending order.
func GrowthCurveIDs() []GrowthCurveID {
	ids := make([]GrowthCurveID, growthCurveCount)
	for i := range ids {
		ids[i] = GrowthCurveID(i)
	}
	return ids
}

// ParseGrowthCurveID accepts either the numeric ID ("3") or the curve name ("medium_slow").
func ParseGrowthCurveID(s string) (GrowthCurveID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= growthCurveCount {
			return 0, fmt.Errorf("%w: %d", ErrInvalidCurveIdentifier, n)
		}
		return GrowthCurveID(n), nil
	}
	name := strings.ToLower(s)
	for i, known := range growthCurveNames {
		if known == name {
			return GrowthCurveID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCurveIdentifier, s)
}

// GrowthCurveTable holds the minimum experience for each level.
// Index = level-1, so index 0 (level 1) is always 0.
type GrowthCurveTable [MaxLevel]uint32

// LookupGrowthCurve returns the table for id.
// The returned table is shared process-wide and must not be modified.
func LookupGrowthCurve(id GrowthCurveID) (*GrowthCurveTable, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCurveIdentifier, uint8(id))
	}
	return &growthCurves[id], nil
}

// Validate checks that the table starts at 0 and never decreases.
func (t *GrowthCurveTable) Validate() error {
	if t[0] != 0 {
		return fmt.Errorf("%w: level 1 requires %d exp, want 0", ErrMalformedCurve, t[0])
	}
	for i := 1; i < MaxLevel; i++ {
		if t[i] < t[i-1] {
			return fmt.Errorf("%w: level %d requires %d exp, less than level %d (%d)",
				ErrMalformedCurve, i+1, t[i], i, t[i-1])
		}
	}
	return nil
}

// ValidateGrowthCurves runs Validate over every registered curve.
// Вызывается при старте (cmd/expcalc/main.go).
func ValidateGrowthCurves() error {
	for _, id := range GrowthCurveIDs() {
		if err := growthCurves[id].Validate(); err != nil {
			return fmt.Errorf("curve %s: %w", id, err)
		}
	}
	return nil
}

// growthCurves — compiled-in thresholds, indexed by GrowthCurveID.
// Values follow the first-generation formulas with integer truncation;
// level 1 is forced to 0.
var growthCurves = [growthCurveCount]GrowthCurveTable{
	// GrowthMediumFast
	{
		0, 8, 27, 64, 125, 216, 343, 512, 729, 1000, // 1-10
		1331, 1728, 2197, 2744, 3375, 4096, 4913, 5832, 6859, 8000, // 11-20
		9261, 10648, 12167, 13824, 15625, 17576, 19683, 21952, 24389, 27000, // 21-30
		29791, 32768, 35937, 39304, 42875, 46656, 50653, 54872, 59319, 64000, // 31-40
		68921, 74088, 79507, 85184, 91125, 97336, 103823, 110592, 117649, 125000, // 41-50
		132651, 140608, 148877, 157464, 166375, 175616, 185193, 195112, 205379, 216000, // 51-60
		226981, 238328, 250047, 262144, 274625, 287496, 300763, 314432, 328509, 343000, // 61-70
		357911, 373248, 389017, 405224, 421875, 438976, 456533, 474552, 493039, 512000, // 71-80
		531441, 551368, 571787, 592704, 614125, 636056, 658503, 681472, 704969, 729000, // 81-90
		753571, 778688, 804357, 830584, 857375, 884736, 912673, 941192, 970299, 1000000, // 91-100
	},
	// GrowthSlightlyFast
	{
		0, 16, 80, 178, 313, 492, 717, 994, 1326, 1720, // 1-10
		2178, 2706, 3307, 3988, 4751, 5602, 6544, 7584, 8724, 9970, // 11-20
		11325, 12796, 14385, 16098, 17938, 19912, 22022, 24274, 26671, 29220, // 21-30
		31923, 34786, 37812, 41008, 44376, 47922, 51649, 55564, 59669, 63970, // 31-40
		68470, 73176, 78090, 83218, 88563, 94132, 99927, 105954, 112216, 118720, // 41-50
		125468, 132466, 139717, 147228, 155001, 163042, 171354, 179944, 188814, 197970, // 51-60
		207415, 217156, 227195, 237538, 248188, 259152, 270432, 282034, 293961, 306220, // 61-70
		318813, 331746, 345022, 358648, 372626, 386962, 401659, 416724, 432159, 447970, // 71-80
		464160, 480736, 497700, 515058, 532813, 550972, 569537, 588514, 607906, 627720, // 81-90
		647958, 668626, 689727, 711268, 733251, 755682, 778564, 801904, 825704, 849970, // 91-100
	},
	// GrowthSlightlySlow
	{
		0, 16, 130, 298, 523, 812, 1167, 1594, 2096, 2680, // 1-10
		3348, 4106, 4957, 5908, 6961, 8122, 9394, 10784, 12294, 13930, // 11-20
		15695, 17596, 19635, 21818, 24148, 26632, 29272, 32074, 35041, 38180, // 21-30
		41493, 44986, 48662, 52528, 56586, 60842, 65299, 69964, 74839, 79930, // 31-40
		85240, 90776, 96540, 102538, 108773, 115252, 121977, 128954, 136186, 143680, // 41-50
		151438, 159466, 167767, 176348, 185211, 194362, 203804, 213544, 223584, 233930, // 51-60
		244585, 255556, 266845, 278458, 290398, 302672, 315282, 328234, 341531, 355180, // 61-70
		369183, 383546, 398272, 413368, 428836, 444682, 460909, 477524, 494529, 511930, // 71-80
		529730, 547936, 566550, 585578, 605023, 624892, 645187, 665914, 687076, 708680, // 81-90
		730728, 753226, 776177, 799588, 823461, 847802, 872614, 897904, 923674, 949930, // 91-100
	},
	// GrowthMediumSlow
	{
		0, 9, 57, 96, 135, 179, 236, 314, 419, 560, // 1-10
		742, 973, 1261, 1612, 2035, 2535, 3120, 3798, 4575, 5460, // 11-20
		6458, 7577, 8825, 10208, 11735, 13411, 15244, 17242, 19411, 21760, // 21-30
		24294, 27021, 29949, 33084, 36435, 40007, 43808, 47846, 52127, 56660, // 31-40
		61450, 66505, 71833, 77440, 83335, 89523, 96012, 102810, 109923, 117360, // 41-50
		125126, 133229, 141677, 150476, 159635, 169159, 179056, 189334, 199999, 211060, // 51-60
		222522, 234393, 246681, 259392, 272535, 286115, 300140, 314618, 329555, 344960, // 61-70
		360838, 377197, 394045, 411388, 429235, 447591, 466464, 485862, 505791, 526260, // 71-80
		547274, 568841, 590969, 613664, 636935, 660787, 685228, 710266, 735907, 762160, // 81-90
		789030, 816525, 844653, 873420, 902835, 932903, 963632, 995030, 1027103, 1059860, // 91-100
	},
	// GrowthFast
	{
		0, 6, 21, 51, 100, 172, 274, 409, 583, 800, // 1-10
		1064, 1382, 1757, 2195, 2700, 3276, 3930, 4665, 5487, 6400, // 11-20
		7408, 8518, 9733, 11059, 12500, 14060, 15746, 17561, 19511, 21600, // 21-30
		23832, 26214, 28749, 31443, 34300, 37324, 40522, 43897, 47455, 51200, // 31-40
		55136, 59270, 63605, 68147, 72900, 77868, 83058, 88473, 94119, 100000, // 41-50
		106120, 112486, 119101, 125971, 133100, 140492, 148154, 156089, 164303, 172800, // 51-60
		181584, 190662, 200037, 209715, 219700, 229996, 240610, 251545, 262807, 274400, // 61-70
		286328, 298598, 311213, 324179, 337500, 351180, 365226, 379641, 394431, 409600, // 71-80
		425152, 441094, 457429, 474163, 491300, 508844, 526802, 545177, 563975, 583200, // 81-90
		602856, 622950, 643485, 664467, 685900, 707788, 730138, 752953, 776239, 800000, // 91-100
	},
	// GrowthSlow
	{
		0, 10, 33, 80, 156, 270, 428, 640, 911, 1250, // 1-10
		1663, 2160, 2746, 3430, 4218, 5120, 6141, 7290, 8573, 10000, // 11-20
		11576, 13310, 15208, 17280, 19531, 21970, 24603, 27440, 30486, 33750, // 21-30
		37238, 40960, 44921, 49130, 53593, 58320, 63316, 68590, 74148, 80000, // 31-40
		86151, 92610, 99383, 106480, 113906, 121670, 129778, 138240, 147061, 156250, // 41-50
		165813, 175760, 186096, 196830, 207968, 219520, 231491, 243890, 256723, 270000, // 51-60
		283726, 297910, 312558, 327680, 343281, 359370, 375953, 393040, 410636, 428750, // 61-70
		447388, 466560, 486271, 506530, 527343, 548720, 570666, 593190, 616298, 640000, // 71-80
		664301, 689210, 714733, 740880, 767656, 795070, 823128, 851840, 881211, 911250, // 81-90
		941963, 973360, 1005446, 1038230, 1071718, 1105920, 1140841, 1176490, 1212873, 1250000, // 91-100
	},
}
