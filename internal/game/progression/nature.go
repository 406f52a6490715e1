package progression

// NatureCount is the number of natures.
const NatureCount = 25

// NatureID is a personality classification in [0, 24].
type NatureID uint8

const (
	NatureHardy NatureID = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky
)

var natureNames = [NatureCount]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

func (n NatureID) String() string {
	if int(n) >= NatureCount {
		return "Unknown"
	}
	return natureNames[n]
}

// NatureForExp derives the nature from raw experience (exp mod 25).
// Only creatures from the two legacy eras take their nature this way;
// later records store it independently. Independent of growth curves.
func NatureForExp(exp uint32) NatureID {
	return NatureID(exp % NatureCount)
}
