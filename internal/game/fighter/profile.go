// Package fighter holds the data containers the simulation core operates on:
// the read-only attribute profile, the mutable per-fight combat state, the
// per-fight decision memory, and the YAML template registry fighters are
// instantiated from.
package fighter

import (
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/style"
)

// Attributes are the 0–100 numeric ratings feeding every formula. They are
// read-only for the duration of a fight.
type Attributes struct {
	// Offense
	Power         float64 `yaml:"power"`
	KnockoutPower float64 `yaml:"knockout_power"`
	HandSpeed     float64 `yaml:"hand_speed"`
	Accuracy      float64 `yaml:"accuracy"`
	BodyPunching  float64 `yaml:"body_punching"`
	FirstStep     float64 `yaml:"first_step"`

	// Defense
	HeadMovement  float64 `yaml:"head_movement"`
	Reflexes      float64 `yaml:"reflexes"`
	Blocking      float64 `yaml:"blocking"`
	Parry         float64 `yaml:"parry"`
	RingAwareness float64 `yaml:"ring_awareness"`

	// Technical
	Technique    float64 `yaml:"technique"`
	Footwork     float64 `yaml:"footwork"`
	Experience   float64 `yaml:"experience"`
	Adaptability float64 `yaml:"adaptability"`
	FightIQ      float64 `yaml:"fight_iq"`

	// Mental
	Heart          float64 `yaml:"heart"`
	KillerInstinct float64 `yaml:"killer_instinct"`
	Composure      float64 `yaml:"composure"`
	Confidence     float64 `yaml:"confidence"`

	// Durability
	Chin         float64 `yaml:"chin"`
	Recovery     float64 `yaml:"recovery"`
	Conditioning float64 `yaml:"conditioning"`
}

// Profile is a fighter's full static description: ratings, measurements, and
// style tags.
type Profile struct {
	Name      string
	Attr      Attributes
	HeightIn  float64
	ReachIn   float64
	WeightLbs float64
	Style     style.Style
	Stance    style.Stance
	Offense   style.Offense
}

// WeightClass identifies the weight-class parameter profile a fighter's body
// weight selects.
type WeightClass int

const (
	Featherweight WeightClass = iota
	Lightweight
	Welterweight
	Middleweight
	Cruiserweight
	Heavyweight
)

// String returns the parameter-store key under weight_class.
func (w WeightClass) String() string {
	switch w {
	case Featherweight:
		return "featherweight"
	case Lightweight:
		return "lightweight"
	case Welterweight:
		return "welterweight"
	case Middleweight:
		return "middleweight"
	case Cruiserweight:
		return "cruiserweight"
	case Heavyweight:
		return "heavyweight"
	default:
		return "unknown"
	}
}

// classesByWeightDesc orders classes from heaviest to lightest for lookup.
var classesByWeightDesc = []WeightClass{
	Heavyweight, Cruiserweight, Middleweight, Welterweight, Lightweight, Featherweight,
}

// ClassFor returns the WeightClass whose min_weight the given body weight
// meets, per the parameter store's weight_class profiles.
//
// Postcondition: always returns a valid class; Featherweight is the floor.
func ClassFor(weightLbs float64, p *params.Store) WeightClass {
	for _, wc := range classesByWeightDesc {
		min := p.GetFloat("weight_class."+wc.String()+".min_weight", 0)
		if weightLbs >= min {
			return wc
		}
	}
	return Featherweight
}

// WeightClass returns the profile's class under the given parameter store.
func (pr *Profile) WeightClass(p *params.Store) WeightClass {
	return ClassFor(pr.WeightLbs, p)
}

// StatusModifiers are the five externally injected scalar buffs/debuffs a
// status-effect system may apply per fighter. All zero when absent.
type StatusModifiers struct {
	Aggression float64
	Defense    float64
	Accuracy   float64
	Power      float64
	Speed      float64
}
