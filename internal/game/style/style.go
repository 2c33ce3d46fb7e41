// Package style defines the enumerated fighting styles, defensive stances,
// and offensive leanings used across the simulation, plus the pairwise
// style-matchup matrix.
//
// Styles are closed enums rather than string keys so a typo in a fighter
// template fails at load time instead of silently missing a table entry.
package style

import "fmt"

// Style is a fighter's primary stylistic identity.
type Style int

const (
	OutBoxer Style = iota // range control, jab-led, high movement
	Swarmer               // pressure, volume, inside work
	Slugger               // power-first, low volume
	BoxerPuncher          // balanced skill and power
	Counterpuncher        // timing-led, reactive
	numStyles
)

// String returns the template-facing name of the Style.
func (s Style) String() string {
	switch s {
	case OutBoxer:
		return "out_boxer"
	case Swarmer:
		return "swarmer"
	case Slugger:
		return "slugger"
	case BoxerPuncher:
		return "boxer_puncher"
	case Counterpuncher:
		return "counterpuncher"
	default:
		return "unknown"
	}
}

// Parse maps a template string to a Style.
//
// Postcondition: Returns an error for any name not produced by String().
func Parse(name string) (Style, error) {
	for s := OutBoxer; s < numStyles; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q", name)
}

// All returns every defined Style in declaration order.
func All() []Style {
	out := make([]Style, 0, numStyles)
	for s := OutBoxer; s < numStyles; s++ {
		out = append(out, s)
	}
	return out
}

// matchup holds the stylistic advantage multiplier for row-style fighting
// column-style. Values above 1 favor the row fighter. The matrix encodes the
// classic triangle: swarmers trouble out-boxers, out-boxers trouble sluggers,
// sluggers trouble swarmers, with counterpunchers feeding on aggression.
var matchup = [numStyles][numStyles]float64{
	//                 out    swarm  slug   b-p    counter
	OutBoxer:       {1.00, 0.90, 1.15, 1.00, 1.05},
	Swarmer:        {1.15, 1.00, 0.88, 1.00, 0.92},
	Slugger:        {0.88, 1.15, 1.00, 0.95, 0.90},
	BoxerPuncher:   {1.00, 1.00, 1.08, 1.00, 1.00},
	Counterpuncher: {0.95, 1.12, 1.10, 1.00, 1.00},
}

// Matchup returns the advantage multiplier for a fighting b.
//
// Postcondition: Returns a value in [0.85, 1.20]; unknown styles return 1.0.
func Matchup(a, b Style) float64 {
	if a < 0 || a >= numStyles || b < 0 || b >= numStyles {
		return 1.0
	}
	return matchup[a][b]
}
