// Package damage implements the bookkeeping damage model: the secondary
// probability functions (hurt entry, knockdown, TKO, cuts and swelling,
// inter-round recovery) applied after the resolver reports its hits. Its
// knockdown formula deliberately runs on its own constants, independent of
// the resolver's in-combat check.
package damage

import (
	"math"

	"go.uber.org/zap"

	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/rng"
)

// Model evaluates post-hit effects. It owns no per-fight state.
type Model struct {
	p      *params.Store
	src    rng.Source
	logger *zap.Logger
}

// New builds a damage model over the given parameter version.
//
// Precondition: p and src must be non-nil.
// Postcondition: logger defaults to zap.NewNop().
func New(p *params.Store, src rng.Source, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{p: p, src: src, logger: logger}
}

// Scale applies the defender's durability to raw punch damage.
//
// Postcondition: Returns a value in [1, raw] for raw >= 1.
func (m *Model) Scale(def *fighter.Fighter, raw int) int {
	attr := def.Profile.Attr
	resist := (attr.Chin*0.5 + attr.Conditioning*0.5) * m.p.GetFloat("damage.resistance_scale", 0.004)
	out := int(math.Round(float64(raw) * (1 - resist)))
	if out < 1 {
		out = 1
	}
	if out > raw {
		out = raw
	}
	return out
}

// HurtChance returns the probability that a hit of the given damage sends
// the defender into the hurt state.
//
// Postcondition: Returns a value in [damage.hurt.min, damage.hurt.max].
func (m *Model) HurtChance(def *fighter.Fighter, dmg int) float64 {
	attr := def.Profile.Attr

	// Ratio of this hit to what the defender's chin comfortably absorbs.
	absorb := m.p.GetFloat("damage.knockdown.threshold_base", 20) * (0.5 + attr.Chin/100)
	prob := float64(dmg) / absorb * m.p.GetFloat("damage.hurt.ratio_scale", 0.85)

	prob += def.State.TotalDamage() * m.p.GetFloat("damage.hurt.accumulated_scale", 0.003)
	prob -= (attr.Composure - 50) / 100 * m.p.GetFloat("damage.hurt.composure_scale", 0.10)
	prob += (1 - def.State.StaminaFrac()) * m.p.GetFloat("damage.hurt.stamina_scale", 0.15)

	min := m.p.GetFloat("damage.hurt.min", 0.05)
	max := m.p.GetFloat("damage.hurt.max", 0.60)
	return math.Min(math.Max(prob, min), max)
}

// CheckHurt rolls hurt entry for one landed hit and, on success, puts the
// defender into the hurt state for a damage-scaled duration.
func (m *Model) CheckHurt(def *fighter.Fighter, dmg int) bool {
	if m.src.Float64() >= m.HurtChance(def, dmg) {
		return false
	}
	ticks := m.p.GetInt("damage.hurt.duration_base", 4) +
		m.p.GetInt("damage.hurt.duration_per_tier", 2)*int(def.State.Severity())
	def.State.Hurt = true
	if ticks > def.State.HurtTicks {
		def.State.HurtTicks = ticks
	}
	m.logger.Debug("fighter hurt",
		zap.String("fighter", def.Profile.Name),
		zap.Int("damage", dmg),
		zap.Int("ticks", def.State.HurtTicks))
	return true
}

// KnockdownChance is the bookkeeping knockdown formula: zero below a
// chin-scaled threshold, then linear in the overshoot, capped.
//
// Postcondition: Returns a value in [0, damage.knockdown.chance_cap].
func (m *Model) KnockdownChance(def *fighter.Fighter, dmg int) float64 {
	attr := def.Profile.Attr
	threshold := m.p.GetFloat("damage.knockdown.threshold_base", 20) *
		(0.5 + attr.Chin/m.p.GetFloat("damage.knockdown.chin_scale", 75))
	threshold *= 1 - (1-def.State.StaminaFrac())*m.p.GetFloat("damage.knockdown.stamina_relief", 0.2)

	if float64(dmg) < threshold {
		return 0
	}
	chance := (float64(dmg)/threshold - 1) * m.p.GetFloat("damage.knockdown.chance_scale", 0.5)
	cap := m.p.GetFloat("damage.knockdown.chance_cap", 0.35)
	return math.Min(chance, cap)
}

// CheckKnockdown rolls the bookkeeping knockdown formula.
func (m *Model) CheckKnockdown(def *fighter.Fighter, dmg int) bool {
	return m.src.Float64() < m.KnockdownChance(def, dmg)
}

// TKOChance returns the stoppage probability for the defender's current
// condition: accumulated damage above the heavy tier, time spent hurt,
// knockdowns this round, and cut severity, scaled by referee
// protectiveness.
//
// Postcondition: Returns a value in [0, damage.tko.cap].
func (m *Model) TKOChance(def *fighter.Fighter) float64 {
	st := def.State
	accum := st.TotalDamage()
	tier := m.p.GetFloat("damage.tko.heavy_damage_tier", 55)
	if accum < tier && st.KnockdownsThisRound == 0 {
		return 0
	}

	prob := m.p.GetFloat("damage.tko.base", 0.04)
	if accum > tier {
		prob += (accum - tier) * m.p.GetFloat("damage.tko.damage_scale", 0.002)
	}
	prob += float64(st.HurtTicks) * m.p.GetFloat("damage.tko.hurt_tick_scale", 0.015)
	prob += float64(st.KnockdownsThisRound) * m.p.GetFloat("damage.tko.knockdown_scale", 0.25)
	prob += float64(m.cutSeverity(def)) * m.p.GetFloat("damage.tko.cut_scale", 0.03)
	prob *= m.p.GetFloat("damage.tko.referee_scale", 1.0)

	return math.Min(math.Max(prob, 0), m.p.GetFloat("damage.tko.cap", 0.85))
}

// CheckTKO rolls the stoppage probability.
func (m *Model) CheckTKO(def *fighter.Fighter) bool {
	return m.src.Float64() < m.TKOChance(def)
}

// RecoverBetweenRounds applies the one-minute rest: damage and stamina come
// back scaled by the recovery attribute and corner quality, and transient
// hurt and stun flags clear.
//
// Precondition: cornerQuality is a 0-100 rating.
func (m *Model) RecoverBetweenRounds(f *fighter.Fighter, cornerQuality float64) {
	st := f.State
	attr := f.Profile.Attr
	mult := (0.5 + attr.Recovery/100) * (1 + cornerQuality*m.p.GetFloat("damage.recovery.corner_quality_scale", 0.02))

	heal := m.p.GetFloat("damage.recovery.between_rounds_damage", 4) * mult
	total := st.TotalDamage()
	if total > 0 {
		// Healing splits proportionally across head and body.
		headShare := st.HeadDamage / total
		st.HeadDamage = math.Max(st.HeadDamage-heal*headShare, 0)
		st.BodyDamage = math.Max(st.BodyDamage-heal*(1-headShare), 0)
	}

	st.Stamina = math.Min(st.Stamina+m.p.GetFloat("damage.recovery.between_rounds_stamina", 12)*mult, st.MaxStamina)

	st.Hurt = false
	st.HurtTicks = 0
	st.StunTicks = 0
}

// CheckCut rolls cut and swelling generation for one landed head punch and
// appends or aggravates an injury on success. Heavier shots cut more often.
func (m *Model) CheckCut(def *fighter.Fighter, dmg int) (fighter.Injury, bool) {
	scale := 1 + float64(dmg)*m.p.GetFloat("damage.cuts.severity_scale", 0.02)

	swelling := false
	switch {
	case m.src.Float64() < m.p.GetFloat("damage.cuts.cut_chance", 0.04)*scale:
	case m.src.Float64() < m.p.GetFloat("damage.cuts.swelling_chance", 0.05)*scale:
		swelling = true
	default:
		return fighter.Injury{}, false
	}

	loc := m.drawLocation()
	st := def.State
	for i := range st.Injuries {
		if st.Injuries[i].Location == loc && st.Injuries[i].Swelling == swelling {
			st.Injuries[i].Severity++
			return st.Injuries[i], true
		}
	}
	inj := fighter.Injury{Location: loc, Severity: 1, Swelling: swelling}
	st.Injuries = append(st.Injuries, inj)
	m.logger.Debug("injury opened",
		zap.String("fighter", def.Profile.Name),
		zap.String("location", loc),
		zap.Bool("swelling", swelling))
	return inj, true
}

// cutLocations is the fixed draw order for facial injury locations.
var cutLocations = []string{
	"left_eyebrow", "right_eyebrow", "left_cheek", "right_cheek", "nose", "forehead",
}

// drawLocation picks an injury location by the configured weights with a
// single uniform draw.
func (m *Model) drawLocation() string {
	total := 0.0
	for _, loc := range cutLocations {
		total += m.p.GetFloat("damage.cuts.locations."+loc, 0.1)
	}
	roll := m.src.Float64() * total
	acc := 0.0
	for _, loc := range cutLocations {
		acc += m.p.GetFloat("damage.cuts.locations."+loc, 0.1)
		if roll < acc {
			return loc
		}
	}
	return cutLocations[len(cutLocations)-1]
}

// eyeAreaLocations impair vision when cut or swollen.
var eyeAreaLocations = map[string]bool{
	"left_eyebrow":  true,
	"right_eyebrow": true,
	"left_cheek":    true,
	"right_cheek":   true,
}

// VisionImpairment aggregates the accuracy penalty from active eye-area
// injuries.
//
// Postcondition: Returns a value in [0, 0.5].
func (m *Model) VisionImpairment(def *fighter.Fighter) float64 {
	per := m.p.GetFloat("damage.cuts.vision_per_severity", 0.08)
	total := 0.0
	for _, inj := range def.State.Injuries {
		if eyeAreaLocations[inj.Location] {
			total += float64(inj.Severity) * per
		}
	}
	return math.Min(total, 0.5)
}

// cutSeverity sums severity over all open injuries.
func (m *Model) cutSeverity(def *fighter.Fighter) int {
	total := 0
	for _, inj := range def.State.Injuries {
		total += inj.Severity
	}
	return total
}
