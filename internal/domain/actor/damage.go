package actor

import "math"

// DamageResult reports the pool deltas from one damage or healing application
type DamageResult struct {
	TempDelta int `json:"temp_delta"`
	HPDelta   int `json:"hp_delta"`
}

// ApplyDamage applies scaled damage or healing to hit points. Damage soaks
// temporary hit points first. The resulting value is clamped between the
// dying floor (negative half max) and max plus temp max.
func (a *Actor) ApplyDamage(amount float64, multiplier float64) DamageResult {
	hp := &a.Attributes.HP
	total := int(math.Floor(amount * multiplier))

	tmp := hp.Temp
	if tmp < 0 {
		tmp = 0
	}
	soaked := 0
	if total > 0 {
		soaked = total
		if soaked > tmp {
			soaked = tmp
		}
	}

	min := int(math.Floor(0 - float64(hp.Max)/2))
	max := hp.Max + hp.TempMax
	value := hp.Value - (total - soaked)
	if value < min {
		value = min
	} else if value > max {
		value = max
	}

	res := DamageResult{
		TempDelta: -soaked,
		HPDelta:   value - hp.Value,
	}
	hp.Temp = tmp - soaked
	hp.Value = value
	return res
}

// ReduceMagicPoints spends magic points, clamped to [0, max+tempmax]
func (a *Actor) ReduceMagicPoints(amount int) int {
	mp := &a.Attributes.MP
	value := mp.Value - amount
	if value < 0 {
		value = 0
	}
	if limit := mp.Max + mp.TempMax; value > limit {
		value = limit
	}
	delta := value - mp.Value
	mp.Value = value
	return delta
}
