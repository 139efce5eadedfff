package actor

import (
	"math"

	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// Encumbrance holds the derived carrying capacity figures
type Encumbrance struct {
	Value      float64 `json:"value"`
	Max        float64 `json:"max"`
	Pct        float64 `json:"pct"`
	Encumbered bool    `json:"encumbered"`
}

// computeEncumbrance totals carried weight from physical items and coinage
// and sizes the capacity from strength, creature size, and vehicle scaling.
func (a *Actor) computeEncumbrance(opts DeriveOptions) {
	weight := 0.0
	for _, it := range a.Items {
		if !it.IsPhysical() {
			continue
		}
		q := it.Quantity
		if q < 0 {
			q = 0
		}
		weight += float64(q) * it.Weight
	}

	if opts.Settings.CurrencyWeight {
		coins := 0
		for _, n := range a.Currency {
			if n > 0 {
				coins += n
			}
		}
		weight += float64(coins) / rules.EncumbranceCurrencyPerWeight
	}

	weight = math.Round(weight*10) / 10

	mod := rules.SizeMultiplier(a.Traits.Size)
	if a.Flags.PowerfulBuild {
		mod = math.Min(mod*2, 8)
	}

	strength := 0
	if str, ok := a.Abilities[rules.AbilityStrength]; ok {
		strength = str.Value
	}

	max := float64(strength) * rules.EncumbranceStrMultiplier * mod
	if a.Type == TypeVehicle {
		max = float64(strength) * rules.EncumbranceVehicleWeightMultiplier
	}

	// Weight with no capacity maxes the gauge out.
	pct := 0.0
	if max > 0 {
		pct = weight * 100 / max
	} else if weight > 0 {
		pct = 100
	}
	pct = math.Min(math.Max(pct, 0), 100)
	pct = math.Round(pct*100) / 100

	a.Attributes.Encumbrance = Encumbrance{
		Value:      weight,
		Max:        max,
		Pct:        pct,
		Encumbered: pct > 0.3,
	}
}
