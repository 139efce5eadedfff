package actor

import "github.com/lucasdlb17/fvtt-trpg/internal/rules"

// ConvertCurrency exchanges coins upward through the denomination ladder,
// converting every whole multiple into the next denomination. When idjMode is
// set the final step into platinum is skipped.
func (a *Actor) ConvertCurrency(idjMode bool) {
	if a.Currency == nil {
		return
	}
	for _, step := range rules.CurrencyConversion {
		if idjMode && step.Into == rules.DenominationPlatinum {
			continue
		}
		have := a.Currency[step.From]
		converted := have / step.Each
		if converted <= 0 {
			continue
		}
		a.Currency[step.From] = have - converted*step.Each
		a.Currency[step.Into] += converted
	}
}
