package rules

// Denomination identifies a coin type
type Denomination string

const (
	DenominationCopper   Denomination = "cp"
	DenominationSilver   Denomination = "sp"
	DenominationGold     Denomination = "gp"
	DenominationPlatinum Denomination = "pp"
)

// CurrencyStep describes one upward conversion rule
type CurrencyStep struct {
	From Denomination
	Into Denomination
	Each int
}

// CurrencyConversion lists the upward conversion rules in application order
var CurrencyConversion = []CurrencyStep{
	{From: DenominationCopper, Into: DenominationSilver, Each: 10},
	{From: DenominationSilver, Into: DenominationGold, Each: 10},
	{From: DenominationGold, Into: DenominationPlatinum, Each: 10},
}
