package rules

// Encumbrance constants, kept in one place so a module could retune them
const (
	// EncumbranceCurrencyPerWeight is how many coins weigh one unit
	EncumbranceCurrencyPerWeight = 100

	// EncumbranceStrMultiplier scales strength value into carrying capacity
	EncumbranceStrMultiplier = 10

	// EncumbranceVehicleWeightMultiplier converts vehicle cargo tons to kg
	EncumbranceVehicleWeightMultiplier = 1000
)

// Size classifies an actor's physical size category
type Size string

const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "sm"
	SizeMedium     Size = "med"
	SizeLarge      Size = "lg"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "grg"
)

// SizeMultipliers scales carrying capacity by size category; unknown sizes use 1
var SizeMultipliers = map[Size]float64{
	SizeTiny:       0.5,
	SizeSmall:      1,
	SizeMedium:     1,
	SizeLarge:      2,
	SizeHuge:       4,
	SizeGargantuan: 8,
}

// SizeMultiplier returns the multiplier for a size, defaulting to 1
func SizeMultiplier(size Size) float64 {
	if m, ok := SizeMultipliers[size]; ok {
		return m
	}
	return 1
}
