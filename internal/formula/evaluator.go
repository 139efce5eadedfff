// Package formula provides the expression-evaluator capability the derivation
// engine depends on. The engine's contract is only "given a formula string and
// a roll-data substitution map, return a number or an error"; callers inject
// an Evaluator and treat evaluation failures as recoverable.
package formula

// Evaluator evaluates a formula string against roll-data substitutions.
// Formulas reference roll data with @-prefixed dotted paths, e.g.
// "@attributes.ac.base + @abilities.dex.mod".
type Evaluator interface {
	Evaluate(formula string, data map[string]float64) (float64, error)
}
