// Package evm fills derivable earned-value indicators that a status report
// left out. Derivation is pure, idempotent, and never divides by a zero or
// missing denominator — an underivable indicator simply stays absent.
package evm

import (
	"github.com/pmpulse/analyzer/internal/report"
)

// #region config

// DeviationFormula computes budget deviation percent from actual cost, budget
// at completion, and the elapsed fraction of the planned duration. It is
// configurable because the elapsed-time base is an approximation of planned
// value, not an EVM identity.
type DeviationFormula func(actualCost, budget, elapsedFraction float64) (float64, bool)

// ElapsedTimeDeviation is the default formula:
// ((AC / (BAC * elapsedFraction)) - 1) * 100, undefined when the
// denominator is not positive.
func ElapsedTimeDeviation(actualCost, budget, elapsedFraction float64) (float64, bool) {
	base := budget * elapsedFraction
	if base <= 0 {
		return 0, false
	}
	return (actualCost/base - 1) * 100, true
}

// Config selects the deviation formula. The zero value uses the default.
type Config struct {
	Deviation DeviationFormula
}

// DefaultConfig returns the standard derivation configuration.
func DefaultConfig() Config {
	return Config{Deviation: ElapsedTimeDeviation}
}

// #endregion config

// #region derive

// Derive fills absent EVM indicators on the record in place and returns it.
// Only absent fields are written, so re-running is a no-op.
func Derive(rec *report.Record) *report.Record {
	return DeriveWith(rec, DefaultConfig())
}

// DeriveWith is Derive with an explicit configuration.
func DeriveWith(rec *report.Record, cfg Config) *report.Record {
	f := rec.Fields

	// SPI = EV / PV (schedule domain)
	if !f.Has(report.KeySPI) {
		ev, okEV := f.Float(report.KeyEarnedValue)
		pv, okPV := f.Float(report.KeyPlannedValue)
		if okEV && okPV && pv > 0 {
			f[report.KeySPI] = report.Float(ev / pv)
		}
	}

	// CPI = EV / AC (cost domain)
	if !f.Has(report.KeyCPI) {
		ev, okEV := f.Float(report.KeyEarnedValue)
		ac, okAC := f.Float(report.KeyActualCost)
		if okEV && okAC && ac > 0 {
			f[report.KeyCPI] = report.Float(ev / ac)
		}
	}

	// EAC = AC + ETC
	if !f.Has(report.KeyEstimateAtCompletion) {
		ac, okAC := f.Float(report.KeyActualCost)
		etc, okETC := f.Float(report.KeyEstimateToComplete)
		if okAC && okETC {
			f[report.KeyEstimateAtCompletion] = report.Float(ac + etc)
		}
	}

	// VAC = BAC - EAC
	if !f.Has(report.KeyVarianceAtCompletion) {
		bac, okBAC := f.Float(report.KeyInitialBudget)
		eac, okEAC := f.Float(report.KeyEstimateAtCompletion)
		if okBAC && okEAC {
			f[report.KeyVarianceAtCompletion] = report.Float(bac - eac)
		}
	}

	// Scope cost impact as percent of budget.
	if !f.Has(report.KeyCostImpactPct) {
		impact, okImp := f.Float(report.KeyCostImpact)
		bac, okBAC := f.Float(report.KeyInitialBudget)
		if okImp && okBAC && bac > 0 {
			f[report.KeyCostImpactPct] = report.Float(impact / bac * 100)
		}
	}

	return rec
}

// DeriveDeviation fills budget deviation from the configured formula when the
// report did not state it. elapsedFraction is the share of planned duration
// already spent, in (0, 1].
func DeriveDeviation(rec *report.Record, elapsedFraction float64, cfg Config) {
	f := rec.Fields
	if f.Has(report.KeyBudgetDeviation) {
		return
	}
	formula := cfg.Deviation
	if formula == nil {
		formula = ElapsedTimeDeviation
	}
	ac, okAC := f.Float(report.KeyActualCost)
	bac, okBAC := f.Float(report.KeyInitialBudget)
	if !okAC || !okBAC {
		return
	}
	if dev, ok := formula(ac, bac, elapsedFraction); ok {
		f[report.KeyBudgetDeviation] = report.Float(dev)
	}
}

// #endregion derive
