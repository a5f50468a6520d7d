package compare

import (
	"go.uber.org/zap"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// CalculateTCO projects the monthly totals of both providers over
// horizonMonths. Operational overhead is the policy's per-provider share
// of compute plus storage. The projection is linear with no discounting.
func (e *Engine) CalculateTCO(compute, storage, additional types.CostsByProvider, horizonMonths int) (*types.TCOResult, error) {
	if horizonMonths <= 0 {
		return nil, cerrors.Validation("time_horizon_months", "must be positive, got %d", horizonMonths)
	}
	if err := e.validateCosts("compute", compute); err != nil {
		return nil, err
	}
	if err := e.validateCosts("storage", storage); err != nil {
		return nil, err
	}
	if err := e.validateCosts("additional", additional); err != nil {
		return nil, err
	}

	pa, pb := e.policy.Providers()
	sideA := e.tcoSide(pa, compute, storage, additional, horizonMonths)
	sideB := e.tcoSide(pb, compute, storage, additional, horizonMonths)
	for _, side := range []types.TCOSide{sideA, sideB} {
		if err := checkAmount("tco."+string(side.Provider), side.TCO); err != nil {
			return nil, err
		}
	}

	result := &types.TCOResult{
		HorizonMonths: horizonMonths,
		A:             sideA,
		B:             sideB,
	}
	result.Savings, result.SavingsProvider, result.SavingsPercentage = savings(sideA.TCO, sideB.TCO, pa, pb)

	e.logger.Debug("calculated tco",
		zap.Int("horizon_months", horizonMonths),
		zap.Float64("tco_a", sideA.TCO),
		zap.Float64("tco_b", sideB.TCO),
	)
	return result, nil
}

func (e *Engine) tcoSide(p types.Provider, compute, storage, additional types.CostsByProvider, months int) types.TCOSide {
	m := types.MonthlyBreakdown{
		Compute:    compute[p],
		Storage:    storage[p],
		Additional: additional[p],
	}
	m.Operational = (m.Compute + m.Storage) * e.policy.OverheadOf(p)
	m.Total = m.Compute + m.Storage + m.Additional + m.Operational

	return types.TCOSide{
		Provider: p,
		Monthly:  m,
		TCO:      m.Total * float64(months),
	}
}
