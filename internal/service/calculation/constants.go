package calculation

import "github.com/shopspring/decimal"

// Statutory rates are fixed illustrative constants, not configurable tax
// tables.
var (
	incomeTaxRate = decimal.NewFromFloat(0.13)
	socialTaxRate = decimal.NewFromFloat(0.01)
)

// Discretionary accrual factors.
var (
	roleBonusRate   = decimal.NewFromFloat(0.25)
	sickLeaveFactor = decimal.NewFromFloat(0.50)
	vacationFactor  = decimal.NewFromFloat(1.50)
)

// standardDaysPerMonth is the fixed denominator for the daily rate used
// by leave pay.
var standardDaysPerMonth = decimal.NewFromInt(20)

var hundred = decimal.NewFromInt(100)

// seniorityTiers maps completed years of service to a bonus percentage;
// evaluated top down, boundary years take the higher tier.
var seniorityTiers = []struct {
	Years int
	Rate  decimal.Decimal
}{
	{10, decimal.NewFromFloat(0.25)},
	{3, decimal.NewFromFloat(0.15)},
	{1, decimal.NewFromFloat(0.05)},
}

// seniorityRate returns the bonus rate for the completed years of
// service, or found=false below the first tier.
func seniorityRate(years int) (decimal.Decimal, bool) {
	for _, tier := range seniorityTiers {
		if years >= tier.Years {
			return tier.Rate, true
		}
	}
	return decimal.Zero, false
}
