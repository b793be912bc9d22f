package production

import "math"

// EfficiencyPolicy selects how a batch of entries gets its efficiency.
// PerRowCappedEfficiency derives one value per record from its own quantity.
// BatchSharedEfficiency sums production across the whole batch, divides by the
// single shared machine+shift target and stamps the same value on every row.
type EfficiencyPolicy string

const (
	PerRowCappedEfficiency EfficiencyPolicy = "per_row_capped"
	BatchSharedEfficiency  EfficiencyPolicy = "batch_shared"
)

// Efficiency status labels shown next to the stored number. Thresholds are
// the 80/90 bands the section screens use.
const (
	StatusOverTarget     = "Over Target"
	StatusExcellent      = "Excellent"
	StatusGood           = "Good"
	StatusLow            = "Low"
	StatusTargetNotFound = "Target not found"
)

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeWeight returns round2(quantity * perMeterWt), or 0 when either input
// is non-positive or NaN.
func ComputeWeight(quantity, perMeterWt float64) float64 {
	if math.IsNaN(quantity) || math.IsNaN(perMeterWt) {
		return 0
	}
	if quantity <= 0 || perMeterWt <= 0 {
		return 0
	}
	return Round2(quantity * perMeterWt)
}

// ComputeEfficiency returns round2(min(100, quantity/targetQty*100)), or 0
// when the target is unresolved (targetQty <= 0) or quantity is not positive.
func ComputeEfficiency(quantity, targetQty float64) float64 {
	if math.IsNaN(quantity) || math.IsNaN(targetQty) {
		return 0
	}
	if quantity <= 0 || targetQty <= 0 {
		return 0
	}
	eff := quantity / targetQty * 100
	if eff > 100 {
		eff = 100
	}
	return Round2(eff)
}

// BatchEfficiency is the BatchSharedEfficiency policy: one capped value from
// the summed quantity of all entries over the shared target.
func BatchEfficiency(quantities []float64, targetQty float64) float64 {
	var total float64
	for _, q := range quantities {
		if q > 0 && !math.IsNaN(q) {
			total += q
		}
	}
	return ComputeEfficiency(total, targetQty)
}

// EfficiencyStatus labels the raw (uncapped) ratio. The stored number stays
// capped at 100; overproduction is only visible through this label.
func EfficiencyStatus(quantity, targetQty float64) string {
	if targetQty <= 0 || math.IsNaN(targetQty) {
		return StatusTargetNotFound
	}
	if quantity <= 0 || math.IsNaN(quantity) {
		return StatusLow
	}
	ratio := quantity / targetQty * 100
	switch {
	case ratio > 100:
		return StatusOverTarget
	case ratio >= 90:
		return StatusExcellent
	case ratio >= 80:
		return StatusGood
	default:
		return StatusLow
	}
}
