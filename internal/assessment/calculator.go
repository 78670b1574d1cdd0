// Package assessment maintains the vehicle-damage cost-breakdown worksheet:
// spare-parts and labour row collections with derived tax, depreciation and
// deduction totals, and the summary block combining them. Totals are pure
// functions of the rows and percentage inputs; persisted totals are a cache
// and get recomputed on every read and write.
package assessment

import (
	"math"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// RoundHalfUp2 rounds to 2 decimal places, half away from zero upward.
// The epsilon compensates for binary representation of decimal inputs,
// where e.g. 1.005*100 lands just below 100.5 and would round down.
func RoundHalfUp2(x float64) float64 {
	return math.Floor(x*100+0.5+1e-9) / 100
}

// ComputeSparesTotals folds a spares table's rows into its totals block.
// GST applies to the assessed total; the grand total is the estimated total
// plus GST. Depreciation applies per assessed category.
func ComputeSparesTotals(t models.SparesTable) models.SparesTotals {
	var totals models.SparesTotals

	for _, row := range t.Rows {
		totals.TotalQuantity += row.Quantity
		totals.TotalEstimated += row.EstimatedAmount
		totals.TotalAssessedGlass += row.AssessedGlass
		totals.TotalAssessedPlasticRubber += row.AssessedPlasticRubber
		totals.TotalAssessedOthersMetal += row.AssessedOthersMetal
	}

	totals.AssessedTotal = totals.TotalAssessedGlass +
		totals.TotalAssessedPlasticRubber +
		totals.TotalAssessedOthersMetal

	totals.CGSTAmount = RoundHalfUp2(totals.AssessedTotal * t.CGSTPercent / 100)
	totals.SGSTAmount = RoundHalfUp2(totals.AssessedTotal * t.SGSTPercent / 100)
	totals.TotalWithGST = totals.TotalEstimated + totals.CGSTAmount + totals.SGSTAmount

	totals.DepGlassAmount = RoundHalfUp2(totals.TotalAssessedGlass * t.DepGlassPercent / 100)
	totals.DepPlasticRubberAmount = RoundHalfUp2(totals.TotalAssessedPlasticRubber * t.DepPlasticRubberPercent / 100)
	totals.DepOthersMetalAmount = RoundHalfUp2(totals.TotalAssessedOthersMetal * t.DepOthersMetalPercent / 100)
	totals.TotalDepreciation = totals.DepGlassAmount +
		totals.DepPlasticRubberAmount +
		totals.DepOthersMetalAmount

	totals.NetAmount = RoundHalfUp2(totals.TotalWithGST - totals.TotalDepreciation)
	return totals
}

// ComputeLabourTotals folds a labour table's rows into its totals block.
// Same shape as spares, with the single statutory deduction percentage
// replacing the per-category depreciation split.
func ComputeLabourTotals(t models.LabourTable) models.LabourTotals {
	var totals models.LabourTotals

	for _, row := range t.Rows {
		totals.TotalEstimated += row.EstimatedAmount
		totals.TotalAssessed += row.AssessedAmount
	}

	totals.CGSTAmount = RoundHalfUp2(totals.TotalAssessed * t.CGSTPercent / 100)
	totals.SGSTAmount = RoundHalfUp2(totals.TotalAssessed * t.SGSTPercent / 100)
	totals.TotalWithGST = totals.TotalEstimated + totals.CGSTAmount + totals.SGSTAmount

	totals.DeductionAmount = RoundHalfUp2(totals.TotalAssessed * t.DeductionPercent / 100)
	totals.NetAmount = RoundHalfUp2(totals.TotalWithGST - totals.DeductionAmount)
	return totals
}

// ComputeSummary rebuilds the summary block from the four tables' net
// amounts. Only the salvage value and policy excess carry over from the
// stored summary; everything else is recomputed.
func ComputeSummary(a models.Assessment) models.AssessmentSummary {
	summary := models.AssessmentSummary{
		SparesNet:              a.Spares.Totals.NetAmount,
		SupplementarySparesNet: a.SupplementarySpares.Totals.NetAmount,
		LabourNet:              a.Labour.Totals.NetAmount,
		SupplementaryLabourNet: a.SupplementaryLabour.Totals.NetAmount,
		SalvageValue:           a.Summary.SalvageValue,
		PolicyExcess:           a.Summary.PolicyExcess,
	}

	summary.GrossTotal = RoundHalfUp2(summary.SparesNet +
		summary.SupplementarySparesNet +
		summary.LabourNet +
		summary.SupplementaryLabourNet)
	summary.NetLiability = RoundHalfUp2(summary.GrossTotal - summary.SalvageValue - summary.PolicyExcess)
	return summary
}

// Recompute refreshes every derived block in the worksheet in place
func Recompute(a *models.Assessment) {
	a.Spares.Totals = ComputeSparesTotals(a.Spares)
	a.SupplementarySpares.Totals = ComputeSparesTotals(a.SupplementarySpares)
	a.Labour.Totals = ComputeLabourTotals(a.Labour)
	a.SupplementaryLabour.Totals = ComputeLabourTotals(a.SupplementaryLabour)
	a.Summary = ComputeSummary(*a)
}
