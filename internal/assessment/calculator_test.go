package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

func TestRoundHalfUp2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1.005, want: 1.01},
		{in: 1.004, want: 1.0},
		{in: 2.675, want: 2.68},
		{in: 2.665, want: 2.67},
		{in: 0.125, want: 0.13},
		{in: 12.345, want: 12.35},
		{in: 0, want: 0},
		{in: 100, want: 100},
		{in: 99.999, want: 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp2(tt.in), "RoundHalfUp2(%v)", tt.in)
	}
}

func TestComputeSparesTotalsGSTOnAssessed(t *testing.T) {
	table := models.SparesTable{
		Rows: []models.SparesRow{
			{ID: "r1", Quantity: 2, EstimatedAmount: 600, AssessedOthersMetal: 500},
			{ID: "r2", Quantity: 1, EstimatedAmount: 400, AssessedGlass: 300},
		},
		CGSTPercent: 9,
		SGSTPercent: 9,
	}

	totals := ComputeSparesTotals(table)

	assert.Equal(t, 3.0, totals.TotalQuantity)
	assert.Equal(t, 1000.0, totals.TotalEstimated)
	assert.Equal(t, 800.0, totals.AssessedTotal)
	assert.Equal(t, 72.0, totals.CGSTAmount)
	assert.Equal(t, 72.0, totals.SGSTAmount)
	assert.Equal(t, 1144.0, totals.TotalWithGST)
	assert.Equal(t, 1144.0, totals.NetAmount)
}

func TestComputeSparesTotalsZeroAssessed(t *testing.T) {
	// rows estimated but nothing assessed yet: no GST accrues, and the grand
	// total equals the estimated total
	table := models.SparesTable{
		Rows: []models.SparesRow{
			{ID: "r1", Quantity: 1, EstimatedAmount: 1000},
		},
		CGSTPercent: 9,
		SGSTPercent: 9,
	}

	totals := ComputeSparesTotals(table)

	assert.Equal(t, 1000.0, totals.TotalEstimated)
	assert.Equal(t, 0.0, totals.AssessedTotal)
	assert.Equal(t, 0.0, totals.CGSTAmount)
	assert.Equal(t, 0.0, totals.SGSTAmount)
	assert.Equal(t, 1000.0, totals.TotalWithGST)
}

func TestComputeSparesTotalsDepreciation(t *testing.T) {
	table := models.SparesTable{
		Rows: []models.SparesRow{
			{ID: "r1", EstimatedAmount: 500, AssessedGlass: 400},
			{ID: "r2", EstimatedAmount: 800, AssessedPlasticRubber: 600},
			{ID: "r3", EstimatedAmount: 700, AssessedOthersMetal: 500},
		},
		DepGlassPercent:         0,
		DepPlasticRubberPercent: 50,
		DepOthersMetalPercent:   25,
	}

	totals := ComputeSparesTotals(table)

	assert.Equal(t, 0.0, totals.DepGlassAmount)
	assert.Equal(t, 300.0, totals.DepPlasticRubberAmount)
	assert.Equal(t, 125.0, totals.DepOthersMetalAmount)
	assert.Equal(t, 425.0, totals.TotalDepreciation)
	assert.Equal(t, totals.TotalWithGST-425.0, totals.NetAmount)
}

func TestComputeSparesTotalsEmptyTable(t *testing.T) {
	totals := ComputeSparesTotals(models.SparesTable{CGSTPercent: 9, SGSTPercent: 9})
	assert.Equal(t, models.SparesTotals{}, totals)
}

func TestComputeLabourTotals(t *testing.T) {
	table := models.LabourTable{
		Rows: []models.LabourRow{
			{ID: "l1", EstimatedAmount: 2000, AssessedAmount: 1500},
			{ID: "l2", EstimatedAmount: 1000, AssessedAmount: 500},
		},
		CGSTPercent:      9,
		SGSTPercent:      9,
		DeductionPercent: 10,
	}

	totals := ComputeLabourTotals(table)

	assert.Equal(t, 3000.0, totals.TotalEstimated)
	assert.Equal(t, 2000.0, totals.TotalAssessed)
	assert.Equal(t, 180.0, totals.CGSTAmount)
	assert.Equal(t, 180.0, totals.SGSTAmount)
	assert.Equal(t, 3360.0, totals.TotalWithGST)
	assert.Equal(t, 200.0, totals.DeductionAmount)
	assert.Equal(t, 3160.0, totals.NetAmount)
}

func TestComputeSummary(t *testing.T) {
	a := models.Assessment{}
	a.Spares.Totals.NetAmount = 1144
	a.Labour.Totals.NetAmount = 3160
	a.SupplementarySpares.Totals.NetAmount = 200
	a.Summary.SalvageValue = 150
	a.Summary.PolicyExcess = 1000

	summary := ComputeSummary(a)

	assert.Equal(t, 1144.0, summary.SparesNet)
	assert.Equal(t, 3160.0, summary.LabourNet)
	assert.Equal(t, 200.0, summary.SupplementarySparesNet)
	assert.Equal(t, 0.0, summary.SupplementaryLabourNet)
	assert.Equal(t, 4504.0, summary.GrossTotal)
	// salvage and excess carry over; liability deducts both
	assert.Equal(t, 150.0, summary.SalvageValue)
	assert.Equal(t, 1000.0, summary.PolicyExcess)
	assert.Equal(t, 3354.0, summary.NetLiability)
}

func TestRecomputeOverwritesStaleTotals(t *testing.T) {
	a := models.Assessment{
		Spares: models.SparesTable{
			Rows:        []models.SparesRow{{ID: "r1", EstimatedAmount: 100, AssessedGlass: 100}},
			CGSTPercent: 9,
			SGSTPercent: 9,
			// stale cached totals that must not survive a recompute
			Totals: models.SparesTotals{NetAmount: 99999},
		},
	}
	a.Summary.NetLiability = 99999

	Recompute(&a)

	assert.Equal(t, 118.0, a.Spares.Totals.TotalWithGST)
	assert.Equal(t, 118.0, a.Spares.Totals.NetAmount)
	assert.Equal(t, 118.0, a.Summary.GrossTotal)
	assert.Equal(t, 118.0, a.Summary.NetLiability)
}
