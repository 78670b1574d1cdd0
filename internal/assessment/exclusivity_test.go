package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

func TestSetAssessedClaimsRow(t *testing.T) {
	row := models.SparesRow{ID: "r1", AssessedGlass: 500}

	SetAssessed(&row, CategoryOthersMetal, 300)

	assert.Equal(t, 0.0, row.AssessedGlass)
	assert.Equal(t, 0.0, row.AssessedPlasticRubber)
	assert.Equal(t, 300.0, row.AssessedOthersMetal)
}

func TestSetAssessedZeroDoesNotClaim(t *testing.T) {
	// clearing a category leaves the others alone
	row := models.SparesRow{ID: "r1", AssessedGlass: 500}

	SetAssessed(&row, CategoryPlasticRubber, 0)

	assert.Equal(t, 500.0, row.AssessedGlass)
	assert.Equal(t, 0.0, row.AssessedPlasticRubber)
}

func TestNormalizeRowsChangedCategoryWins(t *testing.T) {
	prev := []models.SparesRow{
		{ID: "r1", AssessedGlass: 500},
	}
	// the incoming row keeps the old glass value and adds a metal value;
	// metal is the edit, so it claims the row
	next := []models.SparesRow{
		{ID: "r1", AssessedGlass: 500, AssessedOthersMetal: 300},
	}

	out := NormalizeRows(prev, next)
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].AssessedGlass)
	assert.Equal(t, 300.0, out[0].AssessedOthersMetal)
}

func TestNormalizeRowsNewRowFirstNonzeroWins(t *testing.T) {
	next := []models.SparesRow{
		{ID: "new", AssessedPlasticRubber: 200, AssessedOthersMetal: 300},
	}

	out := NormalizeRows(nil, next)
	require.Len(t, out, 1)
	assert.Equal(t, 200.0, out[0].AssessedPlasticRubber)
	assert.Equal(t, 0.0, out[0].AssessedOthersMetal)
}

func TestNormalizeRowsUnchangedRowPassesThrough(t *testing.T) {
	prev := []models.SparesRow{
		{ID: "r1", Description: "Windscreen", AssessedGlass: 500},
	}
	next := []models.SparesRow{
		{ID: "r1", Description: "Windscreen front", AssessedGlass: 500},
	}

	out := NormalizeRows(prev, next)
	require.Len(t, out, 1)
	assert.Equal(t, "Windscreen front", out[0].Description)
	assert.Equal(t, 500.0, out[0].AssessedGlass)
}

func TestNormalizeRowsInvariantHolds(t *testing.T) {
	prev := []models.SparesRow{
		{ID: "r1", AssessedGlass: 100},
		{ID: "r2", AssessedOthersMetal: 250},
	}
	next := []models.SparesRow{
		{ID: "r1", AssessedGlass: 100, AssessedPlasticRubber: 50},
		{ID: "r2", AssessedOthersMetal: 400},
		{ID: "r3", AssessedGlass: 75},
	}

	for _, row := range NormalizeRows(prev, next) {
		nonzero := 0
		for _, v := range []float64{row.AssessedGlass, row.AssessedPlasticRubber, row.AssessedOthersMetal} {
			if v != 0 {
				nonzero++
			}
		}
		assert.LessOrEqual(t, nonzero, 1, "row %s has multiple assessed categories", row.ID)
	}
}
