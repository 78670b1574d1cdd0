package assessment

import "github.com/djcoder02-glitch/claim-portal-backend/internal/models"

// AssessedCategory identifies one of the three exclusive assessed columns on
// a spare-parts row.
type AssessedCategory int

// Assessed category constants
const (
	CategoryGlass AssessedCategory = iota
	CategoryPlasticRubber
	CategoryOthersMetal
)

// SetAssessed writes an assessed amount onto a row. A nonzero amount claims
// the row for that category and resets the other two to zero; this holds on
// every edit, not just at submit time.
func SetAssessed(row *models.SparesRow, category AssessedCategory, amount float64) {
	switch category {
	case CategoryGlass:
		row.AssessedGlass = amount
		if amount != 0 {
			row.AssessedPlasticRubber = 0
			row.AssessedOthersMetal = 0
		}
	case CategoryPlasticRubber:
		row.AssessedPlasticRubber = amount
		if amount != 0 {
			row.AssessedGlass = 0
			row.AssessedOthersMetal = 0
		}
	case CategoryOthersMetal:
		row.AssessedOthersMetal = amount
		if amount != 0 {
			row.AssessedGlass = 0
			row.AssessedPlasticRubber = 0
		}
	}
}

// normalizeRow reconciles an incoming row against its previous state. The
// category whose value changed is treated as the edited one and claims the
// row; when the row is new or several categories changed at once, the first
// nonzero category in fixed order wins.
func normalizeRow(prev *models.SparesRow, next models.SparesRow) models.SparesRow {
	if prev != nil {
		if next.AssessedGlass != prev.AssessedGlass && next.AssessedGlass != 0 {
			SetAssessed(&next, CategoryGlass, next.AssessedGlass)
			return next
		}
		if next.AssessedPlasticRubber != prev.AssessedPlasticRubber && next.AssessedPlasticRubber != 0 {
			SetAssessed(&next, CategoryPlasticRubber, next.AssessedPlasticRubber)
			return next
		}
		if next.AssessedOthersMetal != prev.AssessedOthersMetal && next.AssessedOthersMetal != 0 {
			SetAssessed(&next, CategoryOthersMetal, next.AssessedOthersMetal)
			return next
		}
	}

	switch {
	case next.AssessedGlass != 0:
		SetAssessed(&next, CategoryGlass, next.AssessedGlass)
	case next.AssessedPlasticRubber != 0:
		SetAssessed(&next, CategoryPlasticRubber, next.AssessedPlasticRubber)
	case next.AssessedOthersMetal != 0:
		SetAssessed(&next, CategoryOthersMetal, next.AssessedOthersMetal)
	}
	return next
}

// NormalizeRows applies the exclusivity rule to every incoming row, matching
// rows to their previous state by ID.
func NormalizeRows(prev, next []models.SparesRow) []models.SparesRow {
	prevByID := make(map[string]*models.SparesRow, len(prev))
	for i := range prev {
		prevByID[prev[i].ID] = &prev[i]
	}

	out := make([]models.SparesRow, len(next))
	for i, row := range next {
		out[i] = normalizeRow(prevByID[row.ID], row)
	}
	return out
}
