package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

func testInput() Input {
	fd := models.NewFormData()
	return Input{
		Claim: &models.Claim{
			ID:          "claim-1",
			ClaimNumber: "CLM-2026-ABCD1234",
			Status:      models.StatusUnderSurvey,
			CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		PolicyType: &models.PolicyType{ID: "pt-marine", Name: "Marine Cargo"},
		FormData:   fd,
	}
}

func subheaders(doc *Document) []string {
	var out []string
	for _, c := range doc.Components {
		if c.Type == ComponentSubheader {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestAssembleAlwaysEmitsOverview(t *testing.T) {
	a := NewAssembler("Acme Surveyors", zap.NewNop())

	doc := a.Assemble(testInput())

	assert.Equal(t, "Acme Surveyors", doc.Company)
	assert.Equal(t, "Claim Report - CLM-2026-ABCD1234", doc.ReportName)
	assert.Equal(t, "A4", doc.Configs.PageSize)

	require.NotEmpty(t, doc.Components)
	assert.Equal(t, ComponentSubheader, doc.Components[0].Type)
	assert.Equal(t, "Overview", doc.Components[0].Text)

	overview := doc.Components[1]
	assert.Equal(t, ComponentTable, overview.Type)
	assert.Equal(t, []string{"Claim Number", "CLM-2026-ABCD1234"}, overview.Rows[0])
	assert.Equal(t, []string{"Policy Type", "Marine Cargo"}, overview.Rows[1])
}

func TestEmptySectionsAreOmitted(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())

	// no field values at all: only Overview appears
	doc := a.Assemble(testInput())
	assert.Equal(t, []string{"Overview"}, subheaders(doc))
}

func TestSectionWithFieldValueAppears(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["vessel_name"] = models.TextValue("MV Ocean Star")

	doc := a.Assemble(in)

	// vessel_name sits in Insured Details for marine policies
	assert.Contains(t, subheaders(doc), "Insured Details")
	assert.NotContains(t, subheaders(doc), "Settlement")

	var found bool
	for _, c := range doc.Components {
		for _, row := range c.Rows {
			if len(row) == 2 && row[0] == "Vessel Name" && row[1] == "MV Ocean Star" {
				found = true
			}
		}
	}
	assert.True(t, found, "vessel name row missing")
}

func TestHiddenFieldsExcluded(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["vessel_name"] = models.TextValue("MV Ocean Star")
	in.FormData.Hide("vessel_name")

	doc := a.Assemble(in)

	// the section loses its only populated field, so it drops out entirely
	assert.NotContains(t, subheaders(doc), "Insured Details")
}

func TestBooleanRendersYesNo(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["is_total_loss"] = models.BoolValue(false)

	doc := a.Assemble(in)

	var found bool
	for _, c := range doc.Components {
		for _, row := range c.Rows {
			if len(row) == 2 && row[0] == "Total Loss" {
				assert.Equal(t, "No", row[1])
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestLabelOverrideUsedInReport(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["vessel_name"] = models.TextValue("MV Ocean Star")
	in.FormData.FieldLabels["vessel_name"] = "Ship Name"

	doc := a.Assemble(in)

	var labels []string
	for _, c := range doc.Components {
		for _, row := range c.Rows {
			if len(row) == 2 {
				labels = append(labels, row[0])
			}
		}
	}
	assert.Contains(t, labels, "Ship Name")
	assert.NotContains(t, labels, "Vessel Name")
}

func TestSectionWithOnlyImagesAppears(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.SectionImages[models.SectionSurvey] = []string{"claims/claim-1/images/a.jpg", "", "", "", "", ""}

	doc := a.Assemble(in)

	assert.Contains(t, subheaders(doc), "Survey & Loss")
	var imgs *Component
	for i := range doc.Components {
		if doc.Components[i].Type == ComponentImages {
			imgs = &doc.Components[i]
		}
	}
	require.NotNil(t, imgs)
	assert.Equal(t, []string{"claims/claim-1/images/a.jpg"}, imgs.Images)
	assert.Equal(t, 2, imgs.Columns)
}

func TestSectionWithOnlyTableDataAppears(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Sections = []models.Section{
		{ID: models.SectionClaimDetails, Name: "Claim Details", OrderIndex: 1},
		{ID: "custom-1", Name: "Stock Statement", OrderIndex: 2, IsCustom: true, Tables: []models.SectionTable{
			{ID: "t1", Name: "Items", Rows: 1, Cols: 2, Data: [][]models.TableCell{
				{{Value: "Cement"}, {Value: "350"}},
			}},
		}},
	}

	doc := a.Assemble(in)

	assert.Contains(t, subheaders(doc), "Stock Statement")
	var found bool
	for _, c := range doc.Components {
		if c.Type == ComponentTable && c.Text == "Items" {
			assert.Equal(t, [][]string{{"Cement", "350"}}, c.Rows)
			found = true
		}
	}
	assert.True(t, found)
}

func TestOverrideVisibilityForcesSections(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["vessel_name"] = models.TextValue("MV Ocean Star")
	in.Overrides = &Overrides{Visible: map[string]bool{
		models.SectionInsured: false, // hide despite data
		models.SectionSurvey:  true,  // show despite being empty
	}}

	doc := a.Assemble(in)

	assert.NotContains(t, subheaders(doc), "Insured Details")
	assert.Contains(t, subheaders(doc), "Survey & Loss")
}

func TestOverrideOrderApplies(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["insured_name"] = models.TextValue("R. Sharma")    // Claim Details
	in.FormData.Values["vessel_name"] = models.TextValue("MV Ocean Star") // Insured Details
	in.Overrides = &Overrides{Order: []string{
		models.SectionInsured,
		models.SectionClaimDetails,
		models.SectionSurvey,
		models.SectionSettlement,
	}}

	doc := a.Assemble(in)

	subs := subheaders(doc)
	insuredIdx, claimIdx := -1, -1
	for i, s := range subs {
		switch s {
		case "Insured Details":
			insuredIdx = i
		case "Claim Details":
			claimIdx = i
		}
	}
	require.NotEqual(t, -1, insuredIdx)
	require.NotEqual(t, -1, claimIdx)
	assert.Less(t, insuredIdx, claimIdx)
}

func TestPartialOverrideOrderIgnored(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	in.FormData.Values["insured_name"] = models.TextValue("R. Sharma")
	in.Overrides = &Overrides{Order: []string{models.SectionSettlement}}

	doc := a.Assemble(in)

	// an order that does not name every section leaves stored order intact
	assert.Contains(t, subheaders(doc), "Claim Details")
}

func TestDocumentsGroupedByLabel(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	in := testInput()
	uploaded := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
	in.Documents = []*models.Document{
		{FieldLabel: "Survey Report", FileName: "survey.pdf", ContentType: "application/pdf", SizeBytes: 2048, UploadedAt: uploaded},
		{FieldLabel: "", FileName: "photo.jpg", ContentType: "image/jpeg", SizeBytes: 512, UploadedAt: uploaded},
	}

	doc := a.Assemble(in)

	assert.Contains(t, subheaders(doc), "Documents")
	var table *Component
	for i := range doc.Components {
		c := &doc.Components[i]
		if c.Type == ComponentTable && len(c.Headers) > 0 && c.Headers[0] == "Group" {
			table = c
		}
	}
	require.NotNil(t, table)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Survey Report", table.Rows[0][0])
	assert.Equal(t, "survey.pdf", table.Rows[0][1])
	assert.Equal(t, "2.0 KB", table.Rows[0][3])
	assert.Equal(t, "Attachments", table.Rows[1][0])
}

func TestNoDocumentsNoDocumentSection(t *testing.T) {
	a := NewAssembler("Acme", zap.NewNop())
	doc := a.Assemble(testInput())
	assert.NotContains(t, subheaders(doc), "Documents")
}
