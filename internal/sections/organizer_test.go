package sections

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/formdata"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/repository"
)

type memClaimStore struct {
	mu     sync.Mutex
	claims map[string]*models.Claim
}

func (m *memClaimStore) GetByID(id string) (*models.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.claims[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memClaimStore) UpdateFormData(id, formData string, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.claims[id]
	if !ok {
		return repository.ErrNotFound
	}
	if c.Version != expectedVersion {
		return repository.ErrVersionConflict
	}
	c.FormData = formData
	c.Version++
	return nil
}

func newTestOrganizer(t *testing.T) *Organizer {
	t.Helper()
	mem := &memClaimStore{claims: map[string]*models.Claim{
		"claim-1": {ID: "claim-1", FormData: "{}"},
	}}
	store := formdata.NewStore(mem, zap.NewNop())
	return NewOrganizer(store, zap.NewNop())
}

func sectionIDs(secs []models.Section) []string {
	out := make([]string, len(secs))
	for i, s := range secs {
		out[i] = s.ID
	}
	return out
}

func TestListSeedsDefaults(t *testing.T) {
	o := newTestOrganizer(t)

	secs, err := o.List("claim-1")
	require.NoError(t, err)
	require.Len(t, secs, 4)
	assert.Equal(t, models.DefaultSectionIDs, sectionIDs(secs))
	for i, s := range secs {
		assert.Equal(t, i+1, s.OrderIndex)
		assert.False(t, s.IsCustom)
	}
}

func TestCreateSectionAppendsAfterLast(t *testing.T) {
	o := newTestOrganizer(t)

	created, err := o.CreateSection("claim-1", "Godown Stock", models.ColorRed)
	require.NoError(t, err)
	assert.True(t, created.IsCustom)
	assert.Equal(t, 5, created.OrderIndex)

	secs, err := o.List("claim-1")
	require.NoError(t, err)
	require.Len(t, secs, 5)
	assert.Equal(t, created.ID, secs[4].ID)
}

func TestCreateSectionRequiresName(t *testing.T) {
	o := newTestOrganizer(t)
	_, err := o.CreateSection("claim-1", "", models.ColorRed)
	assert.Error(t, err)
}

func TestCreateSectionFromTemplate(t *testing.T) {
	o := newTestOrganizer(t)

	created, err := o.CreateSectionFromTemplate("claim-1", "police_report", "")
	require.NoError(t, err)
	assert.Equal(t, "Police Report", created.Name)
	assert.Equal(t, models.ColorRed, created.ColorTag)

	// the template's preset fields arrive as custom descriptors on the section
	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	var attached []models.FieldDescriptor
	for _, d := range fd.CustomFields {
		if d.SectionID == created.ID {
			attached = append(attached, d)
		}
	}
	require.Len(t, attached, 4)
	assert.Equal(t, "Police Station", attached[0].Label)
	assert.True(t, attached[0].IsCustom)

	_, err = o.CreateSectionFromTemplate("claim-1", "no_such_template", "")
	assert.ErrorIs(t, err, ErrTemplateUnknown)
}

func TestRemoveSectionOnlyCustom(t *testing.T) {
	o := newTestOrganizer(t)

	err := o.RemoveSection("claim-1", models.SectionClaimDetails)
	assert.ErrorIs(t, err, ErrStandardSection)

	created, err := o.CreateSection("claim-1", "Temp", "")
	require.NoError(t, err)
	require.NoError(t, o.RemoveSection("claim-1", created.ID))

	secs, err := o.List("claim-1")
	require.NoError(t, err)
	assert.NotContains(t, sectionIDs(secs), created.ID)

	err = o.RemoveSection("claim-1", "missing")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestRemoveSectionOrphansFieldValues(t *testing.T) {
	o := newTestOrganizer(t)

	created, err := o.CreateSection("claim-1", "Temp", "")
	require.NoError(t, err)
	desc, err := o.AddField("claim-1", created.ID)
	require.NoError(t, err)
	require.NoError(t, o.store.CommitField("claim-1", desc.Name, models.TextValue("orphan me")))

	require.NoError(t, o.RemoveSection("claim-1", created.ID))

	// removal does not cascade into descriptors or values
	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	assert.NotNil(t, fd.CustomFieldByName(desc.Name))
	assert.Equal(t, models.TextValue("orphan me"), fd.Values[desc.Name])
}

func TestReorderRoundTrip(t *testing.T) {
	o := newTestOrganizer(t)

	reversed := []string{
		models.SectionSettlement,
		models.SectionSurvey,
		models.SectionInsured,
		models.SectionClaimDetails,
	}
	require.NoError(t, o.Reorder("claim-1", reversed))

	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	for pos, id := range reversed {
		s := fd.SectionByID(id)
		require.NotNil(t, s)
		assert.Equal(t, pos+1, s.OrderIndex, "section %s", id)
	}

	// reorder back and verify the original indexes return
	require.NoError(t, o.Reorder("claim-1", models.DefaultSectionIDs))
	fd, _, err = o.store.Get("claim-1")
	require.NoError(t, err)
	for pos, id := range models.DefaultSectionIDs {
		assert.Equal(t, pos+1, fd.SectionByID(id).OrderIndex)
	}
}

func TestReorderMustNameAllSections(t *testing.T) {
	o := newTestOrganizer(t)

	err := o.Reorder("claim-1", []string{models.SectionClaimDetails})
	assert.Error(t, err)

	err = o.Reorder("claim-1", []string{
		models.SectionClaimDetails, models.SectionInsured, models.SectionSurvey, "bogus",
	})
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestToggleCollapsed(t *testing.T) {
	o := newTestOrganizer(t)

	require.NoError(t, o.ToggleCollapsed("claim-1", models.SectionSurvey))
	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	assert.True(t, fd.SectionByID(models.SectionSurvey).Collapsed)

	require.NoError(t, o.ToggleCollapsed("claim-1", models.SectionSurvey))
	fd, _, err = o.store.Get("claim-1")
	require.NoError(t, err)
	assert.False(t, fd.SectionByID(models.SectionSurvey).Collapsed)
}

func TestAddAndUpdateTable(t *testing.T) {
	o := newTestOrganizer(t)

	table, err := o.AddTable("claim-1", models.SectionSurvey, "Stock Items", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Rows)
	assert.Equal(t, 3, table.Cols)
	assert.False(t, table.HasDataRow())

	data := [][]models.TableCell{
		{{Value: "Item"}, {Value: "Qty"}, {Value: "Rate"}},
		{{Value: "Cement"}, {Value: "10"}, {Value: "350"}},
	}
	require.NoError(t, o.UpdateTable("claim-1", models.SectionSurvey, table.ID, data))

	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	stored := fd.SectionByID(models.SectionSurvey).Tables[0]
	assert.True(t, stored.HasDataRow())
	assert.Equal(t, "Cement", stored.Data[1][0].Value)

	_, err = o.AddTable("claim-1", models.SectionSurvey, "Bad", 0, 3)
	assert.Error(t, err)
	err = o.UpdateTable("claim-1", models.SectionSurvey, "missing-table", data)
	assert.Error(t, err)
}

func TestUpdateTableKeepsDimensions(t *testing.T) {
	o := newTestOrganizer(t)

	table, err := o.AddTable("claim-1", models.SectionSurvey, "Stock Items", 2, 3)
	require.NoError(t, err)

	short := [][]models.TableCell{
		{{Value: "Item"}, {Value: "Qty"}, {Value: "Rate"}},
	}
	err = o.UpdateTable("claim-1", models.SectionSurvey, table.ID, short)
	assert.ErrorContains(t, err, "2 rows")

	ragged := [][]models.TableCell{
		{{Value: "Item"}, {Value: "Qty"}, {Value: "Rate"}},
		{{Value: "Cement"}, {Value: "10"}},
	}
	err = o.UpdateTable("claim-1", models.SectionSurvey, table.ID, ragged)
	assert.ErrorContains(t, err, "3 columns")

	// the rejected writes left the table untouched
	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	assert.False(t, fd.SectionByID(models.SectionSurvey).Tables[0].HasDataRow())
}

func TestSetSectionImageSlots(t *testing.T) {
	o := newTestOrganizer(t)

	require.NoError(t, o.SetSectionImage("claim-1", models.SectionSurvey, 0, "claims/claim-1/images/a.jpg"))
	require.NoError(t, o.SetSectionImage("claim-1", models.SectionSurvey, 5, "claims/claim-1/images/b.jpg"))

	fd, _, err := o.store.Get("claim-1")
	require.NoError(t, err)
	slots := fd.SectionImages[models.SectionSurvey]
	require.Len(t, slots, models.SectionImageSlots)
	assert.Equal(t, "claims/claim-1/images/a.jpg", slots[0])
	assert.Equal(t, "claims/claim-1/images/b.jpg", slots[5])
	assert.Empty(t, slots[3])

	assert.Error(t, o.SetSectionImage("claim-1", models.SectionSurvey, 6, "x"))
	assert.Error(t, o.SetSectionImage("claim-1", models.SectionSurvey, -1, "x"))
}

func TestTemplatesCatalog(t *testing.T) {
	all := Templates()
	require.Len(t, all, 4)

	ids := make([]string, len(all))
	for i, tpl := range all {
		ids[i] = tpl.ID
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Fields)
	}
	assert.Contains(t, ids, "police_report")
	assert.Contains(t, ids, "repair_estimate")
}
