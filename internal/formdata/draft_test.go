package formdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

func TestLoadDraftEmptyClaim(t *testing.T) {
	store, _ := newTestStore(t, "claim-1")

	d, err := store.LoadDraft("claim-1")
	require.NoError(t, err)
	assert.Equal(t, "claim-1", d.ClaimID)
	assert.Equal(t, int64(0), d.Version)
	assert.Empty(t, d.Values)
	assert.Empty(t, d.PendingFields())
}

func TestDraftPatchMarksPending(t *testing.T) {
	store, _ := newTestStore(t, "claim-1")
	require.NoError(t, store.CommitField("claim-1", "insured_name", models.TextValue("R. Sharma")))

	d, err := store.LoadDraft("claim-1")
	require.NoError(t, err)

	d.Patch("insured_name", models.TextValue("R. K. Sharma"))
	assert.True(t, d.IsPending("insured_name"))

	// patching back to the persisted value clears the pending mark
	d.Patch("insured_name", models.TextValue("R. Sharma"))
	assert.False(t, d.IsPending("insured_name"))
	assert.Empty(t, d.PendingFields())
}

func TestCommitDraftFieldAdvancesBase(t *testing.T) {
	store, _ := newTestStore(t, "claim-1")

	d, err := store.LoadDraft("claim-1")
	require.NoError(t, err)

	d.Patch("estimated_loss", models.NumberValue(75000))
	require.True(t, d.IsPending("estimated_loss"))

	require.NoError(t, store.CommitDraftField(d, "estimated_loss"))
	assert.False(t, d.IsPending("estimated_loss"))

	// re-patching the now-persisted value stays clean
	d.Patch("estimated_loss", models.NumberValue(75000))
	assert.False(t, d.IsPending("estimated_loss"))

	fd, _, err := store.Get("claim-1")
	require.NoError(t, err)
	assert.Equal(t, models.NumberValue(75000), fd.Values["estimated_loss"])
}

func TestCommitDraftFieldFailureKeepsPending(t *testing.T) {
	store, mem := newTestStore(t, "claim-1")

	d, err := store.LoadDraft("claim-1")
	require.NoError(t, err)
	d.Patch("remarks", models.TextValue("unsaved"))

	delete(mem.claims, "claim-1")

	err = store.CommitDraftField(d, "remarks")
	require.Error(t, err)
	assert.True(t, d.IsPending("remarks"), "failed commit must leave the edit pending")
	assert.Equal(t, models.TextValue("unsaved"), d.Values["remarks"])
}

func TestLoadDraftBackfillsLegacyCustomFields(t *testing.T) {
	store, mem := newTestStore(t, "claim-1")

	// simulate a pre-sections document with an unassigned custom descriptor
	mem.claims["claim-1"].FormData = `{
		"custom_fields_metadata": [{"name": "custom_1", "label": "Old Field", "type": "text", "is_custom": true}]
	}`

	d, err := store.LoadDraft("claim-1")
	require.NoError(t, err)
	require.Len(t, d.CustomFields, 1)
	assert.Equal(t, models.SectionClaimDetails, d.CustomFields[0].SectionID)
}
